package config

import (
	"errors"
	"os"
	"strconv"
)

// Environment keys read by the Loader.
const (
	EnvAPIType         = "API_TYPE"
	EnvLegacyAPIType   = "OPENAI_API_TYPE"
	EnvAzureKey        = "AZURE_OPENAI_KEY"
	EnvAzureEndpoint   = "AZURE_OPENAI_ENDPOINT"
	EnvAzureAPIVersion = "AZURE_OPENAI_API_VERSION"
	EnvOpenAIKey       = "OPENAI_KEY"
	EnvOpenAIKeyAlt    = "OPENAI_API_KEY"
	EnvOpenAIBaseURL   = "OPENAI_BASE_URL"
	EnvModel           = "CHAT_MODEL"
	EnvMaxTokens       = "CHAT_MAX_TOKENS"
	EnvDatabasePath    = "CHATSAMPLES_DB"
)

// LookupFunc reads one environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Loader builds a Config from environment variables.
type Loader struct {
	lookup    LookupFunc
	validator *Validator
}

// NewLoader creates a loader reading from lookup; nil means the process environment.
func NewLoader(lookup LookupFunc) *Loader {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &Loader{
		lookup:    lookup,
		validator: NewValidator(),
	}
}

// FromEnv is shorthand for NewLoader(lookup).Load().
func FromEnv(lookup LookupFunc) (*Config, error) {
	return NewLoader(lookup).Load()
}

// Load selects the provider from API_TYPE and reads its credentials. Any
// missing or unrecognised value is returned as a *ConfigError.
func (l *Loader) Load() (*Config, error) {
	config := DefaultConfig()

	apiType, key := l.first(EnvAPIType, EnvLegacyAPIType)
	if apiType == "" {
		return nil, &ConfigError{Key: EnvAPIType, Reason: "not set, must be one of azure, openai"}
	}
	provider, err := ParseProvider(apiType)
	if err != nil {
		return nil, &ConfigError{Key: key, Reason: err.Error(), Err: err}
	}
	config.Provider.Type = provider

	switch provider {
	case ProviderAzure:
		config.Provider.APIKey, _ = l.first(EnvAzureKey)
		config.Provider.Endpoint, _ = l.first(EnvAzureEndpoint)
		config.Provider.APIVersion, _ = l.first(EnvAzureAPIVersion)
		if config.Provider.APIVersion == "" {
			config.Provider.APIVersion = DefaultAzureAPIVersion
		}
	case ProviderOpenAI:
		config.Provider.APIKey, _ = l.first(EnvOpenAIKey, EnvOpenAIKeyAlt)
		config.Provider.BaseURL, _ = l.first(EnvOpenAIBaseURL)
	}

	l.applyEnvironmentOverrides(config)

	if err := l.validator.Validate(config); err != nil {
		return nil, l.toConfigError(provider, err)
	}

	return config, nil
}

// applyEnvironmentOverrides applies optional overrides that have defaults
func (l *Loader) applyEnvironmentOverrides(config *Config) {
	if model, _ := l.first(EnvModel); model != "" {
		config.Chat.Model = model
	}
	if maxTokens, _ := l.first(EnvMaxTokens); maxTokens != "" {
		// an unparsable value becomes 0 and fails validation below
		n, _ := strconv.Atoi(maxTokens)
		config.Chat.MaxTokens = n
	}
	if dbPath, _ := l.first(EnvDatabasePath); dbPath != "" {
		config.Storage.DatabasePath = dbPath
	}
}

// first returns the first non-empty value among keys and the key it came from.
func (l *Loader) first(keys ...string) (string, string) {
	for _, key := range keys {
		if v, ok := l.lookup(key); ok && v != "" {
			return v, key
		}
	}
	return "", keys[0]
}

// toConfigError names the environment key behind a failed struct field.
func (l *Loader) toConfigError(provider Provider, err error) error {
	var verr ValidationError
	if !errors.As(err, &verr) {
		return &ConfigError{Key: EnvAPIType, Reason: err.Error(), Err: err}
	}

	key := verr.Field
	switch verr.Field {
	case "Config.Provider.Type":
		key = EnvAPIType
	case "Config.Provider.APIKey":
		key = EnvOpenAIKey
		if provider == ProviderAzure {
			key = EnvAzureKey
		}
	case "Config.Provider.Endpoint":
		key = EnvAzureEndpoint
	case "Config.Provider.APIVersion":
		key = EnvAzureAPIVersion
	case "Config.Provider.BaseURL":
		key = EnvOpenAIBaseURL
	case "Config.Chat.Model":
		key = EnvModel
	case "Config.Chat.MaxTokens":
		key = EnvMaxTokens
	}

	return &ConfigError{Key: key, Reason: verr.Message, Err: verr}
}
