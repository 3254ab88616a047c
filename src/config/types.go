package config

import (
	"fmt"

	"github.com/elee1766/chatsamples/src/aisdk"
)

// Provider selects which hosted API serves completions.
type Provider string

const (
	ProviderAzure  Provider = "azure"
	ProviderOpenAI Provider = "openai"
)

// Providers lists the supported provider types.
var Providers = []Provider{ProviderAzure, ProviderOpenAI}

// ParseProvider maps the API_TYPE value onto a Provider.
func ParseProvider(s string) (Provider, error) {
	for _, p := range Providers {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown API type %q", s)
}

// Config represents the complete configuration for the samples
type Config struct {
	// Provider holds credentials and endpoint for the selected API
	Provider ProviderConfig `json:"provider"`

	// Chat holds the model and sampling parameters
	Chat ChatConfig `json:"chat"`

	// Storage configures transcript persistence
	Storage StorageConfig `json:"storage"`
}

// ProviderConfig defines credentials for one provider variant.
type ProviderConfig struct {
	// Type is azure or openai
	Type Provider `json:"type" validate:"required,provider"`

	// APIKey for the provider
	APIKey string `json:"api_key" validate:"required"`

	// Endpoint is the Azure resource endpoint, e.g. https://my-resource.openai.azure.com
	Endpoint string `json:"endpoint,omitempty" validate:"required_if=Type azure,omitempty,url"`

	// APIVersion is the Azure api-version query parameter
	APIVersion string `json:"api_version,omitempty" validate:"required_if=Type azure"`

	// BaseURL overrides the OpenAI API root
	BaseURL string `json:"base_url,omitempty" validate:"omitempty,url"`
}

// ChatConfig defines the model and sampling parameters.
type ChatConfig struct {
	// Model is the model name for openai or the deployment name for azure
	Model            string  `json:"model" validate:"required"`
	MaxTokens        int     `json:"max_tokens" validate:"gte=1"`
	Temperature      float64 `json:"temperature" validate:"gte=0,lte=2"`
	TopP             float64 `json:"top_p" validate:"gte=0,lte=1"`
	FrequencyPenalty float64 `json:"frequency_penalty" validate:"gte=-2,lte=2"`
	PresencePenalty  float64 `json:"presence_penalty" validate:"gte=-2,lte=2"`
}

// Params returns the sampling parameters as sent on the wire.
func (c ChatConfig) Params() aisdk.CompletionParams {
	return aisdk.CompletionParams{
		MaxTokens:        c.MaxTokens,
		Temperature:      c.Temperature,
		TopP:             c.TopP,
		FrequencyPenalty: c.FrequencyPenalty,
		PresencePenalty:  c.PresencePenalty,
	}
}

// StorageConfig defines where transcripts are persisted.
type StorageConfig struct {
	// DatabasePath is the sqlite file; empty disables persistence
	DatabasePath string `json:"database_path,omitempty"`
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error in field '%s': %s", e.Field, e.Message)
}

// ConfigError is a fatal startup error tied to one environment key.
type ConfigError struct {
	Key    string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Key, e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.Err }
