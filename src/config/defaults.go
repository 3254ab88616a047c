package config

import "github.com/elee1766/chatsamples/src/aisdk"

const (
	// DefaultModel is the deployment name the samples were written against.
	DefaultModel = "gpt-35-turbo-16k"

	// DefaultAzureAPIVersion is sent as api-version on every Azure request.
	DefaultAzureAPIVersion = "2023-12-01-preview"

	// DefaultSecretsFile is read relative to the repository root.
	DefaultSecretsFile = ".env"
)

// DefaultConfig returns a configuration with no provider selected and the
// original sampling defaults.
func DefaultConfig() *Config {
	params := aisdk.DefaultCompletionParams()
	return &Config{
		Chat: ChatConfig{
			Model:            DefaultModel,
			MaxTokens:        params.MaxTokens,
			Temperature:      params.Temperature,
			TopP:             params.TopP,
			FrequencyPenalty: params.FrequencyPenalty,
			PresencePenalty:  params.PresencePenalty,
		},
	}
}
