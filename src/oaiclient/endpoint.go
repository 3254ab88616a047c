package oaiclient

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/elee1766/chatsamples/src/config"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// endpoint knows where a provider serves each operation and how it
// authenticates. It is chosen once when the client is built.
type endpoint interface {
	provider() config.Provider
	// chatURL returns the chat completions URL for model. For Azure the model
	// is the deployment name.
	chatURL(model string) string
	// url returns the URL of a REST resource such as "threads/abc/runs".
	url(path string) string
	authorize(h http.Header)
}

func newEndpoint(cfg config.ProviderConfig) (endpoint, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	switch cfg.Type {
	case config.ProviderOpenAI:
		base := cfg.BaseURL
		if base == "" {
			base = defaultOpenAIBaseURL
		}
		return &openaiEndpoint{baseURL: strings.TrimRight(base, "/"), apiKey: cfg.APIKey}, nil
	case config.ProviderAzure:
		if cfg.Endpoint == "" {
			return nil, fmt.Errorf("azure endpoint is required")
		}
		version := cfg.APIVersion
		if version == "" {
			version = config.DefaultAzureAPIVersion
		}
		return &azureEndpoint{
			endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
			apiVersion: version,
			apiKey:     cfg.APIKey,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Type)
	}
}

type openaiEndpoint struct {
	baseURL string
	apiKey  string
}

func (e *openaiEndpoint) provider() config.Provider { return config.ProviderOpenAI }

func (e *openaiEndpoint) chatURL(string) string {
	return e.baseURL + "/chat/completions"
}

func (e *openaiEndpoint) url(path string) string {
	return e.baseURL + "/" + path
}

func (e *openaiEndpoint) authorize(h http.Header) {
	h.Set("Authorization", "Bearer "+e.apiKey)
}

type azureEndpoint struct {
	endpoint   string
	apiVersion string
	apiKey     string
}

func (e *azureEndpoint) provider() config.Provider { return config.ProviderAzure }

func (e *azureEndpoint) chatURL(model string) string {
	return e.url("deployments/" + url.PathEscape(model) + "/chat/completions")
}

func (e *azureEndpoint) url(path string) string {
	return e.endpoint + "/openai/" + path + "?api-version=" + url.QueryEscape(e.apiVersion)
}

func (e *azureEndpoint) authorize(h http.Header) {
	h.Set("api-key", e.apiKey)
}
