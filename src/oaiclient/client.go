// Package oaiclient talks to the OpenAI and Azure OpenAI REST APIs. The
// provider is chosen once in New; every call after that is a single HTTP
// request with no retries and no deadline other than the caller's context.
package oaiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/afero"

	"github.com/elee1766/chatsamples/src/aisdk"
	"github.com/elee1766/chatsamples/src/config"
)

const defaultPollInterval = time.Second

var _ aisdk.Completer = (*Client)(nil)

// Client is the completion and assistants API client.
type Client struct {
	endpoint     endpoint
	httpClient   *http.Client
	logger       *slog.Logger
	fs           afero.Fs
	pollInterval time.Duration
}

// New creates a client for the configured provider.
func New(cfg Config) (*Client, error) {
	ep, err := newEndpoint(cfg.Provider)
	if err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "oaiclient", "provider", ep.provider())

	fs := cfg.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	return &Client{
		endpoint:     ep,
		httpClient:   httpClient,
		logger:       logger,
		fs:           fs,
		pollInterval: pollInterval,
	}, nil
}

// Provider returns the provider the client was built for.
func (c *Client) Provider() config.Provider {
	return c.endpoint.provider()
}

// CreateChatCompletion sends a chat completion request.
func (c *Client) CreateChatCompletion(ctx context.Context, req *aisdk.ChatCompletionRequest) (*aisdk.ChatCompletionResponse, error) {
	logger := c.logger.With("method", "CreateChatCompletion", "model", req.Model)
	logger.Debug("sending chat completion request", "messages", len(req.Messages), "tools", len(req.Tools))

	// Debug log the request
	if logger.Enabled(ctx, slog.LevelDebug) {
		if debugBody, err := json.MarshalIndent(req, "", "  "); err == nil {
			logger.Debug("request body", "body", string(debugBody))
		}
	}

	var result aisdk.ChatCompletionResponse
	if err := c.do(ctx, http.MethodPost, c.endpoint.chatURL(req.Model), req, &result, false); err != nil {
		logger.Error("chat completion failed", "error", err)
		return nil, err
	}

	logger.Info("chat completion successful",
		"finish_reason", finishReason(&result),
		"usage_total", result.Usage.TotalTokens)
	return &result, nil
}

func finishReason(resp *aisdk.ChatCompletionResponse) string {
	if len(resp.Choices) == 0 {
		return ""
	}
	return resp.Choices[0].FinishReason
}

// do sends a JSON request and decodes a JSON response into out.
func (c *Client) do(ctx context.Context, method, url string, in, out any, beta bool) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, url, body, beta)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// newRequest creates a new HTTP request with the provider's auth headers.
func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader, beta bool) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.endpoint.authorize(req.Header)
	req.Header.Set("Accept", "application/json")
	if beta {
		req.Header.Set("OpenAI-Beta", assistantsBeta)
	}
	return req, nil
}

// send performs the request once. Non-2xx answers become *APIError.
func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Debug("received error response", "status_code", resp.StatusCode, "url", req.URL.Path)
		return handleError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
