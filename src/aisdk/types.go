// Package aisdk holds the wire types shared between the chat loop, the tool
// schema normalizer and the remote completion client.
package aisdk

import (
	"context"
	"encoding/json"
)

// ToolCall represents a function call request from the model (OpenAI format).
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"` // Always "function" for now
	Function FunctionCall `json:"function"`
}

// FunctionCall contains the function name and arguments.
// Arguments arrive as a JSON-encoded string on the wire.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// RawArguments returns the arguments as raw JSON, substituting an empty object when none were sent.
func (f FunctionCall) RawArguments() json.RawMessage {
	if f.Arguments == "" {
		return json.RawMessage("{}")
	}
	return json.RawMessage(f.Arguments)
}

// ToolResponse is the result of executing one tool call.
type ToolResponse struct {
	Type    string `json:"type"`
	Content []byte `json:"content"`
	IsError bool   `json:"is_error"`
}

// CompletionParams are the sampling knobs sent with every request.
type CompletionParams struct {
	MaxTokens        int     `json:"max_tokens"`
	Temperature      float64 `json:"temperature"`
	TopP             float64 `json:"top_p"`
	FrequencyPenalty float64 `json:"frequency_penalty"`
	PresencePenalty  float64 `json:"presence_penalty"`
}

// DefaultCompletionParams returns the parameters used when a caller does not override them.
func DefaultCompletionParams() CompletionParams {
	return CompletionParams{
		MaxTokens:        128,
		Temperature:      0.9,
		TopP:             1.0,
		FrequencyPenalty: 0.25,
		PresencePenalty:  0.25,
	}
}

// ChatCompletionRequest represents a request to the chat completions endpoint.
type ChatCompletionRequest struct {
	Model    string     `json:"model"`
	Messages []Message  `json:"messages"`
	Tools    []ChatTool `json:"tools,omitempty"`
	CompletionParams
}

// ChatCompletionResponse represents a response from the chat completions endpoint.
type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Choice represents a single completion choice.
type Choice struct {
	Index        int             `json:"index"`
	Message      ResponseMessage `json:"message"`
	FinishReason string          `json:"finish_reason"`
}

// ResponseMessage is the assistant turn as returned by the API. Unlike Message
// it is not validated: content may be null when the model only requests tools.
type ResponseMessage struct {
	Role      string     `json:"role"`
	Content   *string    `json:"content"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// Text returns the content, or "" when the API sent null.
func (m ResponseMessage) Text() string {
	if m.Content == nil {
		return ""
	}
	return *m.Content
}

// ToMessage converts the reply into a validated Message for the next turn.
func (m ResponseMessage) ToMessage() (Message, error) {
	return NewMessage(m.Role, m.Text())
}

// Usage represents token usage information.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Completer is the remote completion boundary.
type Completer interface {
	CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error)
}
