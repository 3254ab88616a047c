// Package chat drives one conversation against a completion backend. It owns
// the transcript, sends it on every turn, and appends the replies. Executing
// tools and deciding when to stop are left to the caller.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/elee1766/chatsamples/src/aisdk"
)

// ErrNoChoices is returned when the backend answers without any choice.
var ErrNoChoices = errors.New("no choices in response")

// TrimFunc rewrites the message list right before it is sent. The stored
// transcript is never modified.
type TrimFunc func([]aisdk.Message) []aisdk.Message

// Recorder persists each message as it is appended.
type Recorder interface {
	Record(ctx context.Context, msg aisdk.Message) error
}

// Reply is the outcome of one completion turn.
type Reply struct {
	Message      aisdk.Message
	ToolCalls    []aisdk.ToolCall
	FinishReason string
	Usage        aisdk.Usage
}

// HasToolCalls reports whether the model asked for tools to be run.
func (r *Reply) HasToolCalls() bool {
	return len(r.ToolCalls) > 0
}

type Session struct {
	Client   aisdk.Completer
	Model    string
	Params   aisdk.CompletionParams
	Trim     TrimFunc
	Recorder Recorder
	Logger   *slog.Logger

	transcript *aisdk.Transcript
}

// NewSession starts a session with default sampling parameters and an
// optional seed transcript.
func NewSession(client aisdk.Completer, model string, seed ...aisdk.Message) *Session {
	return &Session{
		Client:     client,
		Model:      model,
		Params:     aisdk.DefaultCompletionParams(),
		transcript: aisdk.NewTranscript(seed...),
	}
}

func (s *Session) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default().With("component", "chat")
	}
	return s.Logger
}

func (s *Session) ensureTranscript() {
	if s.transcript == nil {
		s.transcript = aisdk.NewTranscript()
	}
}

// Transcript returns the messages exchanged so far.
func (s *Session) Transcript() []aisdk.Message {
	s.ensureTranscript()
	return s.transcript.Messages()
}

// Add validates and appends a message.
func (s *Session) Add(ctx context.Context, role, content string) error {
	msg, err := aisdk.NewMessage(role, content)
	if err != nil {
		return err
	}
	return s.AddMessage(ctx, msg)
}

// AddMessage appends an already validated message.
func (s *Session) AddMessage(ctx context.Context, msg aisdk.Message) error {
	s.ensureTranscript()
	if msg.IsZero() {
		return &aisdk.MissingFieldError{Field: "role"}
	}
	if s.Recorder != nil {
		if err := s.Recorder.Record(ctx, msg); err != nil {
			return fmt.Errorf("failed to record %s message: %w", msg.Role(), err)
		}
	}
	s.transcript.Append(msg)
	return nil
}

// Complete sends the transcript, with tools when given, and appends the
// first choice as an assistant message. Errors from the client are returned
// as is; nothing is retried.
func (s *Session) Complete(ctx context.Context, tools []aisdk.ChatTool) (*Reply, error) {
	s.ensureTranscript()

	messages := s.transcript.Messages()
	if s.Trim != nil {
		messages = s.Trim(messages)
	}
	s.logger().Debug("sending transcript",
		"model", s.Model,
		"transcript_len", s.transcript.Len(),
		"sent", len(messages),
		"tools", len(tools))

	req := &aisdk.ChatCompletionRequest{
		Model:            s.Model,
		Messages:         messages,
		Tools:            tools,
		CompletionParams: s.Params,
	}
	resp, err := s.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrNoChoices
	}

	choice := resp.Choices[0]
	if choice.Message.Role == "" {
		choice.Message.Role = string(aisdk.RoleAssistant)
	}
	msg, err := choice.Message.ToMessage()
	if err != nil {
		return nil, fmt.Errorf("invalid reply: %w", err)
	}
	if err := s.AddMessage(ctx, msg); err != nil {
		return nil, err
	}

	s.logger().Debug("received reply",
		"finish_reason", choice.FinishReason,
		"tool_calls", len(choice.Message.ToolCalls),
		"total_tokens", resp.Usage.TotalTokens)

	return &Reply{
		Message:      msg,
		ToolCalls:    choice.Message.ToolCalls,
		FinishReason: choice.FinishReason,
		Usage:        resp.Usage,
	}, nil
}

// AddToolResults appends one assistant message per result, in order.
func (s *Session) AddToolResults(ctx context.Context, results []ToolResult) error {
	for _, r := range results {
		msg, err := r.Message()
		if err != nil {
			return err
		}
		if err := s.AddMessage(ctx, msg); err != nil {
			return err
		}
	}
	return nil
}
