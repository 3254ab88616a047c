package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elee1766/chatsamples/src/aisdk"
)

type fakeCompleter struct {
	requests  []*aisdk.ChatCompletionRequest
	responses []*aisdk.ChatCompletionResponse
	err       error
}

func (f *fakeCompleter) CreateChatCompletion(_ context.Context, req *aisdk.ChatCompletionRequest) (*aisdk.ChatCompletionResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

func textReply(content string) *aisdk.ChatCompletionResponse {
	return &aisdk.ChatCompletionResponse{
		Choices: []aisdk.Choice{{
			Message:      aisdk.ResponseMessage{Role: "assistant", Content: &content},
			FinishReason: "stop",
		}},
		Usage: aisdk.Usage{TotalTokens: 42},
	}
}

type memoryRecorder struct {
	messages []aisdk.Message
	err      error
}

func (m *memoryRecorder) Record(_ context.Context, msg aisdk.Message) error {
	if m.err != nil {
		return m.err
	}
	m.messages = append(m.messages, msg)
	return nil
}

func TestCompleteAppendsReply(t *testing.T) {
	ctx := context.Background()
	client := &fakeCompleter{responses: []*aisdk.ChatCompletionResponse{textReply("Arr, hello!")}}
	rec := &memoryRecorder{}

	s := NewSession(client, "gpt-35-turbo-16k", aisdk.MustMessage(aisdk.RoleSystem, "You are a pirate."))
	s.Recorder = rec
	require.NoError(t, s.Add(ctx, "user", "Hi"))

	reply, err := s.Complete(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "Arr, hello!", reply.Message.Content())
	assert.Equal(t, "stop", reply.FinishReason)
	assert.Equal(t, 42, reply.Usage.TotalTokens)
	assert.False(t, reply.HasToolCalls())

	require.Len(t, client.requests, 1)
	req := client.requests[0]
	assert.Equal(t, "gpt-35-turbo-16k", req.Model)
	assert.Len(t, req.Messages, 2)
	assert.Equal(t, aisdk.DefaultCompletionParams(), req.CompletionParams)
	assert.Nil(t, req.Tools)

	transcript := s.Transcript()
	require.Len(t, transcript, 3)
	assert.Equal(t, aisdk.RoleAssistant, transcript[2].Role())

	// the seed is not recorded, everything after it is
	assert.Len(t, rec.messages, 2)
}

func TestCompleteSendsTools(t *testing.T) {
	ctx := context.Background()
	client := &fakeCompleter{responses: []*aisdk.ChatCompletionResponse{{
		Choices: []aisdk.Choice{{
			Message: aisdk.ResponseMessage{
				Role: "assistant",
				ToolCalls: []aisdk.ToolCall{{
					ID:       "call_1",
					Type:     "function",
					Function: aisdk.FunctionCall{Name: "LookupUser", Arguments: `{"name":"Big Bird"}`},
				}},
			},
			FinishReason: "tool_calls",
		}},
	}}}

	s := NewSession(client, "m")
	require.NoError(t, s.Add(ctx, "user", "I want to change my address."))

	tools := []aisdk.ChatTool{{Type: "function", Function: aisdk.ChatToolFunction{Name: "LookupUser"}}}
	reply, err := s.Complete(ctx, tools)
	require.NoError(t, err)
	require.True(t, reply.HasToolCalls())
	assert.Equal(t, "LookupUser", reply.ToolCalls[0].Function.Name)
	assert.Equal(t, "", reply.Message.Content())
	assert.Equal(t, tools, client.requests[0].Tools)
}

func TestCompleteReturnsClientError(t *testing.T) {
	boom := errors.New("503 service unavailable")
	client := &fakeCompleter{err: boom}

	s := NewSession(client, "m", aisdk.MustMessage(aisdk.RoleUser, "Hi"))
	_, err := s.Complete(context.Background(), nil)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, client.requests, 1)
	assert.Len(t, s.Transcript(), 1)
}

func TestCompleteNoChoices(t *testing.T) {
	client := &fakeCompleter{responses: []*aisdk.ChatCompletionResponse{{}}}
	s := NewSession(client, "m", aisdk.MustMessage(aisdk.RoleUser, "Hi"))
	_, err := s.Complete(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoChoices)
}

func TestCompleteDefaultsMissingRole(t *testing.T) {
	content := "hello"
	client := &fakeCompleter{responses: []*aisdk.ChatCompletionResponse{{
		Choices: []aisdk.Choice{{Message: aisdk.ResponseMessage{Content: &content}}},
	}}}
	s := NewSession(client, "m", aisdk.MustMessage(aisdk.RoleUser, "Hi"))
	reply, err := s.Complete(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, aisdk.RoleAssistant, reply.Message.Role())
}

func TestTrimOnlyAffectsOutgoingMessages(t *testing.T) {
	ctx := context.Background()
	client := &fakeCompleter{responses: []*aisdk.ChatCompletionResponse{textReply("ok")}}

	s := NewSession(client, "m")
	s.Trim = func(msgs []aisdk.Message) []aisdk.Message {
		return msgs[len(msgs)-1:]
	}
	require.NoError(t, s.Add(ctx, "system", "sys"))
	require.NoError(t, s.Add(ctx, "user", "one"))
	require.NoError(t, s.Add(ctx, "user", "two"))

	_, err := s.Complete(ctx, nil)
	require.NoError(t, err)
	require.Len(t, client.requests[0].Messages, 1)
	assert.Equal(t, "two", client.requests[0].Messages[0].Content())
	assert.Len(t, s.Transcript(), 4)
}

func TestAddRejectsInvalidRole(t *testing.T) {
	s := NewSession(&fakeCompleter{}, "m")
	err := s.Add(context.Background(), "tool", "{}")
	var roleErr *aisdk.InvalidRoleError
	assert.ErrorAs(t, err, &roleErr)
	assert.ErrorIs(t, err, aisdk.ErrValidation)
	assert.Empty(t, s.Transcript())

	err = s.AddMessage(context.Background(), aisdk.Message{})
	assert.ErrorIs(t, err, aisdk.ErrValidation)
}

func TestRecorderErrorIsReturned(t *testing.T) {
	boom := errors.New("disk full")
	s := NewSession(&fakeCompleter{}, "m")
	s.Recorder = &memoryRecorder{err: boom}
	assert.ErrorIs(t, s.Add(context.Background(), "user", "hi"), boom)
	assert.Empty(t, s.Transcript())
}

func TestAddToolResults(t *testing.T) {
	ctx := context.Background()
	s := NewSession(&fakeCompleter{}, "m")

	call := &aisdk.ToolCall{ID: "call_9", Function: aisdk.FunctionCall{Name: "LookupUser"}}
	results := []ToolResult{
		NewToolResult(call, &aisdk.ToolResponse{Type: "json", Content: []byte(`{"user_account_id":"42"}`)}),
		{ToolCallID: "call_10", Name: "RequestMoreInformation", Content: "What is your name?"},
	}
	require.NoError(t, s.AddToolResults(ctx, results))

	transcript := s.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, aisdk.RoleAssistant, transcript[0].Role())
	assert.JSONEq(t, `{"tool_call_id":"call_9","role":"tool","name":"LookupUser","content":"{\"user_account_id\":\"42\"}"}`, transcript[0].Content())
	assert.JSONEq(t, `{"tool_call_id":"call_10","role":"tool","name":"RequestMoreInformation","content":"What is your name?"}`, transcript[1].Content())
}

func TestToolResultKeyOrder(t *testing.T) {
	msg, err := ToolResult{ToolCallID: "a", Name: "b", Content: "c"}.Message()
	require.NoError(t, err)
	assert.Equal(t, `{"tool_call_id":"a","role":"tool","name":"b","content":"c"}`, msg.Content())
}
