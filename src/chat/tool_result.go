package chat

import (
	"encoding/json"
	"fmt"

	"github.com/elee1766/chatsamples/src/aisdk"
)

// ToolResult is the output of one executed tool call, ready to be fed back.
type ToolResult struct {
	ToolCallID string
	Name       string
	Content    string
	IsError    bool
}

// toolResultPayload is the JSON placed in the message content. Field order is
// the order the model sees.
type toolResultPayload struct {
	ToolCallID string `json:"tool_call_id"`
	Role       string `json:"role"`
	Name       string `json:"name"`
	Content    string `json:"content"`
}

// NewToolResult pairs a call with the response produced for it.
func NewToolResult(call *aisdk.ToolCall, resp *aisdk.ToolResponse) ToolResult {
	r := ToolResult{ToolCallID: call.ID, Name: call.Function.Name}
	if resp != nil {
		r.Content = string(resp.Content)
		r.IsError = resp.IsError
	}
	return r
}

// Message encodes the result as an assistant message whose content is
// {"tool_call_id","role":"tool","name","content"}. Tool output rides in an
// assistant turn so the role set stays closed.
func (r ToolResult) Message() (aisdk.Message, error) {
	data, err := json.Marshal(toolResultPayload{
		ToolCallID: r.ToolCallID,
		Role:       "tool",
		Name:       r.Name,
		Content:    r.Content,
	})
	if err != nil {
		return aisdk.Message{}, fmt.Errorf("failed to encode tool result: %w", err)
	}
	return aisdk.NewMessage(string(aisdk.RoleAssistant), string(data))
}
