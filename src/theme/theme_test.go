package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elee1766/chatsamples/src/aisdk"
)

func TestRenderMessage(t *testing.T) {
	out := RenderMessage(aisdk.MustMessage(aisdk.RoleAssistant, "Ahoy there"))
	assert.Contains(t, out, "[assistant]")
	assert.Contains(t, out, "Ahoy there")
}

func TestRenderToolCall(t *testing.T) {
	out := RenderToolCall(aisdk.ToolCall{Function: aisdk.FunctionCall{Name: "LookupUser", Arguments: `{"name":"Big Bird"}`}})
	assert.Contains(t, out, "LookupUser")
	assert.Contains(t, out, `{"name":"Big Bird"}`)
}

func TestRenderToolResultAndError(t *testing.T) {
	assert.Contains(t, RenderToolResult("LookupUser", " {} \n", false), "LookupUser {}")
	assert.Contains(t, RenderError(errors.New("boom")), "boom")
}

func TestSetTheme(t *testing.T) {
	old := CurrentTheme
	defer SetTheme(old)

	SetTheme(Theme{Primary: "#123456"})
	assert.Equal(t, "#123456", string(CurrentTheme.Primary))
}
