// Package theme styles transcript output for the terminal.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/elee1766/chatsamples/src/aisdk"
)

// Theme represents a color theme
type Theme struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Text      lipgloss.Color
	TextMuted lipgloss.Color
	Error     lipgloss.Color
}

var CurrentTheme = Theme{
	Primary:   lipgloss.Color("#00ff00"),
	Secondary: lipgloss.Color("#5fafff"),
	Text:      lipgloss.Color("#ffffff"),
	TextMuted: lipgloss.Color("#808080"),
	Error:     lipgloss.Color("#ff5f5f"),
}

// SetTheme sets the current theme
func SetTheme(t Theme) {
	CurrentTheme = t
}

// RoleStyle returns the label style for a message role.
func RoleStyle(role aisdk.Role) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	switch role {
	case aisdk.RoleAssistant:
		return style.Foreground(CurrentTheme.Primary)
	case aisdk.RoleUser:
		return style.Foreground(CurrentTheme.Secondary)
	default:
		return style.Foreground(CurrentTheme.TextMuted)
	}
}

// Label renders a bracketed role label such as "[assistant]".
func Label(role aisdk.Role) string {
	return RoleStyle(role).Render("[" + string(role) + "]")
}

// RenderMessage renders one transcript entry.
func RenderMessage(msg aisdk.Message) string {
	body := lipgloss.NewStyle().Foreground(CurrentTheme.Text).Render(msg.Content())
	return Label(msg.Role()) + " " + body
}

// RenderToolCall renders a tool call requested by the model.
func RenderToolCall(call aisdk.ToolCall) string {
	name := lipgloss.NewStyle().Foreground(CurrentTheme.Secondary).Render(call.Function.Name)
	args := lipgloss.NewStyle().Foreground(CurrentTheme.TextMuted).Render(call.Function.Arguments)
	return fmt.Sprintf("%s %s %s", Label("tool call"), name, args)
}

// RenderToolResult renders the output fed back for a call.
func RenderToolResult(name, content string, isError bool) string {
	color := CurrentTheme.TextMuted
	if isError {
		color = CurrentTheme.Error
	}
	return fmt.Sprintf("%s %s %s", Label("tool"), name,
		lipgloss.NewStyle().Foreground(color).Render(strings.TrimSpace(content)))
}

// RenderError renders a failure line.
func RenderError(err error) string {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Error).Bold(true).Render("error:") + " " + err.Error()
}

// Muted renders secondary information.
func Muted(s string) string {
	return lipgloss.NewStyle().Foreground(CurrentTheme.TextMuted).Render(s)
}
