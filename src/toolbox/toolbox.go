// Package toolbox keeps an ordered set of callable tools, turns them into
// chat tool specs and executes the calls a model asks for.
package toolbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/elee1766/chatsamples/src/aisdk"
	"github.com/elee1766/chatsamples/src/chat"
	"github.com/elee1766/chatsamples/src/schema"
)

// ErrToolNotFound is returned when a call names an unregistered tool.
var ErrToolNotFound = errors.New("tool not found")

// ToolExecutor is a function type for tool execution
type ToolExecutor func(ctx context.Context, call *aisdk.ToolCall) (*aisdk.ToolResponse, error)

// ToolMiddleware is a function that wraps a ToolExecutor to add functionality.
type ToolMiddleware func(next ToolExecutor) ToolExecutor

// Toolbox handles tool/function calling functionality. Tools keep the order
// they were registered in.
type Toolbox struct {
	order      []string
	tools      map[string]Tool
	middleware []ToolMiddleware
}

// New creates an empty toolbox.
func New() *Toolbox {
	return &Toolbox{
		tools: make(map[string]Tool),
	}
}

// Register adds tools in order. It stops at the first empty or duplicate name.
func (tb *Toolbox) Register(tools ...Tool) error {
	for _, tool := range tools {
		name := tool.Name()
		if name == "" {
			return fmt.Errorf("tool name cannot be empty")
		}
		if _, exists := tb.tools[name]; exists {
			return fmt.Errorf("tool %s is already registered", name)
		}
		tb.tools[name] = tool
		tb.order = append(tb.order, name)
	}
	return nil
}

// Use registers middleware that will be applied to all tool executions.
// Middleware is applied in the order it's registered (first registered = outermost layer).
func (tb *Toolbox) Use(middleware ToolMiddleware) {
	tb.middleware = append(tb.middleware, middleware)
}

// Tools returns the registered tools in registration order.
func (tb *Toolbox) Tools() []Tool {
	out := make([]Tool, 0, len(tb.order))
	for _, name := range tb.order {
		out = append(out, tb.tools[name])
	}
	return out
}

// Get returns a specific tool by name.
func (tb *Toolbox) Get(name string) (Tool, bool) {
	tool, exists := tb.tools[name]
	return tool, exists
}

func (tb *Toolbox) Len() int {
	return len(tb.order)
}

// Schemas returns every tool's parameter schema in registration order.
func (tb *Toolbox) Schemas() []schema.ParameterSchema {
	out := make([]schema.ParameterSchema, 0, len(tb.order))
	for _, name := range tb.order {
		out = append(out, tb.tools[name].Schema())
	}
	return out
}

// ChatTools normalizes the registered schemas into request tool specs.
func (tb *Toolbox) ChatTools() ([]aisdk.ChatTool, error) {
	return schema.Normalize(tb.Schemas())
}

// Execute executes a tool call with middleware applied.
func (tb *Toolbox) Execute(ctx context.Context, call *aisdk.ToolCall) (*aisdk.ToolResponse, error) {
	tool, exists := tb.tools[call.Function.Name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, call.Function.Name)
	}

	// Apply middleware chain
	executor := ToolExecutor(tool.Execute)
	for i := len(tb.middleware) - 1; i >= 0; i-- {
		executor = tb.middleware[i](executor)
	}

	return executor(ctx, call)
}

// ExecuteAll runs calls one after another and returns a result per call in
// the same order. Unknown tools and failures become error results so the
// model can see what went wrong; only a done context stops the loop early.
func (tb *Toolbox) ExecuteAll(ctx context.Context, calls []aisdk.ToolCall) ([]chat.ToolResult, error) {
	results := make([]chat.ToolResult, 0, len(calls))
	for i := range calls {
		call := &calls[i]
		resp, err := tb.Execute(ctx, call)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return results, ctxErr
			}
			resp = errorResponse("%s", err.Error())
		}
		results = append(results, chat.NewToolResult(call, resp))
	}
	return results, nil
}

// LoggingMiddleware logs tool execution details.
func LoggingMiddleware(logger *slog.Logger) ToolMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next ToolExecutor) ToolExecutor {
		return func(ctx context.Context, call *aisdk.ToolCall) (*aisdk.ToolResponse, error) {
			logger.DebugContext(ctx, "executing tool", "tool", call.Function.Name, "call_id", call.ID, "params", call.Function.Arguments)
			result, err := next(ctx, call)
			switch {
			case err != nil:
				logger.WarnContext(ctx, "tool execution failed", "tool", call.Function.Name, "error", err)
			case result != nil && result.IsError:
				logger.InfoContext(ctx, "tool returned an error", "tool", call.Function.Name, "content", string(result.Content))
			default:
				logger.DebugContext(ctx, "tool execution completed", "tool", call.Function.Name)
			}
			return result, err
		}
	}
}
