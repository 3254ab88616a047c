package toolbox

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elee1766/chatsamples/src/aisdk"
)

type GreetUser struct {
	Name     string `json:"name" description:"Who to greet" required:"true"`
	Greeting string `json:"greeting,omitempty" description:"Optional greeting word"`
}

func (g GreetUser) Validate() error {
	if g.Name == "nobody" {
		return errors.New("nobody cannot be greeted")
	}
	return nil
}

type greetOutput struct {
	Message string `json:"message"`
}

type CountWords struct {
	Text string `json:"text" required:"true"`
}

type countOutput struct {
	Count int `json:"count"`
}

func greetTool(t *testing.T) Tool {
	t.Helper()
	tool, err := NewTool("Greets a user.", func(_ context.Context, in GreetUser) (greetOutput, error) {
		if in.Name == "error" {
			return greetOutput{}, errors.New("greeter is broken")
		}
		greeting := in.Greeting
		if greeting == "" {
			greeting = "Hello"
		}
		return greetOutput{Message: greeting + ", " + in.Name}, nil
	})
	require.NoError(t, err)
	return tool
}

func countTool(t *testing.T) Tool {
	t.Helper()
	tool, err := NewTool("Counts words.", func(_ context.Context, in CountWords) (countOutput, error) {
		n := 0
		inWord := false
		for _, r := range in.Text {
			if r == ' ' {
				inWord = false
				continue
			}
			if !inWord {
				n++
				inWord = true
			}
		}
		return countOutput{Count: n}, nil
	})
	require.NoError(t, err)
	return tool
}

func call(id, name, args string) aisdk.ToolCall {
	return aisdk.ToolCall{ID: id, Type: "function", Function: aisdk.FunctionCall{Name: name, Arguments: args}}
}

func TestNewToolSchema(t *testing.T) {
	tool := greetTool(t)
	assert.Equal(t, "GreetUser", tool.Name())

	ps := tool.Schema()
	assert.Equal(t, "Greets a user.", ps.Description)
	assert.Equal(t, []string{"name"}, ps.Required)
	require.Contains(t, ps.Properties, "name")
	require.Contains(t, ps.Properties, "greeting")
}

func TestNewToolRejectsNonStruct(t *testing.T) {
	_, err := NewTool("bad", func(_ context.Context, in string) (string, error) { return in, nil })
	assert.Error(t, err)

	_, err = NewTool[GreetUser, greetOutput]("nil", nil)
	assert.Error(t, err)
}

func TestTypedToolExecute(t *testing.T) {
	tool := greetTool(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		args      string
		wantError bool
		want      string
	}{
		{name: "ok", args: `{"name":"Big Bird"}`, want: `{"message":"Hello, Big Bird"}`},
		{name: "optional field", args: `{"name":"Elmo","greeting":"Hi"}`, want: `{"message":"Hi, Elmo"}`},
		{name: "malformed json", args: `{"name":`, wantError: true},
		{name: "missing required", args: `{"greeting":"Hi"}`, wantError: true},
		{name: "null required", args: `{"name":null}`, wantError: true},
		{name: "no arguments", args: ``, wantError: true},
		{name: "validate hook", args: `{"name":"nobody"}`, wantError: true},
		{name: "handler error", args: `{"name":"error"}`, wantError: true, want: "greeter is broken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := call("call_1", "GreetUser", tt.args)
			resp, err := tool.Execute(ctx, &c)
			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantError, resp.IsError)
			if tt.wantError {
				assert.Equal(t, "error", resp.Type)
				if tt.want != "" {
					assert.Equal(t, tt.want, string(resp.Content))
				}
				return
			}
			assert.Equal(t, "success", resp.Type)
			assert.JSONEq(t, tt.want, string(resp.Content))
		})
	}
}

func TestTypedToolCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := call("call_1", "GreetUser", `{"name":"x"}`)
	_, err := greetTool(t).Execute(ctx, &c)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestToolboxRegisterOrder(t *testing.T) {
	tb := New()
	require.NoError(t, tb.Register(countTool(t), greetTool(t)))
	assert.Equal(t, 2, tb.Len())

	tools, err := tb.ChatTools()
	require.NoError(t, err)
	require.Len(t, tools, 2)
	assert.Equal(t, "CountWords", tools[0].Function.Name)
	assert.Equal(t, "GreetUser", tools[1].Function.Name)
	assert.Equal(t, "function", tools[1].Type)
	assert.Equal(t, "object", tools[1].Function.Parameters.Type)
	assert.Equal(t, []string{"name"}, tools[1].Function.Parameters.Required)

	_, ok := tb.Get("GreetUser")
	assert.True(t, ok)
	_, ok = tb.Get("Missing")
	assert.False(t, ok)
}

func TestToolboxRegisterDuplicate(t *testing.T) {
	tb := New()
	require.NoError(t, tb.Register(greetTool(t)))
	assert.Error(t, tb.Register(greetTool(t)))
	assert.Equal(t, 1, tb.Len())
}

func TestToolboxExecuteUnknown(t *testing.T) {
	tb := New()
	c := call("call_1", "Nope", `{}`)
	_, err := tb.Execute(context.Background(), &c)
	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestToolboxMiddlewareOrder(t *testing.T) {
	tb := New()
	require.NoError(t, tb.Register(greetTool(t)))

	var trace []string
	mark := func(name string) ToolMiddleware {
		return func(next ToolExecutor) ToolExecutor {
			return func(ctx context.Context, c *aisdk.ToolCall) (*aisdk.ToolResponse, error) {
				trace = append(trace, name+">")
				resp, err := next(ctx, c)
				trace = append(trace, "<"+name)
				return resp, err
			}
		}
	}
	tb.Use(mark("outer"))
	tb.Use(mark("inner"))
	tb.Use(LoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))

	c := call("call_1", "GreetUser", `{"name":"Oscar"}`)
	resp, err := tb.Execute(context.Background(), &c)
	require.NoError(t, err)
	assert.False(t, resp.IsError)
	assert.Equal(t, []string{"outer>", "inner>", "<inner", "<outer"}, trace)
}

func TestToolboxExecuteAll(t *testing.T) {
	tb := New()
	require.NoError(t, tb.Register(greetTool(t), countTool(t)))

	calls := []aisdk.ToolCall{
		call("call_1", "CountWords", `{"text":"one two three"}`),
		call("call_2", "Missing", `{}`),
		call("call_3", "GreetUser", `{}`),
	}
	results, err := tb.ExecuteAll(context.Background(), calls)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "call_1", results[0].ToolCallID)
	assert.Equal(t, "CountWords", results[0].Name)
	assert.JSONEq(t, `{"count":3}`, results[0].Content)
	assert.False(t, results[0].IsError)

	assert.True(t, results[1].IsError)
	assert.Contains(t, results[1].Content, "tool not found")

	assert.True(t, results[2].IsError)
	assert.Contains(t, results[2].Content, "required field 'name' is missing")
}

func TestToolboxExecuteAllStopsOnCancel(t *testing.T) {
	tb := New()
	require.NoError(t, tb.Register(greetTool(t)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := tb.ExecuteAll(ctx, []aisdk.ToolCall{call("call_1", "GreetUser", `{"name":"x"}`)})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}
