package toolbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elee1766/chatsamples/src/aisdk"
	"github.com/elee1766/chatsamples/src/schema"
)

// Handler is the typed implementation behind a TypedTool.
type Handler[TInput any, TOutput any] func(ctx context.Context, input TInput) (TOutput, error)

// TypedTool adapts a Handler to the Tool interface. Its schema is reflected
// from TInput, so the struct definition is the single source of truth.
type TypedTool[TInput any, TOutput any] struct {
	schema  schema.ParameterSchema
	handler Handler[TInput, TOutput]
}

// NewTool creates a tool named after TInput.
func NewTool[TInput any, TOutput any](description string, handler Handler[TInput, TOutput]) (*TypedTool[TInput, TOutput], error) {
	if handler == nil {
		return nil, fmt.Errorf("tool handler cannot be nil")
	}
	ps, err := schema.FromStruct[TInput](description)
	if err != nil {
		return nil, err
	}
	return &TypedTool[TInput, TOutput]{schema: ps, handler: handler}, nil
}

func (t *TypedTool[TInput, TOutput]) Name() string {
	return t.schema.Name
}

func (t *TypedTool[TInput, TOutput]) Schema() schema.ParameterSchema {
	return t.schema
}

// Execute runs the tool with the given parameters. Problems with the input or
// the handler come back as an error response for the model to read; the
// returned error is reserved for the caller's context being done.
func (t *TypedTool[TInput, TOutput]) Execute(ctx context.Context, call *aisdk.ToolCall) (*aisdk.ToolResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	args := call.Function.RawArguments()

	// Parse and validate input
	var input TInput
	if err := json.Unmarshal(args, &input); err != nil {
		return errorResponse("failed to parse input: %v", err), nil
	}

	if err := t.validateRequired(args); err != nil {
		return errorResponse("validation failed: %v", err), nil
	}

	if v, ok := any(input).(Validatable); ok {
		if err := v.Validate(); err != nil {
			return errorResponse("validation failed: %v", err), nil
		}
	} else if v, ok := any(&input).(Validatable); ok {
		if err := v.Validate(); err != nil {
			return errorResponse("validation failed: %v", err), nil
		}
	}

	output, err := t.handler(ctx, input)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return errorResponse("%s", err.Error()), nil
	}

	// Marshal output
	content, err := json.Marshal(output)
	if err != nil {
		return errorResponse("failed to marshal result: %v", err), nil
	}

	return &aisdk.ToolResponse{
		Type:    "success",
		Content: content,
	}, nil
}

// validateRequired checks that every required property was sent and is not null
func (t *TypedTool[TInput, TOutput]) validateRequired(args json.RawMessage) error {
	if len(t.schema.Required) == 0 {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(args, &fields); err != nil {
		return err
	}
	for _, name := range t.schema.Required {
		v, ok := fields[name]
		if !ok || string(v) == "null" {
			return fmt.Errorf("required field '%s' is missing", name)
		}
	}
	return nil
}

func errorResponse(format string, args ...any) *aisdk.ToolResponse {
	return &aisdk.ToolResponse{
		Type:    "error",
		Content: []byte(fmt.Sprintf(format, args...)),
		IsError: true,
	}
}

// Ensure TypedTool implements the Tool interface
var _ Tool = (*TypedTool[struct{}, struct{}])(nil)
