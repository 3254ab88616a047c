package toolbox

import (
	"context"

	"github.com/elee1766/chatsamples/src/aisdk"
	"github.com/elee1766/chatsamples/src/schema"
)

// Tool is the interface that all tools must implement
type Tool interface {
	// Name is the function name the model calls the tool by
	Name() string

	// Schema describes the tool's parameters
	Schema() schema.ParameterSchema

	// Execute runs the tool with the given call
	Execute(ctx context.Context, call *aisdk.ToolCall) (*aisdk.ToolResponse, error)
}

// Validatable is implemented by tool inputs with cross-field rules that a
// JSON schema cannot express.
type Validatable interface {
	Validate() error
}
