package schema

import (
	"encoding/json"
	"fmt"

	"github.com/elee1766/chatsamples/src/aisdk"
	jsonschema "github.com/swaggest/jsonschema-go"
)

// Normalize converts parameter schemas into chat tool specs, one per schema and
// in the same order. The first malformed schema fails the whole call.
func Normalize(schemas []ParameterSchema) ([]aisdk.ChatTool, error) {
	tools := make([]aisdk.ChatTool, 0, len(schemas))
	for i, ps := range schemas {
		tool, err := NormalizeOne(ps)
		if err != nil {
			return nil, fmt.Errorf("schema %d: %w", i, err)
		}
		tools = append(tools, tool)
	}
	return tools, nil
}

// NormalizeOne converts a single parameter schema into a chat tool spec.
func NormalizeOne(ps ParameterSchema) (aisdk.ChatTool, error) {
	if ps.Name == "" {
		return aisdk.ChatTool{}, &aisdk.SchemaShapeError{Reason: "missing name"}
	}
	if ps.Properties == nil {
		return aisdk.ChatTool{}, &aisdk.SchemaShapeError{Schema: ps.Name, Reason: "missing properties"}
	}

	properties := make(map[string]*jsonschema.Schema, len(ps.Properties))
	for name, prop := range ps.Properties {
		if prop == nil {
			return aisdk.ChatTool{}, &aisdk.SchemaShapeError{
				Schema: ps.Name,
				Reason: fmt.Sprintf("property %q has no schema", name),
			}
		}
		cp, err := cloneSchema(prop)
		if err != nil {
			return aisdk.ChatTool{}, fmt.Errorf("failed to copy property %q of %q: %w", name, ps.Name, err)
		}
		properties[name] = cp
	}

	required := make([]string, 0, len(ps.Required))
	for _, name := range ps.Required {
		if _, ok := properties[name]; !ok {
			return aisdk.ChatTool{}, &aisdk.SchemaShapeError{
				Schema: ps.Name,
				Reason: fmt.Sprintf("required field %q is not a property", name),
			}
		}
		required = append(required, name)
	}

	return aisdk.ChatTool{
		Type: "function",
		Function: aisdk.ChatToolFunction{
			Name:        ps.Name,
			Description: ps.Description,
			Parameters: aisdk.ToolParameters{
				Type:       "object",
				Properties: properties,
				Required:   required,
			},
		},
	}, nil
}

// cloneSchema deep-copies a property so tool specs share nothing with their input.
func cloneSchema(s *jsonschema.Schema) (*jsonschema.Schema, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var cp jsonschema.Schema
	if err := json.Unmarshal(data, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}
