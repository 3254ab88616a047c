package schema

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/elee1766/chatsamples/src/aisdk"
	jsonschema "github.com/swaggest/jsonschema-go"
)

// ParameterSchema describes the inputs of one callable tool.
// A nil Properties map means the schema has no properties key at all and is rejected by Normalize;
// use an empty map for a tool that takes no arguments.
type ParameterSchema struct {
	Name        string
	Description string
	Properties  map[string]*jsonschema.Schema
	Required    []string
}

// modelSchema is the JSON schema document for a model, as produced by schema generators.
type modelSchema struct {
	Title       string                        `json:"title"`
	Description string                        `json:"description,omitempty"`
	Type        string                        `json:"type"`
	Properties  map[string]*jsonschema.Schema `json:"properties"`
	Required    []string                      `json:"required,omitempty"`
}

// FromJSON decodes a model JSON schema ({"title", "description", "properties", "required"}).
// A document without a properties key fails with *aisdk.SchemaShapeError.
func FromJSON(data []byte) (ParameterSchema, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return ParameterSchema{}, fmt.Errorf("failed to decode schema: %w", err)
	}

	var ps ParameterSchema
	for _, key := range []string{"title", "name"} {
		if v, ok := raw[key]; ok {
			if err := json.Unmarshal(v, &ps.Name); err != nil {
				return ParameterSchema{}, fmt.Errorf("failed to decode %s: %w", key, err)
			}
			break
		}
	}

	props, ok := raw["properties"]
	if !ok {
		return ParameterSchema{}, &aisdk.SchemaShapeError{Schema: ps.Name, Reason: "missing properties"}
	}
	if err := json.Unmarshal(props, &ps.Properties); err != nil {
		return ParameterSchema{}, fmt.Errorf("failed to decode properties of %q: %w", ps.Name, err)
	}
	if ps.Properties == nil {
		// "properties": null
		return ParameterSchema{}, &aisdk.SchemaShapeError{Schema: ps.Name, Reason: "missing properties"}
	}
	for name, prop := range ps.Properties {
		if prop == nil {
			return ParameterSchema{}, &aisdk.SchemaShapeError{
				Schema: ps.Name,
				Reason: fmt.Sprintf("property %q has no schema", name),
			}
		}
	}

	if v, ok := raw["description"]; ok {
		if err := json.Unmarshal(v, &ps.Description); err != nil {
			return ParameterSchema{}, fmt.Errorf("failed to decode description of %q: %w", ps.Name, err)
		}
	}
	if v, ok := raw["required"]; ok {
		if err := json.Unmarshal(v, &ps.Required); err != nil {
			return ParameterSchema{}, fmt.Errorf("failed to decode required of %q: %w", ps.Name, err)
		}
	}

	return ps, nil
}

// FromStruct reflects the input struct T into a ParameterSchema. The schema is
// named after the Go type; fields tagged required:"true" become required and
// description tags become property descriptions.
func FromStruct[T any](description string) (ParameterSchema, error) {
	var input T
	typ := reflect.TypeOf(input)
	if typ == nil {
		return ParameterSchema{}, fmt.Errorf("tool input type must be a struct, got interface")
	}
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return ParameterSchema{}, fmt.Errorf("tool input type must be a struct, got %s", typ.Kind())
	}

	reflector := jsonschema.Reflector{}
	reflected, err := reflector.Reflect(input, jsonschema.InlineRefs)
	if err != nil {
		return ParameterSchema{}, fmt.Errorf("failed to generate schema for %s: %w", typ.Name(), err)
	}

	ps := ParameterSchema{
		Name:        typ.Name(),
		Description: description,
		Properties:  make(map[string]*jsonschema.Schema, len(reflected.Properties)),
		Required:    append([]string(nil), reflected.Required...),
	}
	if ps.Description == "" && reflected.Description != nil {
		ps.Description = *reflected.Description
	}
	for name, prop := range reflected.Properties {
		if prop.TypeObject == nil {
			ps.Properties[name] = &jsonschema.Schema{}
			continue
		}
		ps.Properties[name] = prop.TypeObject
	}

	return ps, nil
}

// Dump renders the schema as an indented model JSON schema document.
func Dump(ps ParameterSchema) ([]byte, error) {
	return json.MarshalIndent(modelSchema{
		Title:       ps.Name,
		Description: ps.Description,
		Type:        "object",
		Properties:  ps.Properties,
		Required:    ps.Required,
	}, "", "  ")
}
