package schema

import (
	jsonschema "github.com/swaggest/jsonschema-go"
)

// Helper functions to create property schemas

// CreateStringSchema creates a JSON schema for a string field
func CreateStringSchema(description string) *jsonschema.Schema {
	strType := jsonschema.SimpleType("string")
	s := &jsonschema.Schema{
		Type: &jsonschema.Type{SimpleTypes: &strType},
	}
	if description != "" {
		s.Description = &description
	}
	return s
}

// CreateBoolSchema creates a JSON schema for a boolean field with default value
func CreateBoolSchema(description string, defaultValue bool) *jsonschema.Schema {
	boolType := jsonschema.SimpleType("boolean")
	defVal := interface{}(defaultValue)
	return &jsonschema.Schema{
		Type:        &jsonschema.Type{SimpleTypes: &boolType},
		Description: &description,
		Default:     &defVal,
	}
}

// CreateIntegerSchema creates a JSON schema for an integer field
func CreateIntegerSchema(description string) *jsonschema.Schema {
	intType := jsonschema.SimpleType("integer")
	return &jsonschema.Schema{
		Type:        &jsonschema.Type{SimpleTypes: &intType},
		Description: &description,
	}
}

// CreateStringSchemaEnum creates a JSON schema for a string field with enum values
func CreateStringSchemaEnum(description string, enumValues []string) *jsonschema.Schema {
	s := CreateStringSchema(description)
	s.Enum = make([]interface{}, len(enumValues))
	for i, v := range enumValues {
		s.Enum[i] = v
	}
	return s
}

// CreateObjectSchema creates a nested object property with its own properties and required fields.
func CreateObjectSchema(properties map[string]*jsonschema.Schema, required []string) *jsonschema.Schema {
	schemaProps := make(map[string]jsonschema.SchemaOrBool, len(properties))
	for name, prop := range properties {
		schemaProps[name] = jsonschema.SchemaOrBool{TypeObject: prop}
	}

	objType := jsonschema.SimpleType("object")
	return &jsonschema.Schema{
		Type:       &jsonschema.Type{SimpleTypes: &objType},
		Properties: schemaProps,
		Required:   required,
	}
}
