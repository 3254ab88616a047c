package schema

import (
	"testing"

	jsonschema "github.com/swaggest/jsonschema-go"
)

func TestCreateStringSchema(t *testing.T) {
	schema := CreateStringSchema("test description")

	if schema == nil {
		t.Fatal("Expected schema to be non-nil")
	}

	if schema.Description == nil || *schema.Description != "test description" {
		t.Errorf("Expected description 'test description', got %v", schema.Description)
	}

	if schema.Type == nil || schema.Type.SimpleTypes == nil {
		t.Fatal("Expected type to be set")
	}

	expectedType := jsonschema.SimpleType("string")
	if *schema.Type.SimpleTypes != expectedType {
		t.Errorf("Expected type 'string', got %v", *schema.Type.SimpleTypes)
	}
}

func TestCreateStringSchemaNoDescription(t *testing.T) {
	schema := CreateStringSchema("")
	if schema.Description != nil {
		t.Errorf("Expected no description, got %q", *schema.Description)
	}
}

func TestCreateBoolSchema(t *testing.T) {
	schema := CreateBoolSchema("test bool", true)

	if schema.Type == nil || schema.Type.SimpleTypes == nil {
		t.Fatal("Expected type to be set")
	}

	expectedType := jsonschema.SimpleType("boolean")
	if *schema.Type.SimpleTypes != expectedType {
		t.Errorf("Expected type 'boolean', got %v", *schema.Type.SimpleTypes)
	}

	if schema.Default == nil || *schema.Default != true {
		t.Errorf("Expected default true, got %v", schema.Default)
	}
}

func TestCreateStringSchemaEnum(t *testing.T) {
	schema := CreateStringSchemaEnum("channel", []string{"sms", "email"})

	if len(schema.Enum) != 2 || schema.Enum[0] != "sms" || schema.Enum[1] != "email" {
		t.Errorf("Expected enum [sms email], got %v", schema.Enum)
	}
}

func TestCreateObjectSchema(t *testing.T) {
	properties := map[string]*jsonschema.Schema{
		"street": CreateStringSchema("Street"),
		"number": CreateIntegerSchema("House number"),
	}
	required := []string{"street"}

	schema := CreateObjectSchema(properties, required)

	if schema.Type == nil || schema.Type.SimpleTypes == nil {
		t.Fatal("Expected type to be set")
	}

	expectedType := jsonschema.SimpleType("object")
	if *schema.Type.SimpleTypes != expectedType {
		t.Errorf("Expected type 'object', got %v", *schema.Type.SimpleTypes)
	}

	if len(schema.Properties) != 2 {
		t.Errorf("Expected 2 properties, got %d", len(schema.Properties))
	}

	if len(schema.Required) != 1 || schema.Required[0] != "street" {
		t.Errorf("Expected required field 'street', got %v", schema.Required)
	}
}
