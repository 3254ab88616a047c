package schema

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/elee1766/chatsamples/src/aisdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	jsonschema "github.com/swaggest/jsonschema-go"
)

func TestNormalizeLookupUser(t *testing.T) {
	tools, err := Normalize([]ParameterSchema{{
		Name: "LookupUser",
		Properties: map[string]*jsonschema.Schema{
			"name": CreateStringSchema(""),
		},
		Required: []string{"name"},
	}})
	require.NoError(t, err)
	require.Len(t, tools, 1)

	data, err := json.Marshal(tools[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type":"function",
		"function":{
			"name":"LookupUser",
			"parameters":{
				"type":"object",
				"properties":{"name":{"type":"string"}},
				"required":["name"]
			}
		}
	}`, string(data))
}

func TestNormalizeDefaultsRequiredToEmpty(t *testing.T) {
	tool, err := NormalizeOne(ParameterSchema{
		Name: "GetWeather",
		Properties: map[string]*jsonschema.Schema{
			"location": CreateStringSchema(""),
		},
	})
	require.NoError(t, err)
	require.NotNil(t, tool.Function.Parameters.Required)
	assert.Empty(t, tool.Function.Parameters.Required)

	data, err := json.Marshal(tool)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	params := decoded["function"].(map[string]any)["parameters"].(map[string]any)
	assert.Equal(t, []any{}, params["required"])
	assert.Equal(t, "object", params["type"])
}

func TestNormalizeKeepsDescription(t *testing.T) {
	tool, err := NormalizeOne(ParameterSchema{
		Name:        "RequestMoreInformation",
		Description: "Requests more information from the user.",
		Properties: map[string]*jsonschema.Schema{
			"information": CreateStringSchema("The information to gather"),
		},
		Required: []string{"information"},
	})
	require.NoError(t, err)
	assert.Equal(t, "function", tool.Type)
	assert.Equal(t, "Requests more information from the user.", tool.Function.Description)
	assert.Equal(t, []string{"information"}, tool.Function.Parameters.Required)
}

func TestNormalizePreservesOrder(t *testing.T) {
	names := []string{"ChangeAddress", "ChangePhoneNumber", "LookupUser", "RequestMoreInformation", "Alpha"}
	schemas := make([]ParameterSchema, len(names))
	for i, name := range names {
		schemas[i] = ParameterSchema{Name: name, Properties: map[string]*jsonschema.Schema{}}
	}

	tools, err := Normalize(schemas)
	require.NoError(t, err)
	require.Len(t, tools, len(names))
	for i, tool := range tools {
		assert.Equal(t, names[i], tool.Function.Name)
	}
}

func TestNormalizeEmptyList(t *testing.T) {
	tools, err := Normalize(nil)
	require.NoError(t, err)
	assert.Empty(t, tools)
}

func TestNormalizeShapeErrors(t *testing.T) {
	tests := []struct {
		name   string
		schema ParameterSchema
	}{
		{
			name:   "missing properties",
			schema: ParameterSchema{Name: "NoProps"},
		},
		{
			name: "required not in properties",
			schema: ParameterSchema{
				Name:       "Dangling",
				Properties: map[string]*jsonschema.Schema{"a": CreateStringSchema("")},
				Required:   []string{"a", "b"},
			},
		},
		{
			name:   "missing name",
			schema: ParameterSchema{Properties: map[string]*jsonschema.Schema{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			good := ParameterSchema{Name: "Good", Properties: map[string]*jsonschema.Schema{}}
			tools, err := Normalize([]ParameterSchema{good, tt.schema})

			var shapeErr *aisdk.SchemaShapeError
			require.ErrorAs(t, err, &shapeErr)
			assert.ErrorIs(t, err, aisdk.ErrValidation)
			assert.Nil(t, tools)
		})
	}
}

func TestNormalizeDoesNotAliasInput(t *testing.T) {
	ps := ParameterSchema{
		Name:       "LookupUser",
		Properties: map[string]*jsonschema.Schema{"name": CreateStringSchema("")},
		Required:   []string{"name"},
	}
	tool, err := NormalizeOne(ps)
	require.NoError(t, err)

	ps.Properties["address"] = CreateStringSchema("")
	ps.Required[0] = "address"
	ps.Properties["name"].WithDescription("mutated")

	assert.Len(t, tool.Function.Parameters.Properties, 1)
	assert.Equal(t, []string{"name"}, tool.Function.Parameters.Required)

	data, err := json.Marshal(tool)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "mutated")
}

func TestNormalizeRejectsNullProperty(t *testing.T) {
	_, err := NormalizeOne(ParameterSchema{
		Name:       "X",
		Properties: map[string]*jsonschema.Schema{"a": nil},
	})
	var shapeErr *aisdk.SchemaShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "X", shapeErr.Schema)
	assert.Contains(t, shapeErr.Reason, `"a"`)
}

func TestNormalizeManyFromJSON(t *testing.T) {
	for n := 1; n <= 4; n++ {
		t.Run(fmt.Sprintf("%d schemas", n), func(t *testing.T) {
			var schemas []ParameterSchema
			for i := 0; i < n; i++ {
				doc := fmt.Sprintf(`{"title":"Tool%d","properties":{"x":{"type":"integer"}},"required":["x"]}`, i)
				ps, err := FromJSON([]byte(doc))
				require.NoError(t, err)
				schemas = append(schemas, ps)
			}
			tools, err := Normalize(schemas)
			require.NoError(t, err)
			require.Len(t, tools, n)
			for i, tool := range tools {
				assert.Equal(t, fmt.Sprintf("Tool%d", i), tool.Function.Name)
			}
		})
	}
}
