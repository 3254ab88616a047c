package schema

import (
	"encoding/json"
	"testing"

	"github.com/elee1766/chatsamples/src/aisdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	jsonschema "github.com/swaggest/jsonschema-go"
)

func TestFromJSON(t *testing.T) {
	ps, err := FromJSON([]byte(`{
		"title": "ChangeAddress",
		"description": "Changes the address for a user account.",
		"type": "object",
		"properties": {
			"user_account_id": {"type": "string", "description": "The user account ID"},
			"new_address": {"type": "string", "description": "The new address for this user"}
		},
		"required": ["user_account_id", "new_address"]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "ChangeAddress", ps.Name)
	assert.Equal(t, "Changes the address for a user account.", ps.Description)
	assert.Len(t, ps.Properties, 2)
	require.NotNil(t, ps.Properties["new_address"].Description)
	assert.Equal(t, "The new address for this user", *ps.Properties["new_address"].Description)
	assert.Equal(t, []string{"user_account_id", "new_address"}, ps.Required)
}

func TestFromJSONMissingProperties(t *testing.T) {
	for _, doc := range []string{
		`{"title":"Broken"}`,
		`{"title":"Broken","properties":null}`,
		`{"title":"Broken","properties":{"a":null}}`,
	} {
		_, err := FromJSON([]byte(doc))
		var shapeErr *aisdk.SchemaShapeError
		require.ErrorAs(t, err, &shapeErr, doc)
		assert.Equal(t, "Broken", shapeErr.Schema)
	}
}

func TestFromJSONNoRequired(t *testing.T) {
	ps, err := FromJSON([]byte(`{"title":"GetWeather","properties":{"location":{"type":"string"}}}`))
	require.NoError(t, err)
	assert.Nil(t, ps.Required)

	tool, err := NormalizeOne(ps)
	require.NoError(t, err)
	assert.Equal(t, []string{}, tool.Function.Parameters.Required)
}

type lookupInput struct {
	Name              string `json:"name" description:"The name of the user to look up" required:"true"`
	BankAccountNumber string `json:"bank_account_number,omitempty" description:"The bank account number of the user to look up"`
	Attempts          int    `json:"attempts,omitempty"`
}

func TestFromStruct(t *testing.T) {
	ps, err := FromStruct[lookupInput]("Resolves a user.")
	require.NoError(t, err)

	assert.Equal(t, "lookupInput", ps.Name)
	assert.Equal(t, "Resolves a user.", ps.Description)
	assert.Equal(t, []string{"name"}, ps.Required)
	require.Contains(t, ps.Properties, "name")
	require.Contains(t, ps.Properties, "bank_account_number")
	require.Contains(t, ps.Properties, "attempts")

	name := ps.Properties["name"]
	require.NotNil(t, name.Description)
	assert.Equal(t, "The name of the user to look up", *name.Description)

	tool, err := NormalizeOne(ps)
	require.NoError(t, err)
	assert.Equal(t, "lookupInput", tool.Function.Name)
}

func TestFromStructRejectsNonStruct(t *testing.T) {
	_, err := FromStruct[string]("")
	assert.Error(t, err)
}

func TestDump(t *testing.T) {
	ps := ParameterSchema{
		Name:       "RequestMoreInformation",
		Properties: map[string]*jsonschema.Schema{"information": CreateStringSchema("What to ask")},
		Required:   []string{"information"},
	}
	data, err := Dump(ps)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "RequestMoreInformation", doc["title"])
	assert.Equal(t, "object", doc["type"])
	assert.Contains(t, string(data), "\n  \"properties\"")

	back, err := FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, ps.Name, back.Name)
	assert.Equal(t, ps.Required, back.Required)
}
