// Package schema turns declarative parameter schemas into the tool specs a
// function-calling chat API expects.
//
// A ParameterSchema is the model-side description of one callable tool: a
// title, a description, its properties and which of them are required. It can
// be written by hand, decoded from a JSON schema document, or reflected from a
// Go struct. Normalize reshapes any number of them into aisdk.ChatTool values:
//
//	import "github.com/elee1766/chatsamples/src/schema"
//
//	lookup := schema.ParameterSchema{
//		Name: "LookupUser",
//		Properties: map[string]*jsonschema.Schema{
//			"name": schema.CreateStringSchema("The name of the user to look up"),
//		},
//		Required: []string{"name"},
//	}
//	tools, err := schema.Normalize([]schema.ParameterSchema{lookup})
//
// The helpers below build property schemas for the common scalar cases.
package schema
