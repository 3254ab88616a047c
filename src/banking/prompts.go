package banking

import "github.com/elee1766/chatsamples/src/aisdk"

const (
	SystemPrompt = "You are a banking assistant. You are tasked with greeting the user and figuring out " +
		"what they want to do. Only write your textual response, don't prefix with 'Assistant: ' or anything like that."

	OpeningPrompt = "I will initiate the conversation by greeting the user in a kind, light-hearted yet " +
		"professional demeanor. I will not call any functions at this point in the conversation; I will only " +
		"call a function when I am sure that the user wants to undertake an action, and after the user has " +
		"provided me with all the information I need to call the function."
)

// ScriptedUserTurns are the user lines of the simulated conversation.
var ScriptedUserTurns = []string{
	"I want to change my address.",
	"My address is 123 Sesame Street, my name is Big Bird.",
}

// Seed returns the opening transcript: the system prompt and the assistant's plan.
func Seed() []aisdk.Message {
	return []aisdk.Message{
		aisdk.MustMessage(aisdk.RoleSystem, SystemPrompt),
		aisdk.MustMessage(aisdk.RoleAssistant, OpeningPrompt),
	}
}
