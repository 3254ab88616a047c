package aisdk

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleSystem    Role = "system"
	RoleAssistant Role = "assistant"
)

// Roles lists the roles a message may carry. Anything else makes models behave unpredictably.
var Roles = []Role{RoleUser, RoleSystem, RoleAssistant}

func roleNames() []string {
	out := make([]string, len(Roles))
	for i, r := range Roles {
		out[i] = string(r)
	}
	return out
}

var messageValidator = validator.New()

// messageFields is the closed set of keys a message is built from.
type messageFields struct {
	Role    string `json:"role" validate:"required,oneof=user system assistant"`
	Content string `json:"content"`
}

// Message represents a single validated chat turn. The zero value is not valid;
// build messages with NewMessage or ParseMessage.
type Message struct {
	role    Role
	content string
}

// NewMessage validates role and returns an immutable Message.
func NewMessage(role, content string) (Message, error) {
	f := messageFields{Role: role, Content: content}
	if err := messageValidator.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return Message{}, &InvalidRoleError{Role: role}
		}
		return Message{}, fmt.Errorf("failed to validate message: %w", err)
	}
	return Message{role: Role(role), content: content}, nil
}

// MustMessage is like NewMessage but panics on error. Meant for literals in
// prompts and tests where the role is known at compile time.
func MustMessage(role Role, content string) Message {
	m, err := NewMessage(string(role), content)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMessage decodes a JSON object into a Message. Only the keys role and
// content are accepted; any other key rejects the whole message.
func ParseMessage(data []byte) (Message, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Message{}, fmt.Errorf("failed to decode message: %w", err)
	}

	for key := range raw {
		if key != "role" && key != "content" {
			return Message{}, &UnexpectedFieldError{Field: key}
		}
	}

	var fields messageFields
	for _, key := range []string{"role", "content"} {
		value, ok := raw[key]
		if !ok {
			return Message{}, &MissingFieldError{Field: key}
		}
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			return Message{}, &NullFieldError{Field: key}
		}
		target := &fields.Role
		if key == "content" {
			target = &fields.Content
		}
		if err := json.Unmarshal(value, target); err != nil {
			return Message{}, fmt.Errorf("failed to decode %s: %w", key, err)
		}
	}

	return NewMessage(fields.Role, fields.Content)
}

// Role returns the author of the message.
func (m Message) Role() Role { return m.role }

// Content returns the message text.
func (m Message) Content() string { return m.content }

// IsZero reports whether m was never constructed.
func (m Message) IsZero() bool { return m.role == "" }

// MarshalJSON emits exactly the role and content keys.
func (m Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(messageFields{Role: string(m.role), Content: m.content})
}

// UnmarshalJSON applies the same strict rules as ParseMessage.
func (m *Message) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return &MissingFieldError{Field: "role"}
	}
	parsed, err := ParseMessage(data)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Message) String() string {
	return fmt.Sprintf("[%s] %s", m.role, m.content)
}
