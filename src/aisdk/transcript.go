package aisdk

// Transcript is the ordered list of turns in one conversation. Messages are
// only ever appended; nothing here prunes it.
type Transcript struct {
	messages []Message
}

// NewTranscript returns a transcript seeded with msgs in order.
func NewTranscript(msgs ...Message) *Transcript {
	t := &Transcript{}
	for _, m := range msgs {
		t.Append(m)
	}
	return t
}

// Append adds m at the end. Zero messages are ignored.
func (t *Transcript) Append(m Message) {
	if m.IsZero() {
		return
	}
	t.messages = append(t.messages, m)
}

// Messages returns a copy of the transcript in conversational order.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Last returns the most recent message, if any.
func (t *Transcript) Last() (Message, bool) {
	if len(t.messages) == 0 {
		return Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}
