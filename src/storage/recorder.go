package storage

import (
	"context"
	"fmt"

	"github.com/elee1766/chatsamples/src/aisdk"
)

// TranscriptRecorder appends every message it is given to one conversation.
type TranscriptRecorder struct {
	db             ExecQuerier
	conversationID string
}

func NewTranscriptRecorder(db ExecQuerier, conversationID string) *TranscriptRecorder {
	return &TranscriptRecorder{db: db, conversationID: conversationID}
}

// StartConversation creates a conversation row and returns a recorder bound to it.
func StartConversation(ctx context.Context, db ExecQuerier, conv *Conversation) (*TranscriptRecorder, error) {
	if err := CreateConversation(ctx, db, conv); err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return NewTranscriptRecorder(db, conv.ID), nil
}

func (r *TranscriptRecorder) ConversationID() string {
	return r.conversationID
}

func (r *TranscriptRecorder) Record(ctx context.Context, msg aisdk.Message) error {
	row := &Message{
		ConversationID: r.conversationID,
		Role:           string(msg.Role()),
		Content:        msg.Content(),
	}
	if err := CreateMessage(ctx, r.db, row); err != nil {
		return fmt.Errorf("failed to record message: %w", err)
	}
	return nil
}
