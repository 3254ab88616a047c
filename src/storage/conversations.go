package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/google/uuid"

	"github.com/elee1766/chatsamples/src/aisdk"
)

// GetConversationByID retrieves a conversation by its ID
func GetConversationByID(ctx context.Context, db sqlscan.Querier, conversationID string) (*Conversation, error) {
	query := `SELECT id, title, provider, model, created_at, updated_at FROM conversations WHERE id = ?`
	var conv Conversation
	err := sqlscan.Get(ctx, db, &conv, query, conversationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, err
	}
	return &conv, nil
}

// GetLatestConversation retrieves the most recently updated conversation
func GetLatestConversation(ctx context.Context, db sqlscan.Querier) (*Conversation, error) {
	query := `SELECT id, title, provider, model, created_at, updated_at FROM conversations ORDER BY updated_at DESC, rowid DESC LIMIT 1`
	var conv Conversation
	err := sqlscan.Get(ctx, db, &conv, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // No conversations exist
		}
		return nil, err
	}
	return &conv, nil
}

// ListConversations returns conversations, newest first.
func ListConversations(ctx context.Context, db sqlscan.Querier, limit int) ([]Conversation, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, title, provider, model, created_at, updated_at FROM conversations ORDER BY updated_at DESC, rowid DESC LIMIT ?`
	var convs []Conversation
	if err := sqlscan.Select(ctx, db, &convs, query, limit); err != nil {
		return nil, err
	}
	return convs, nil
}

// CreateConversation creates a new conversation in the database
func CreateConversation(ctx context.Context, db Execer, conversation *Conversation) error {
	if conversation.ID == "" {
		conversation.ID = uuid.New().String()
	}
	if conversation.CreatedAt.IsZero() {
		conversation.CreatedAt = time.Now()
	}
	if conversation.UpdatedAt.IsZero() {
		conversation.UpdatedAt = conversation.CreatedAt
	}

	query := `INSERT INTO conversations (id, title, provider, model, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := db.ExecContext(ctx, query, conversation.ID, conversation.Title, conversation.Provider, conversation.Model, conversation.CreatedAt, conversation.UpdatedAt)
	return err
}

// GetMessagesByConversationID retrieves all messages for a conversation in append order
func GetMessagesByConversationID(ctx context.Context, db sqlscan.Querier, conversationID string) ([]Message, error) {
	query := `SELECT id, conversation_id, seq, role, content, created_at FROM messages WHERE conversation_id = ? ORDER BY seq`
	var messages []Message
	err := sqlscan.Select(ctx, db, &messages, query, conversationID)
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// CreateMessage appends a message to its conversation. Seq is assigned by the
// database as one past the conversation's current last message.
func CreateMessage(ctx context.Context, db ExecQuerier, message *Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	query := `INSERT INTO messages (id, conversation_id, seq, role, content, created_at)
		VALUES (?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM messages WHERE conversation_id = ?), ?, ?, ?)
		RETURNING seq`
	if err := sqlscan.Get(ctx, db, &message.Seq, query,
		message.ID, message.ConversationID, message.ConversationID, message.Role, message.Content, message.CreatedAt); err != nil {
		return err
	}

	_, err := db.ExecContext(ctx, `UPDATE conversations SET updated_at = ? WHERE id = ?`, message.CreatedAt, message.ConversationID)
	return err
}

// LoadTranscript rebuilds the in-memory transcript of a conversation. Stored
// rows that no longer form valid messages are reported rather than skipped.
func LoadTranscript(ctx context.Context, db sqlscan.Querier, conversationID string) (*aisdk.Transcript, error) {
	rows, err := GetMessagesByConversationID(ctx, db, conversationID)
	if err != nil {
		return nil, err
	}

	transcript := aisdk.NewTranscript()
	for _, row := range rows {
		msg, err := aisdk.NewMessage(row.Role, row.Content)
		if err != nil {
			return nil, fmt.Errorf("message %d of conversation %s: %w", row.Seq, conversationID, err)
		}
		transcript.Append(msg)
	}
	return transcript, nil
}
