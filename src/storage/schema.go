package storage

import "time"

// Conversation is one persisted chat session.
type Conversation struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Provider  string    `json:"provider" db:"provider"`
	Model     string    `json:"model" db:"model"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Message is one transcript entry. Seq orders messages within a conversation.
type Message struct {
	ID             string    `json:"id" db:"id"`
	ConversationID string    `json:"conversation_id" db:"conversation_id"`
	Seq            int64     `json:"seq" db:"seq"`
	Role           string    `json:"role" db:"role"`
	Content        string    `json:"content" db:"content"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Account is a bank customer record used by the function-calling sample.
type Account struct {
	ID                string    `json:"id" db:"id"`
	Name              string    `json:"name" db:"name"`
	BankAccountNumber string    `json:"bank_account_number" db:"bank_account_number"`
	Address           string    `json:"address" db:"address"`
	PhoneNumber       string    `json:"phone_number" db:"phone_number"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}
