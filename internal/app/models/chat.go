package models

import "github.com/google/uuid"

// ChatType represents the type of chat
type ChatType string

const (
	// ChatTypeDirect is a one-to-one chat with exactly two participants
	ChatTypeDirect ChatType = "direct"
	// ChatTypeGroup is a chat with two or more participants
	ChatTypeGroup ChatType = "group"
)

// ChatTypes lists every valid chat type
var ChatTypes = []ChatType{ChatTypeDirect, ChatTypeGroup}

// Chat defines a conversation based on the 'chats' table
type Chat struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Type      ChatType  `json:"type" db:"type"`
	CreatedBy uuid.UUID `json:"createdBy" db:"created_by"`
}

// ChatParticipant links a student to a chat.
// Composite key (chat_id, student_id); unique per pair.
type ChatParticipant struct {
	ChatID    uuid.UUID `json:"chatId" db:"chat_id"`
	StudentID uuid.UUID `json:"studentId" db:"student_id"`
}

// Message defines a chat message based on the 'messages' table
type Message struct {
	ID       uuid.UUID `json:"id" db:"id"`
	ChatID   uuid.UUID `json:"chatId" db:"chat_id"`
	AuthorID uuid.UUID `json:"authorId" db:"author_id"`
	Content  string    `json:"content" db:"content"`
}
