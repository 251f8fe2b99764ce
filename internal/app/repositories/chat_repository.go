package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/engage-app/seedctl/internal/app/models"
)

// ChatRepository handles database operations for chats
type ChatRepository struct {
	db *pgxpool.Pool
}

// NewChatRepository creates a new chat repository
func NewChatRepository(db *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{db: db}
}

// Create inserts a new chat and returns its generated id
func (r *ChatRepository) Create(ctx context.Context, chat *models.Chat) (uuid.UUID, error) {
	query := `
		INSERT INTO chats (type, created_by)
		VALUES ($1, $2)
		RETURNING id
	`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, string(chat.Type), chat.CreatedBy).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}

	chat.ID = id
	return id, nil
}

// ChatParticipantRepository handles database operations for chat participants
type ChatParticipantRepository struct {
	db *pgxpool.Pool
}

// NewChatParticipantRepository creates a new chat participant repository
func NewChatParticipantRepository(db *pgxpool.Pool) *ChatParticipantRepository {
	return &ChatParticipantRepository{db: db}
}

// Create inserts a participant row. The store rejects a duplicate
// (chat, student) pair with a unique violation.
func (r *ChatParticipantRepository) Create(ctx context.Context, participant *models.ChatParticipant) error {
	query := `
		INSERT INTO chat_participants (chat_id, student_id)
		VALUES ($1, $2)
	`

	_, err := r.db.Exec(ctx, query, participant.ChatID, participant.StudentID)
	return err
}

// MessageRepository handles database operations for chat messages
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts a message into a chat
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO messages (content, author_id, chat_id)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, message.Content, message.AuthorID, message.ChatID)
	return err
}
