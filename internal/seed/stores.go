// Package seed generates, verifies, and tears down synthetic data for the
// Engage platform. Generation walks the entity types in foreign-key
// dependency order; teardown walks the same order in reverse. Both are
// idempotent on the entities' natural keys so a run can always be repeated
// against a partially populated store.
package seed

import (
	"context"

	"github.com/google/uuid"

	"github.com/engage-app/seedctl/internal/app/models"
	"github.com/engage-app/seedctl/internal/authadmin"
)

// SchoolStore creates schools and resolves them by natural key
type SchoolStore interface {
	Create(ctx context.Context, school *models.School) (uuid.UUID, error)
	FindIDByName(ctx context.Context, name string) (uuid.UUID, bool, error)
}

// StudentStore creates students and resolves them by natural key
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	FindIDByEmail(ctx context.Context, email string) (uuid.UUID, bool, error)
	Sample(ctx context.Context, limit int) ([]*models.Student, error)
}

// PreferencesStore manages the 1-1 preferences row per student
type PreferencesStore interface {
	Exists(ctx context.Context, studentID uuid.UUID) (bool, error)
	Create(ctx context.Context, prefs *models.UserPreferences) error
}

// RoleStore creates school role assignments
type RoleStore interface {
	Create(ctx context.Context, role *models.SchoolRole) error
}

// PostStore creates posts
type PostStore interface {
	Create(ctx context.Context, post *models.Post) (uuid.UUID, error)
}

// LikeStore creates likes
type LikeStore interface {
	Create(ctx context.Context, like *models.Like) error
}

// CommentStore creates comments
type CommentStore interface {
	Create(ctx context.Context, comment *models.Comment) error
}

// ResourceStore creates study resources
type ResourceStore interface {
	Create(ctx context.Context, resource *models.Resource) error
}

// EventStore creates events
type EventStore interface {
	Create(ctx context.Context, event *models.Event) (uuid.UUID, error)
}

// RegistrationStore creates event registrations
type RegistrationStore interface {
	Create(ctx context.Context, reg *models.EventRegistration) error
}

// FollowStore creates follow edges
type FollowStore interface {
	Create(ctx context.Context, follow *models.StudentFollow) error
}

// ChatStore creates chats
type ChatStore interface {
	Create(ctx context.Context, chat *models.Chat) (uuid.UUID, error)
}

// ParticipantStore creates chat participant rows
type ParticipantStore interface {
	Create(ctx context.Context, participant *models.ChatParticipant) error
}

// MessageStore creates chat messages
type MessageStore interface {
	Create(ctx context.Context, message *models.Message) error
}

// TableCleaner empties whole tables with a match-all filter
type TableCleaner interface {
	DeleteAllRows(ctx context.Context, table, keyColumn string) (int64, error)
	DeleteAllByTextKey(ctx context.Context, table, keyColumn string) (int64, error)
}

// RowCounter reports table row counts for verification
type RowCounter interface {
	CountRows(ctx context.Context, table string) (int64, error)
}

// AccountDirectory is the identity provider's admin surface
type AccountDirectory interface {
	CreateAccount(ctx context.Context, email, password string, id uuid.UUID, displayName string) (authadmin.CreateStatus, error)
	ListAccounts(ctx context.Context) ([]authadmin.Account, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

// Stores groups every store the generator depends on
type Stores struct {
	Schools       SchoolStore
	Students      StudentStore
	Preferences   PreferencesStore
	Roles         RoleStore
	Posts         PostStore
	Likes         LikeStore
	Comments      CommentStore
	Resources     ResourceStore
	Events        EventStore
	Registrations RegistrationStore
	Follows       FollowStore
	Chats         ChatStore
	Participants  ParticipantStore
	Messages      MessageStore
}
