package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/engage-app/seedctl/internal/seed"
)

// The repositories satisfy the store interfaces the seeding engine
// depends on.
var (
	_ seed.SchoolStore       = (*SchoolRepository)(nil)
	_ seed.RoleStore         = (*SchoolRoleRepository)(nil)
	_ seed.StudentStore      = (*StudentRepository)(nil)
	_ seed.PreferencesStore  = (*UserPreferencesRepository)(nil)
	_ seed.PostStore         = (*PostRepository)(nil)
	_ seed.LikeStore         = (*LikeRepository)(nil)
	_ seed.CommentStore      = (*CommentRepository)(nil)
	_ seed.ResourceStore     = (*ResourceRepository)(nil)
	_ seed.EventStore        = (*EventRepository)(nil)
	_ seed.RegistrationStore = (*EventRegistrationRepository)(nil)
	_ seed.FollowStore       = (*StudentFollowRepository)(nil)
	_ seed.ChatStore         = (*ChatRepository)(nil)
	_ seed.ParticipantStore  = (*ChatParticipantRepository)(nil)
	_ seed.MessageStore      = (*MessageRepository)(nil)
	_ seed.TableCleaner      = (*MaintenanceRepository)(nil)
	_ seed.RowCounter        = (*MaintenanceRepository)(nil)
)

// Repositories holds all the repository instances
type Repositories struct {
	SchoolRepository            *SchoolRepository
	SchoolRoleRepository        *SchoolRoleRepository
	StudentRepository           *StudentRepository
	UserPreferencesRepository   *UserPreferencesRepository
	PostRepository              *PostRepository
	LikeRepository              *LikeRepository
	CommentRepository           *CommentRepository
	ResourceRepository          *ResourceRepository
	EventRepository             *EventRepository
	EventRegistrationRepository *EventRegistrationRepository
	StudentFollowRepository     *StudentFollowRepository
	ChatRepository              *ChatRepository
	ChatParticipantRepository   *ChatParticipantRepository
	MessageRepository           *MessageRepository
	MaintenanceRepository       *MaintenanceRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		SchoolRepository:            NewSchoolRepository(db),
		SchoolRoleRepository:        NewSchoolRoleRepository(db),
		StudentRepository:           NewStudentRepository(db),
		UserPreferencesRepository:   NewUserPreferencesRepository(db),
		PostRepository:              NewPostRepository(db),
		LikeRepository:              NewLikeRepository(db),
		CommentRepository:           NewCommentRepository(db),
		ResourceRepository:          NewResourceRepository(db),
		EventRepository:             NewEventRepository(db),
		EventRegistrationRepository: NewEventRegistrationRepository(db),
		StudentFollowRepository:     NewStudentFollowRepository(db),
		ChatRepository:              NewChatRepository(db),
		ChatParticipantRepository:   NewChatParticipantRepository(db),
		MessageRepository:           NewMessageRepository(db),
		MaintenanceRepository:       NewMaintenanceRepository(db),
	}
}
