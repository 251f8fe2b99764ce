package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/engage-app/seedctl/internal/app/models"
)

// EventRepository handles database operations for events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new event and returns its generated id
func (r *EventRepository) Create(ctx context.Context, event *models.Event) (uuid.UUID, error) {
	query := `
		INSERT INTO events (title, description, start_date, end_date, location, level, organizer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		event.Title,
		event.Description,
		event.StartDate,
		event.EndDate,
		event.Location,
		string(event.Level),
		event.OrganizerID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}

	event.ID = id
	return id, nil
}

// EventRegistrationRepository handles database operations for event registrations
type EventRegistrationRepository struct {
	db *pgxpool.Pool
}

// NewEventRegistrationRepository creates a new event registration repository
func NewEventRegistrationRepository(db *pgxpool.Pool) *EventRegistrationRepository {
	return &EventRegistrationRepository{db: db}
}

// Create registers a student for an event. The store rejects a duplicate
// (event, student) pair with a unique violation.
func (r *EventRegistrationRepository) Create(ctx context.Context, reg *models.EventRegistration) error {
	query := `
		INSERT INTO event_registrations (event_id, student_id)
		VALUES ($1, $2)
	`

	_, err := r.db.Exec(ctx, query, reg.EventID, reg.StudentID)
	return err
}
