package models

import (
	"time"

	"github.com/google/uuid"
)

// EventLevel represents the competition level of an event
type EventLevel string

const (
	EventLevelRegional EventLevel = "regional"
	EventLevelState    EventLevel = "state"
	EventLevelNational EventLevel = "national"
)

// Event defines a calendar event based on the 'events' table.
// EndDate is never before StartDate.
type Event struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	StartDate   time.Time  `json:"startDate" db:"start_date"`
	EndDate     time.Time  `json:"endDate" db:"end_date"`
	Location    string     `json:"location" db:"location"`
	Level       EventLevel `json:"level" db:"level"`
	OrganizerID uuid.UUID  `json:"organizerId" db:"organizer_id"` // Organizing school
}

// EventRegistration registers a student for an event.
// Composite key (event_id, student_id); unique per pair.
type EventRegistration struct {
	EventID   uuid.UUID `json:"eventId" db:"event_id"`
	StudentID uuid.UUID `json:"studentId" db:"student_id"`
}
