package models

import "github.com/google/uuid"

// ResourceType represents the kind of study resource
type ResourceType string

const (
	ResourceTypeDocument ResourceType = "document"
	ResourceTypeLink     ResourceType = "link"
	ResourceTypeVideo    ResourceType = "video"
)

// ResourceTypes lists every valid resource type
var ResourceTypes = []ResourceType{ResourceTypeDocument, ResourceTypeLink, ResourceTypeVideo}

// Resource defines a study resource based on the 'resources' table.
// EventName is a free-text label from the competitive-event catalog, not a
// foreign key: a resource may name an event with no corresponding Event row.
type Resource struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	Title       string       `json:"title" db:"title"`
	Description string       `json:"description" db:"description"`
	Type        ResourceType `json:"type" db:"type"`
	EventName   string       `json:"eventName" db:"event_name"`
	URL         string       `json:"url" db:"url"`
	Downloads   int          `json:"downloads" db:"downloads"`
}
