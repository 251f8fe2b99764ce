package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/engage-app/seedctl/internal/app/models"
)

// ResourceRepository handles database operations for study resources
type ResourceRepository struct {
	db *pgxpool.Pool
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// Create inserts a resource. event_name is a free-text label, not a foreign
// key into events.
func (r *ResourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	query := `
		INSERT INTO resources (title, description, type, event_name, url, downloads)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		resource.Title,
		resource.Description,
		string(resource.Type),
		resource.EventName,
		resource.URL,
		resource.Downloads,
	)
	return err
}
