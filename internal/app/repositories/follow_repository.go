package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/engage-app/seedctl/internal/app/models"
)

// StudentFollowRepository handles database operations for follow relationships
type StudentFollowRepository struct {
	db *pgxpool.Pool
}

// NewStudentFollowRepository creates a new student follow repository
func NewStudentFollowRepository(db *pgxpool.Pool) *StudentFollowRepository {
	return &StudentFollowRepository{db: db}
}

// Create inserts a follow edge. The store rejects a duplicate ordered pair
// with a unique violation.
func (r *StudentFollowRepository) Create(ctx context.Context, follow *models.StudentFollow) error {
	query := `
		INSERT INTO student_follows (follower_id, following_id)
		VALUES ($1, $2)
	`

	_, err := r.db.Exec(ctx, query, follow.FollowerID, follow.FollowingID)
	return err
}
