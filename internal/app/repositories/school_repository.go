package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/engage-app/seedctl/internal/app/models"
)

// SchoolRepository handles database operations for schools
type SchoolRepository struct {
	db *pgxpool.Pool
}

// NewSchoolRepository creates a new school repository
func NewSchoolRepository(db *pgxpool.Pool) *SchoolRepository {
	return &SchoolRepository{db: db}
}

// Create inserts a new school and returns its generated id
func (r *SchoolRepository) Create(ctx context.Context, school *models.School) (uuid.UUID, error) {
	query := `
		INSERT INTO schools (name, address, city, state, zip, email, member_count, established_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		school.Name,
		school.Address,
		school.City,
		school.State,
		school.Zip,
		school.Email,
		school.MemberCount,
		school.EstablishedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}

	school.ID = id
	return id, nil
}

// FindIDByName looks up a school by its natural key
func (r *SchoolRepository) FindIDByName(ctx context.Context, name string) (uuid.UUID, bool, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `SELECT id FROM schools WHERE name = $1`, name).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("error finding school by name: %w", err)
	}

	return id, true, nil
}

// SchoolRoleRepository handles database operations for school roles
type SchoolRoleRepository struct {
	db *pgxpool.Pool
}

// NewSchoolRoleRepository creates a new school role repository
func NewSchoolRoleRepository(db *pgxpool.Pool) *SchoolRoleRepository {
	return &SchoolRoleRepository{db: db}
}

// Create inserts a role assignment. The store rejects a second role for the
// same (student, school) pair with a unique violation.
func (r *SchoolRoleRepository) Create(ctx context.Context, role *models.SchoolRole) error {
	query := `
		INSERT INTO school_roles (student_id, school_id, role)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, role.StudentID, role.SchoolID, role.Role)
	return err
}
