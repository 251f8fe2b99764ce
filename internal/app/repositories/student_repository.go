package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/engage-app/seedctl/internal/app/models"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a new student. The id is provided by the caller because it
// is shared with the student's identity provider account.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	awards := student.Awards
	if awards == nil {
		awards = []models.Award{}
	}
	awardsJSON, err := json.Marshal(awards)
	if err != nil {
		return fmt.Errorf("error encoding awards: %w", err)
	}

	query := `
		INSERT INTO students (id, name, email, school_id, bio, follower_count, following_count, awards, interests)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.db.Exec(ctx, query,
		student.ID,
		student.Name,
		student.Email,
		student.SchoolID,
		student.Bio,
		student.FollowerCount,
		student.FollowingCount,
		awardsJSON,
		student.Interests,
	)
	return err
}

// FindIDByEmail looks up a student by their natural key
func (r *StudentRepository) FindIDByEmail(ctx context.Context, email string) (uuid.UUID, bool, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `SELECT id FROM students WHERE email = $1`, email).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("error finding student by email: %w", err)
	}

	return id, true, nil
}

// Sample returns up to limit students, oldest first
func (r *StudentRepository) Sample(ctx context.Context, limit int) ([]*models.Student, error) {
	query := `
		SELECT id, email
		FROM students
		ORDER BY email
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(&student.ID, &student.Email); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// UserPreferencesRepository handles database operations for user preferences
type UserPreferencesRepository struct {
	db *pgxpool.Pool
}

// NewUserPreferencesRepository creates a new user preferences repository
func NewUserPreferencesRepository(db *pgxpool.Pool) *UserPreferencesRepository {
	return &UserPreferencesRepository{db: db}
}

// Exists checks if a preferences row exists for the student
func (r *UserPreferencesRepository) Exists(ctx context.Context, studentID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM user_preferences WHERE student_id = $1)`,
		studentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking preferences existence: %w", err)
	}

	return exists, nil
}

// Create inserts a preferences row for a student
func (r *UserPreferencesRepository) Create(ctx context.Context, prefs *models.UserPreferences) error {
	query := `
		INSERT INTO user_preferences (student_id, font_size, high_contrast, reduced_motion,
			screen_reader_optimized, keyboard_navigation_enhanced, color_blind_mode)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		prefs.StudentID,
		prefs.FontSize,
		prefs.HighContrast,
		prefs.ReducedMotion,
		prefs.ScreenReaderOptimized,
		prefs.KeyboardNavigationEnhanced,
		prefs.ColorBlindMode,
	)
	return err
}
