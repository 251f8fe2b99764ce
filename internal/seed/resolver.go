package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/engage-app/seedctl/internal/app/models"
	"github.com/engage-app/seedctl/internal/pkg/dberrors"
)

// resolveOrCreate returns the id of the entity with the given natural key,
// creating it exactly once if absent. A unique violation during create means
// a prior partial run won the race on this key; the entity is re-queried and
// the existing id returned. The returned bool reports whether a row was
// created by this call.
func resolveOrCreate(
	ctx context.Context,
	find func(ctx context.Context) (uuid.UUID, bool, error),
	create func(ctx context.Context) (uuid.UUID, error),
) (uuid.UUID, bool, error) {
	id, found, err := find(ctx)
	if err != nil {
		return uuid.Nil, false, err
	}
	if found {
		return id, false, nil
	}

	id, err = create(ctx)
	if err == nil {
		return id, true, nil
	}
	if !dberrors.IsUniqueViolation(err) {
		return uuid.Nil, false, err
	}

	// Lost the create to an earlier partial run; the row must exist now
	id, found, findErr := find(ctx)
	if findErr != nil {
		return uuid.Nil, false, findErr
	}
	if !found {
		return uuid.Nil, false, fmt.Errorf("duplicate key reported but entity not found: %w", err)
	}

	return id, false, nil
}

// ensureStudentPreferences guarantees the 1-1 preferences row for a student,
// creating a default one if absent. Runs on both the created and the
// already-exists path, repairing students left without preferences by a
// prior partial run.
func ensureStudentPreferences(ctx context.Context, store PreferencesStore, studentID uuid.UUID) error {
	exists, err := store.Exists(ctx, studentID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = store.Create(ctx, models.DefaultPreferences(studentID))
	if err != nil && !dberrors.IsUniqueViolation(err) {
		return err
	}

	return nil
}
