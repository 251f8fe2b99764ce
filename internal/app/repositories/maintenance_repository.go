package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MaintenanceRepository handles whole-table operations used by teardown and
// verification. It covers every table in the schema, including auxiliary
// tables that have no typed repository of their own.
type MaintenanceRepository struct {
	db *pgxpool.Pool
}

// NewMaintenanceRepository creates a new maintenance repository
func NewMaintenanceRepository(db *pgxpool.Pool) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// CountRows returns the number of rows in a table
func (r *MaintenanceRepository) CountRows(ctx context.Context, table string) (int64, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s`, pgx.Identifier{table}.Sanitize())

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting rows in %s: %w", table, err)
	}

	return count, nil
}

// DeleteAllRows deletes every row of a table using a match-all filter on the
// given uuid key column. The store requires a filter on delete; comparing
// against the zero uuid matches every real row. For composite-key tables the
// caller passes the first column of the key.
func (r *MaintenanceRepository) DeleteAllRows(ctx context.Context, table, keyColumn string) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s <> $1`,
		pgx.Identifier{table}.Sanitize(), pgx.Identifier{keyColumn}.Sanitize())

	tag, err := r.db.Exec(ctx, query, uuid.Nil)
	if err != nil {
		return 0, fmt.Errorf("error clearing %s: %w", table, err)
	}

	return tag.RowsAffected(), nil
}

// DeleteAllByTextKey is DeleteAllRows for tables keyed by a text column
// (oauth_states uses 'state' as its primary key).
func (r *MaintenanceRepository) DeleteAllByTextKey(ctx context.Context, table, keyColumn string) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s <> $1`,
		pgx.Identifier{table}.Sanitize(), pgx.Identifier{keyColumn}.Sanitize())

	tag, err := r.db.Exec(ctx, query, "")
	if err != nil {
		return 0, fmt.Errorf("error clearing %s: %w", table, err)
	}

	return tag.RowsAffected(), nil
}
