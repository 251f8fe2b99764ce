package seed

import (
	"github.com/engage-app/seedctl/internal/pkg/dberrors"
)

// RelationOutcome is the result of a best-effort relationship insert. The
// store enforces uniqueness and referential integrity; instead of swallowing
// its rejections silently, they are classified so callers and tests can
// assert on the intended outcome.
type RelationOutcome int

const (
	// RelationCreated means the row was inserted
	RelationCreated RelationOutcome = iota
	// RelationDuplicate means the pair already existed
	RelationDuplicate
	// RelationInvalid means a referenced row was missing
	RelationInvalid
)

// String returns a log-friendly name for the outcome
func (o RelationOutcome) String() string {
	switch o {
	case RelationCreated:
		return "created"
	case RelationDuplicate:
		return "duplicate"
	case RelationInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// classifyRelation maps a relationship-insert error to its outcome.
// Constraint rejections are expected and recovered locally; anything else is
// returned for the caller to log and count as a failure.
func classifyRelation(err error) (RelationOutcome, error) {
	switch {
	case err == nil:
		return RelationCreated, nil
	case dberrors.IsUniqueViolation(err):
		return RelationDuplicate, nil
	case dberrors.IsForeignKeyViolation(err):
		return RelationInvalid, nil
	default:
		return 0, err
	}
}
