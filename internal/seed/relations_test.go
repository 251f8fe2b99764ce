package seed

import (
	"errors"
	"testing"
)

func TestClassifyRelation(t *testing.T) {
	storeErr := errors.New("connection lost")

	tests := []struct {
		name    string
		err     error
		outcome RelationOutcome
		wantErr bool
	}{
		{name: "created", err: nil, outcome: RelationCreated},
		{name: "duplicate pair", err: uniqueViolation(), outcome: RelationDuplicate},
		{name: "missing reference", err: foreignKeyViolation(), outcome: RelationInvalid},
		{name: "other error", err: storeErr, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := classifyRelation(tt.err)
			if tt.wantErr {
				if !errors.Is(err, storeErr) {
					t.Errorf("got %v, want the store error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("classifyRelation: %v", err)
			}
			if outcome != tt.outcome {
				t.Errorf("got %s, want %s", outcome, tt.outcome)
			}
		})
	}
}
