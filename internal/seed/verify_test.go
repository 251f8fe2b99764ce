package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/engage-app/seedctl/internal/app/models"
)

func populatedCounter() *memCounter {
	counter := newMemCounter()
	for _, check := range verifyChecks {
		if check.minimum > 0 {
			counter.counts[check.name] = 10
		}
	}
	return counter
}

func TestReporterPassesWhenMinimumsMet(t *testing.T) {
	students := newMemStudentStore()
	for i := 0; i < 7; i++ {
		student := &models.Student{ID: uuid.New(), Email: string(rune('a'+i)) + "@fbla.test"}
		if err := students.Create(context.Background(), student); err != nil {
			t.Fatalf("pre-create student: %v", err)
		}
	}

	report := NewReporter(populatedCounter(), students, zerolog.Nop()).Run(context.Background())

	if !report.AllOK {
		t.Error("report not OK with every minimum met")
	}
	if len(report.Results) != len(verifyChecks) {
		t.Errorf("got %d results, want %d", len(report.Results), len(verifyChecks))
	}
	if len(report.SampleStudents) != 5 {
		t.Errorf("got %d sample students, want 5", len(report.SampleStudents))
	}
	if report.SampleStudents[0] != "a@fbla.test" {
		t.Errorf("samples not ordered by email: got %s first", report.SampleStudents[0])
	}
}

func TestReporterFlagsEmptyTables(t *testing.T) {
	counter := populatedCounter()
	counter.counts["schools"] = 0

	report := NewReporter(counter, newMemStudentStore(), zerolog.Nop()).Run(context.Background())

	if report.AllOK {
		t.Error("report OK despite an empty required table")
	}
	for _, result := range report.Results {
		if result.Table == "schools" && result.OK {
			t.Error("schools check passed with zero rows")
		}
		if result.Table == "likes" && !result.OK {
			t.Error("likes check failed despite a zero minimum")
		}
	}
}

func TestReporterSurvivesCountErrors(t *testing.T) {
	counter := populatedCounter()
	counter.errTables["events"] = errors.New("relation does not exist")

	report := NewReporter(counter, newMemStudentStore(), zerolog.Nop()).Run(context.Background())

	if report.AllOK {
		t.Error("report OK despite an uncountable table")
	}
	if len(report.Results) != len(verifyChecks) {
		t.Errorf("got %d results, want %d despite the error", len(report.Results), len(verifyChecks))
	}
}
