package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/engage-app/seedctl/internal/authadmin"
)

func TestTeardownClearsEveryTableInOrder(t *testing.T) {
	cleaner := newMemCleaner()
	cleaner.counts["students"] = 20
	cleaner.counts["schools"] = 5

	report := NewTeardown(cleaner, nil, "fbla.test", zerolog.Nop()).Run(context.Background(), false)

	if len(cleaner.order) != len(teardownOrder) {
		t.Fatalf("cleared %d tables, want %d", len(cleaner.order), len(teardownOrder))
	}
	for i, table := range teardownOrder {
		if cleaner.order[i] != table.name {
			t.Errorf("position %d: cleared %s, want %s", i, cleaner.order[i], table.name)
		}
	}

	// Children before parents, so deletes never violate a foreign key
	positions := map[string]int{}
	for i, name := range cleaner.order {
		positions[name] = i
	}
	before := [][2]string{
		{"messages", "chats"},
		{"chat_participants", "chats"},
		{"event_registrations", "events"},
		{"likes", "posts"},
		{"comments", "posts"},
		{"user_preferences", "students"},
		{"students", "schools"},
		{"posts", "students"},
	}
	for _, pair := range before {
		if positions[pair[0]] >= positions[pair[1]] {
			t.Errorf("%s cleared after %s", pair[0], pair[1])
		}
	}

	if report.RowsDeleted != 25 {
		t.Errorf("got %d rows deleted, want 25", report.RowsDeleted)
	}
	if len(report.TablesFailed) != 0 {
		t.Errorf("got failed tables %v, want none", report.TablesFailed)
	}
	if len(cleaner.textTables) != 1 || cleaner.textTables[0] != "oauth_states" {
		t.Errorf("text-keyed deletes: got %v, want only oauth_states", cleaner.textTables)
	}
}

func TestTeardownContinuesPastFailedTables(t *testing.T) {
	cleaner := newMemCleaner()
	cleaner.failTables["posts"] = errors.New("permission denied")

	report := NewTeardown(cleaner, nil, "fbla.test", zerolog.Nop()).Run(context.Background(), false)

	if len(report.TablesFailed) != 1 || report.TablesFailed[0] != "posts" {
		t.Errorf("got failed tables %v, want [posts]", report.TablesFailed)
	}
	if len(report.TablesCleared) != len(teardownOrder)-1 {
		t.Errorf("cleared %d tables, want %d", len(report.TablesCleared), len(teardownOrder)-1)
	}
}

func TestTeardownAuthCascadeDeletesOnlySeededAccounts(t *testing.T) {
	dir := newMemDirectory()
	dir.addAccount("student1@fbla.test")
	dir.addAccount("student2@fbla.test")
	dir.addAccount("advisor@fbla.test")
	dir.addAccount("student1@school.edu")

	report := NewTeardown(newMemCleaner(), dir, "fbla.test", zerolog.Nop()).Run(context.Background(), true)

	if report.AccountsDeleted != 2 {
		t.Errorf("got %d accounts deleted, want 2", report.AccountsDeleted)
	}
	if _, ok := dir.byEmail["advisor@fbla.test"]; !ok {
		t.Error("non-student account on the seed domain was deleted")
	}
	if _, ok := dir.byEmail["student1@school.edu"]; !ok {
		t.Error("student account on a foreign domain was deleted")
	}
	if _, ok := dir.byEmail["student1@fbla.test"]; ok {
		t.Error("seeded account survived the cascade")
	}
}

func TestTeardownWithoutAuthLeavesAccountsAlone(t *testing.T) {
	dir := newMemDirectory()
	dir.addAccount("student1@fbla.test")

	report := NewTeardown(newMemCleaner(), dir, "fbla.test", zerolog.Nop()).Run(context.Background(), false)

	if report.AccountsDeleted != 0 {
		t.Errorf("got %d accounts deleted, want 0", report.AccountsDeleted)
	}
	if len(dir.deleted) != 0 {
		t.Error("accounts were deleted without the auth cascade")
	}
}

func TestSeededAccounts(t *testing.T) {
	accounts := []authadmin.Account{
		{Email: "student1@fbla.test"},
		{Email: "student22@fbla.test"},
		{Email: "advisor@fbla.test"},
		{Email: "student1@school.edu"},
		{Email: "prestudent1@fbla.test"},
	}

	seeded := SeededAccounts(accounts, "fbla.test")
	if len(seeded) != 2 {
		t.Fatalf("got %d seeded accounts, want 2", len(seeded))
	}
	if seeded[0].Email != "student1@fbla.test" || seeded[1].Email != "student22@fbla.test" {
		t.Errorf("got %v, want the two student addresses on the seed domain", seeded)
	}
}
