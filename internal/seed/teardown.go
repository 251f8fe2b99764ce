package seed

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/engage-app/seedctl/internal/authadmin"
)

// tableSpec names a table and the key column its match-all delete filter
// uses. For composite-key tables that is the first column of the key;
// textKey marks tables keyed by a text column instead of a uuid.
type tableSpec struct {
	name      string
	keyColumn string
	textKey   bool
}

// teardownOrder is the reverse of the generator's dependency order, so no
// delete ever violates a foreign key. It also covers auxiliary tables the
// generator never touches; a full reset empties the whole schema.
var teardownOrder = []tableSpec{
	{name: "social_imports", keyColumn: "id"},
	{name: "social_connections", keyColumn: "id"},
	{name: "user_preferences", keyColumn: "id"},
	{name: "messages", keyColumn: "id"},
	{name: "chat_participants", keyColumn: "chat_id"},
	{name: "chats", keyColumn: "id"},
	{name: "chat_requests", keyColumn: "id"},
	{name: "event_registrations", keyColumn: "event_id"},
	{name: "events", keyColumn: "id"},
	{name: "student_follows", keyColumn: "follower_id"},
	{name: "school_roles", keyColumn: "id"},
	{name: "likes", keyColumn: "user_id"},
	{name: "comments", keyColumn: "id"},
	{name: "media", keyColumn: "id"},
	{name: "posts", keyColumn: "id"},
	{name: "resources", keyColumn: "id"},
	{name: "resource_categories", keyColumn: "id"},
	{name: "notifications", keyColumn: "id"},
	{name: "reports", keyColumn: "id"},
	{name: "students", keyColumn: "id"},
	{name: "schools", keyColumn: "id"},
	{name: "oauth_states", keyColumn: "state", textKey: true},
}

// TeardownReport records what a reset run did
type TeardownReport struct {
	TablesCleared   []string
	TablesFailed    []string
	RowsDeleted     int64
	AccountsDeleted int
}

// Teardown empties the schema in reverse dependency order. Per-table
// failures are logged and skipped so a partially broken schema can still be
// reset as far as possible.
type Teardown struct {
	cleaner     TableCleaner
	auth        AccountDirectory
	emailDomain string
	log         zerolog.Logger
}

// NewTeardown creates a teardown engine. auth may be nil when no identity
// cascade will be requested.
func NewTeardown(cleaner TableCleaner, auth AccountDirectory, emailDomain string, log zerolog.Logger) *Teardown {
	return &Teardown{
		cleaner:     cleaner,
		auth:        auth,
		emailDomain: emailDomain,
		log:         log,
	}
}

// Run deletes all rows of every table. With includeAuth set it also deletes
// the identity accounts matching the synthetic-seed naming convention; other
// accounts are never touched by a reset.
func (t *Teardown) Run(ctx context.Context, includeAuth bool) *TeardownReport {
	t.log.Info().Msg("Resetting database")
	report := &TeardownReport{}

	for _, table := range teardownOrder {
		var (
			deleted int64
			err     error
		)
		if table.textKey {
			deleted, err = t.cleaner.DeleteAllByTextKey(ctx, table.name, table.keyColumn)
		} else {
			deleted, err = t.cleaner.DeleteAllRows(ctx, table.name, table.keyColumn)
		}
		if err != nil {
			t.log.Warn().Err(err).Str("table", table.name).Msg("Could not clear table")
			report.TablesFailed = append(report.TablesFailed, table.name)
			continue
		}

		t.log.Info().Str("table", table.name).Int64("rows", deleted).Msg("Cleared table")
		report.TablesCleared = append(report.TablesCleared, table.name)
		report.RowsDeleted += deleted
	}

	if includeAuth {
		deleted, err := t.CleanupSeededAccounts(ctx)
		if err != nil {
			t.log.Warn().Err(err).Msg("Could not clean up identity accounts")
		}
		report.AccountsDeleted = deleted
	}

	return report
}

// CleanupSeededAccounts deletes only the identity accounts created by
// seeding, identified by the student email convention. This is the selective
// cascade; deleting every account is a separate, explicitly confirmed
// operation.
func (t *Teardown) CleanupSeededAccounts(ctx context.Context) (int, error) {
	accounts, err := t.auth.ListAccounts(ctx)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, account := range SeededAccounts(accounts, t.emailDomain) {
		if err := t.auth.DeleteAccount(ctx, account.ID); err != nil {
			t.log.Warn().Err(err).Str("email", account.Email).Msg("Could not delete identity account")
			continue
		}
		t.log.Info().Str("email", account.Email).Msg("Deleted identity account")
		deleted++
	}

	return deleted, nil
}

// SeededAccounts filters the accounts matching the synthetic-seed naming
// convention (student*@<domain>).
func SeededAccounts(accounts []authadmin.Account, emailDomain string) []authadmin.Account {
	var seeded []authadmin.Account
	for _, account := range accounts {
		if strings.HasPrefix(account.Email, "student") && strings.HasSuffix(account.Email, "@"+emailDomain) {
			seeded = append(seeded, account)
		}
	}
	return seeded
}
