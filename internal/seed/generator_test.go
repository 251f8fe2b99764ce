package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/engage-app/seedctl/internal/app/models"
)

func testProfile() Profile {
	profile := DefaultProfile()
	profile.Schools = 3
	profile.Students = 9
	profile.Posts = 6
	profile.Comments = 5
	profile.Resources = 8
	profile.Events = 4
	profile.Chats = 3
	profile.Messages = 10
	return profile
}

func newTestGenerator(ms *memStores, dir *memDirectory, profile Profile, rngSeed int64) *Generator {
	g := NewGenerator(ms.stores(), dir, profile, rand.New(rand.NewSource(rngSeed)), zerolog.Nop())
	g.now = func() time.Time {
		return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	return g
}

func TestRunPopulatesEverything(t *testing.T) {
	ms := newMemStores()
	dir := newMemDirectory()
	g := newTestGenerator(ms, dir, testProfile(), 42)

	summary, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if summary.Schools.Created != 3 || len(ms.schools.rows) != 3 {
		t.Errorf("schools: got %d created, %d rows, want 3 and 3", summary.Schools.Created, len(ms.schools.rows))
	}
	if summary.Students.Created != 9 || len(ms.students.rows) != 9 {
		t.Errorf("students: got %d created, %d rows, want 9 and 9", summary.Students.Created, len(ms.students.rows))
	}
	for i := 1; i <= 9; i++ {
		email := fmt.Sprintf("student%d@fbla.test", i)
		id, ok := ms.students.byEmail[email]
		if !ok {
			t.Fatalf("student %s missing", email)
		}
		if _, ok := ms.preferences.rows[id]; !ok {
			t.Errorf("student %s has no preferences row", email)
		}
		if _, ok := dir.byEmail[email]; !ok {
			t.Errorf("student %s has no identity account", email)
		}
	}

	// One role per student: 3 students per school, so every school hands
	// out exactly 3 distinguished roles and no Member roles
	if summary.Roles.Created != 9 || len(ms.roles.rows) != 9 {
		t.Errorf("roles: got %d created, %d rows, want 9 and 9", summary.Roles.Created, len(ms.roles.rows))
	}

	if summary.Posts.Created != 6 {
		t.Errorf("posts: got %d created, want 6", summary.Posts.Created)
	}
	if summary.Comments.Created != 5 {
		t.Errorf("comments: got %d created, want 5", summary.Comments.Created)
	}
	if summary.Resources.Created != 8 {
		t.Errorf("resources: got %d created, want 8", summary.Resources.Created)
	}
	if summary.Events.Created != 4 {
		t.Errorf("events: got %d created, want 4", summary.Events.Created)
	}
	if summary.Chats.Created != 3 {
		t.Errorf("chats: got %d created, want 3", summary.Chats.Created)
	}
	if summary.Messages.Created != 10 {
		t.Errorf("messages: got %d created, want 10", summary.Messages.Created)
	}

	// At least the minimum registrations per event, all distinct pairs
	if summary.Registrations.Created < 4*3 {
		t.Errorf("registrations: got %d created, want at least 12", summary.Registrations.Created)
	}
	if summary.Registrations.Duplicates != 0 {
		t.Errorf("registrations: got %d duplicates, want 0", summary.Registrations.Duplicates)
	}
}

func TestRunIsIdempotentForKeyedEntities(t *testing.T) {
	ms := newMemStores()
	dir := newMemDirectory()
	profile := testProfile()

	if _, err := newTestGenerator(ms, dir, profile, 42).Run(context.Background()); err != nil {
		t.Fatalf("first Run: %v", err)
	}

	summary, err := newTestGenerator(ms, dir, profile, 42).Run(context.Background())
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}

	if summary.Schools.Created != 0 || summary.Schools.Existing != 3 {
		t.Errorf("schools on rerun: got %d created, %d existing, want 0 and 3",
			summary.Schools.Created, summary.Schools.Existing)
	}
	if summary.Students.Created != 0 || summary.Students.Existing != 9 {
		t.Errorf("students on rerun: got %d created, %d existing, want 0 and 9",
			summary.Students.Created, summary.Students.Existing)
	}
	if len(ms.schools.rows) != 3 {
		t.Errorf("school rows after rerun: got %d, want 3", len(ms.schools.rows))
	}
	if len(ms.students.rows) != 9 {
		t.Errorf("student rows after rerun: got %d, want 9", len(ms.students.rows))
	}
	if len(ms.preferences.rows) != 9 {
		t.Errorf("preference rows after rerun: got %d, want 9", len(ms.preferences.rows))
	}
	// Roles are settled by the one-per-(student, school) constraint
	if len(ms.roles.rows) != 9 {
		t.Errorf("role rows after rerun: got %d, want 9", len(ms.roles.rows))
	}
}

func TestStudentsAssignedRoundRobin(t *testing.T) {
	ms := newMemStores()
	g := newTestGenerator(ms, newMemDirectory(), testProfile(), 42)

	if _, err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for i := 0; i < 9; i++ {
		email := fmt.Sprintf("student%d@fbla.test", i+1)
		row := ms.students.rows[ms.students.byEmail[email]]
		want := ms.schools.order[i%3]
		if row.SchoolID == nil || *row.SchoolID != want {
			t.Errorf("student %s assigned to wrong school", email)
		}
	}
}

func TestDistinguishedRolesUniquePerSchool(t *testing.T) {
	ms := newMemStores()
	g := newTestGenerator(ms, newMemDirectory(), testProfile(), 42)

	if _, err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	seen := map[uuid.UUID]map[string]int{}
	for _, role := range ms.roles.rows {
		if seen[role.SchoolID] == nil {
			seen[role.SchoolID] = map[string]int{}
		}
		seen[role.SchoolID][role.Role]++
	}
	for schoolID, roles := range seen {
		for _, role := range models.DistinguishedRoles {
			if roles[role] > 1 {
				t.Errorf("school %s has %d students with role %s", schoolID, roles[role], role)
			}
		}
	}
}

func TestNoSelfFollows(t *testing.T) {
	ms := newMemStores()
	g := newTestGenerator(ms, newMemDirectory(), testProfile(), 42)

	if _, err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, follow := range ms.follows.rows {
		if follow.FollowerID == follow.FollowingID {
			t.Errorf("student %s follows themselves", follow.FollowerID)
		}
	}
}

func TestDirectChatsHaveExactlyTwoParticipants(t *testing.T) {
	ms := newMemStores()
	g := newTestGenerator(ms, newMemDirectory(), testProfile(), 42)

	if _, err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, chat := range ms.chats.rows {
		participants := len(ms.participants.perChat[chat.ID])
		switch chat.Type {
		case models.ChatTypeDirect:
			if participants != 2 {
				t.Errorf("direct chat has %d participants, want 2", participants)
			}
		case models.ChatTypeGroup:
			if participants < 3 {
				t.Errorf("group chat has %d participants, want at least 3", participants)
			}
		}
	}
}

func TestEventDatesWithinWindow(t *testing.T) {
	ms := newMemStores()
	g := newTestGenerator(ms, newMemDirectory(), testProfile(), 42)

	if _, err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	windowStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := windowStart.AddDate(0, 0, 180)
	for _, event := range ms.events.rows {
		if event.StartDate.Before(windowStart) || event.StartDate.After(windowEnd) {
			t.Errorf("event %q starts %s, outside the 180-day window", event.Title, event.StartDate)
		}
		days := int(event.EndDate.Sub(event.StartDate).Hours() / 24)
		if days < 1 || days > 3 {
			t.Errorf("event %q runs %d days, want 1-3", event.Title, days)
		}
	}
}

func TestExistingStudentsGetPreferencesRepaired(t *testing.T) {
	ms := newMemStores()
	dir := newMemDirectory()

	// A prior partial run left a student without a preferences row
	orphanID := uuid.New()
	err := ms.students.Create(context.Background(), &models.Student{
		ID:    orphanID,
		Name:  "Leftover Student",
		Email: "student1@fbla.test",
	})
	if err != nil {
		t.Fatalf("pre-create student: %v", err)
	}

	summary, err := newTestGenerator(ms, dir, testProfile(), 42).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if summary.Students.Existing != 1 || summary.Students.Created != 8 {
		t.Errorf("students: got %d existing, %d created, want 1 and 8",
			summary.Students.Existing, summary.Students.Created)
	}
	if _, ok := ms.preferences.rows[orphanID]; !ok {
		t.Error("existing student's preferences row was not repaired")
	}
}

func TestIdentityFailureSkipsStudent(t *testing.T) {
	ms := newMemStores()
	dir := newMemDirectory()
	dir.failEmails["student2@fbla.test"] = errors.New("identity provider down")

	summary, err := newTestGenerator(ms, dir, testProfile(), 42).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if summary.Students.Failed != 1 || summary.Students.Created != 8 {
		t.Errorf("students: got %d failed, %d created, want 1 and 8",
			summary.Students.Failed, summary.Students.Created)
	}
	if _, ok := ms.students.byEmail["student2@fbla.test"]; ok {
		t.Error("student2 row created despite identity failure")
	}
}

func TestExistingIdentityAccountIDReused(t *testing.T) {
	ms := newMemStores()
	dir := newMemDirectory()
	accountID := dir.addAccount("student1@fbla.test")

	if _, err := newTestGenerator(ms, dir, testProfile(), 42).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := ms.students.byEmail["student1@fbla.test"]; got != accountID {
		t.Errorf("student1 id: got %s, want the existing account id %s", got, accountID)
	}
}

func TestRunFailsWithoutSchools(t *testing.T) {
	profile := testProfile()
	profile.Schools = 0

	_, err := newTestGenerator(newMemStores(), newMemDirectory(), profile, 42).Run(context.Background())
	if !errors.Is(err, ErrNoSchools) {
		t.Errorf("got %v, want ErrNoSchools", err)
	}
}

func TestRunFailsWithoutStudents(t *testing.T) {
	profile := testProfile()
	profile.Students = 0

	_, err := newTestGenerator(newMemStores(), newMemDirectory(), profile, 42).Run(context.Background())
	if !errors.Is(err, ErrNoStudents) {
		t.Errorf("got %v, want ErrNoStudents", err)
	}
}

func TestMessagesAuthoredByParticipantsWhenRestricted(t *testing.T) {
	ms := newMemStores()
	profile := testProfile()
	profile.MessagesFromParticipants = true

	if _, err := newTestGenerator(ms, newMemDirectory(), profile, 42).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, message := range ms.messages.rows {
		member := false
		for _, studentID := range ms.participants.perChat[message.ChatID] {
			if studentID == message.AuthorID {
				member = true
				break
			}
		}
		if !member {
			t.Errorf("message in chat %s authored by non-participant %s", message.ChatID, message.AuthorID)
		}
	}
}

func TestMessagesSkippedWhenChatsEmpty(t *testing.T) {
	ms := newMemStores()
	ms.participants.rejectAll = true
	profile := testProfile()
	profile.MessagesFromParticipants = true

	summary, err := newTestGenerator(ms, newMemDirectory(), profile, 42).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(ms.messages.rows) != 0 {
		t.Errorf("got %d messages for participant-less chats, want 0", len(ms.messages.rows))
	}
	if summary.Messages.Failed != profile.Messages {
		t.Errorf("messages: got %d failed, want %d", summary.Messages.Failed, profile.Messages)
	}
}

func TestSingleStudentSkipsChats(t *testing.T) {
	ms := newMemStores()
	profile := testProfile()
	profile.Students = 1

	summary, err := newTestGenerator(ms, newMemDirectory(), profile, 42).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if summary.Chats.Created != 0 || len(ms.chats.rows) != 0 {
		t.Errorf("chats with one student: got %d created, want 0", summary.Chats.Created)
	}
	if len(ms.messages.rows) != 0 {
		t.Errorf("messages with no chats: got %d, want 0", len(ms.messages.rows))
	}
	if len(ms.follows.rows) != 0 {
		t.Errorf("follows with one student: got %d, want 0", len(ms.follows.rows))
	}
}
