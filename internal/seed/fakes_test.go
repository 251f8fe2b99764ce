package seed

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/engage-app/seedctl/internal/app/models"
	"github.com/engage-app/seedctl/internal/authadmin"
)

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505"}
}

func foreignKeyViolation() error {
	return &pgconn.PgError{Code: "23503"}
}

// pairSet emulates a composite unique constraint over two uuid columns
type pairSet map[[2]uuid.UUID]bool

func (p pairSet) add(a, b uuid.UUID) error {
	key := [2]uuid.UUID{a, b}
	if p[key] {
		return uniqueViolation()
	}
	p[key] = true
	return nil
}

type memSchoolStore struct {
	order  []uuid.UUID
	byName map[string]uuid.UUID
	rows   map[uuid.UUID]*models.School
}

func newMemSchoolStore() *memSchoolStore {
	return &memSchoolStore{byName: map[string]uuid.UUID{}, rows: map[uuid.UUID]*models.School{}}
}

func (s *memSchoolStore) Create(ctx context.Context, school *models.School) (uuid.UUID, error) {
	if _, ok := s.byName[school.Name]; ok {
		return uuid.Nil, uniqueViolation()
	}
	stored := *school
	stored.ID = uuid.New()
	s.byName[stored.Name] = stored.ID
	s.rows[stored.ID] = &stored
	s.order = append(s.order, stored.ID)
	return stored.ID, nil
}

func (s *memSchoolStore) FindIDByName(ctx context.Context, name string) (uuid.UUID, bool, error) {
	id, ok := s.byName[name]
	return id, ok, nil
}

type memStudentStore struct {
	byEmail map[string]uuid.UUID
	rows    map[uuid.UUID]*models.Student
}

func newMemStudentStore() *memStudentStore {
	return &memStudentStore{byEmail: map[string]uuid.UUID{}, rows: map[uuid.UUID]*models.Student{}}
}

func (s *memStudentStore) Create(ctx context.Context, student *models.Student) error {
	if _, ok := s.byEmail[student.Email]; ok {
		return uniqueViolation()
	}
	stored := *student
	s.byEmail[stored.Email] = stored.ID
	s.rows[stored.ID] = &stored
	return nil
}

func (s *memStudentStore) FindIDByEmail(ctx context.Context, email string) (uuid.UUID, bool, error) {
	id, ok := s.byEmail[email]
	return id, ok, nil
}

func (s *memStudentStore) Sample(ctx context.Context, limit int) ([]*models.Student, error) {
	emails := make([]string, 0, len(s.byEmail))
	for email := range s.byEmail {
		emails = append(emails, email)
	}
	sort.Strings(emails)
	if limit < len(emails) {
		emails = emails[:limit]
	}
	var students []*models.Student
	for _, email := range emails {
		row := s.rows[s.byEmail[email]]
		students = append(students, &models.Student{ID: row.ID, Email: row.Email})
	}
	return students, nil
}

type memPreferencesStore struct {
	rows map[uuid.UUID]*models.UserPreferences
}

func newMemPreferencesStore() *memPreferencesStore {
	return &memPreferencesStore{rows: map[uuid.UUID]*models.UserPreferences{}}
}

func (s *memPreferencesStore) Exists(ctx context.Context, studentID uuid.UUID) (bool, error) {
	_, ok := s.rows[studentID]
	return ok, nil
}

func (s *memPreferencesStore) Create(ctx context.Context, prefs *models.UserPreferences) error {
	if _, ok := s.rows[prefs.StudentID]; ok {
		return uniqueViolation()
	}
	stored := *prefs
	s.rows[stored.StudentID] = &stored
	return nil
}

type memRoleStore struct {
	pairs pairSet
	rows  []*models.SchoolRole
}

func newMemRoleStore() *memRoleStore {
	return &memRoleStore{pairs: pairSet{}}
}

func (s *memRoleStore) Create(ctx context.Context, role *models.SchoolRole) error {
	if err := s.pairs.add(role.StudentID, role.SchoolID); err != nil {
		return err
	}
	stored := *role
	s.rows = append(s.rows, &stored)
	return nil
}

type memPostStore struct {
	rows []*models.Post
}

func (s *memPostStore) Create(ctx context.Context, post *models.Post) (uuid.UUID, error) {
	stored := *post
	stored.ID = uuid.New()
	s.rows = append(s.rows, &stored)
	return stored.ID, nil
}

type memLikeStore struct {
	pairs pairSet
	rows  []*models.Like
}

func newMemLikeStore() *memLikeStore {
	return &memLikeStore{pairs: pairSet{}}
}

func (s *memLikeStore) Create(ctx context.Context, like *models.Like) error {
	if err := s.pairs.add(like.PostID, like.StudentID); err != nil {
		return err
	}
	stored := *like
	s.rows = append(s.rows, &stored)
	return nil
}

type memCommentStore struct {
	rows []*models.Comment
}

func (s *memCommentStore) Create(ctx context.Context, comment *models.Comment) error {
	stored := *comment
	s.rows = append(s.rows, &stored)
	return nil
}

type memResourceStore struct {
	rows []*models.Resource
}

func (s *memResourceStore) Create(ctx context.Context, resource *models.Resource) error {
	stored := *resource
	s.rows = append(s.rows, &stored)
	return nil
}

type memEventStore struct {
	rows []*models.Event
}

func (s *memEventStore) Create(ctx context.Context, event *models.Event) (uuid.UUID, error) {
	stored := *event
	stored.ID = uuid.New()
	s.rows = append(s.rows, &stored)
	return stored.ID, nil
}

type memRegistrationStore struct {
	pairs pairSet
	rows  []*models.EventRegistration
}

func newMemRegistrationStore() *memRegistrationStore {
	return &memRegistrationStore{pairs: pairSet{}}
}

func (s *memRegistrationStore) Create(ctx context.Context, reg *models.EventRegistration) error {
	if err := s.pairs.add(reg.EventID, reg.StudentID); err != nil {
		return err
	}
	stored := *reg
	s.rows = append(s.rows, &stored)
	return nil
}

type memFollowStore struct {
	pairs pairSet
	rows  []*models.StudentFollow
}

func newMemFollowStore() *memFollowStore {
	return &memFollowStore{pairs: pairSet{}}
}

func (s *memFollowStore) Create(ctx context.Context, follow *models.StudentFollow) error {
	if err := s.pairs.add(follow.FollowerID, follow.FollowingID); err != nil {
		return err
	}
	stored := *follow
	s.rows = append(s.rows, &stored)
	return nil
}

type memChatStore struct {
	rows []*models.Chat
}

func (s *memChatStore) Create(ctx context.Context, chat *models.Chat) (uuid.UUID, error) {
	stored := *chat
	stored.ID = uuid.New()
	s.rows = append(s.rows, &stored)
	return stored.ID, nil
}

type memParticipantStore struct {
	pairs   pairSet
	perChat map[uuid.UUID][]uuid.UUID

	// reject and rejectAll simulate the store refusing participant rows,
	// leaving chats under-populated
	reject    uuid.UUID
	rejectAll bool
}

func newMemParticipantStore() *memParticipantStore {
	return &memParticipantStore{pairs: pairSet{}, perChat: map[uuid.UUID][]uuid.UUID{}}
}

func (s *memParticipantStore) Create(ctx context.Context, participant *models.ChatParticipant) error {
	if s.rejectAll || (s.reject != uuid.Nil && participant.StudentID == s.reject) {
		return foreignKeyViolation()
	}
	if err := s.pairs.add(participant.ChatID, participant.StudentID); err != nil {
		return err
	}
	s.perChat[participant.ChatID] = append(s.perChat[participant.ChatID], participant.StudentID)
	return nil
}

type memMessageStore struct {
	rows []*models.Message
}

func (s *memMessageStore) Create(ctx context.Context, message *models.Message) error {
	stored := *message
	s.rows = append(s.rows, &stored)
	return nil
}

// memDirectory is an in-memory identity provider
type memDirectory struct {
	byEmail map[string]authadmin.Account

	// failEmails makes CreateAccount fail for specific addresses
	failEmails map[string]error
	created    []string
	deleted    []uuid.UUID
}

func newMemDirectory() *memDirectory {
	return &memDirectory{byEmail: map[string]authadmin.Account{}, failEmails: map[string]error{}}
}

func (d *memDirectory) addAccount(email string) uuid.UUID {
	id := uuid.New()
	d.byEmail[email] = authadmin.Account{ID: id, Email: email}
	return id
}

func (d *memDirectory) CreateAccount(ctx context.Context, email, password string, id uuid.UUID, displayName string) (authadmin.CreateStatus, error) {
	if err := d.failEmails[email]; err != nil {
		return 0, err
	}
	if _, ok := d.byEmail[email]; ok {
		return authadmin.StatusAlreadyExists, nil
	}
	d.byEmail[email] = authadmin.Account{ID: id, Email: email}
	d.created = append(d.created, email)
	return authadmin.StatusCreated, nil
}

func (d *memDirectory) ListAccounts(ctx context.Context) ([]authadmin.Account, error) {
	emails := make([]string, 0, len(d.byEmail))
	for email := range d.byEmail {
		emails = append(emails, email)
	}
	sort.Strings(emails)
	accounts := make([]authadmin.Account, 0, len(emails))
	for _, email := range emails {
		accounts = append(accounts, d.byEmail[email])
	}
	return accounts, nil
}

func (d *memDirectory) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	for email, account := range d.byEmail {
		if account.ID == id {
			delete(d.byEmail, email)
			d.deleted = append(d.deleted, id)
			return nil
		}
	}
	return foreignKeyViolation()
}

// memCleaner records which tables a teardown cleared and in what order
type memCleaner struct {
	order      []string
	textTables []string
	counts     map[string]int64
	failTables map[string]error
}

func newMemCleaner() *memCleaner {
	return &memCleaner{counts: map[string]int64{}, failTables: map[string]error{}}
}

func (c *memCleaner) DeleteAllRows(ctx context.Context, table, keyColumn string) (int64, error) {
	if err := c.failTables[table]; err != nil {
		return 0, err
	}
	c.order = append(c.order, table)
	return c.counts[table], nil
}

func (c *memCleaner) DeleteAllByTextKey(ctx context.Context, table, keyColumn string) (int64, error) {
	if err := c.failTables[table]; err != nil {
		return 0, err
	}
	c.order = append(c.order, table)
	c.textTables = append(c.textTables, table)
	return c.counts[table], nil
}

// memCounter reports fixed row counts for verification
type memCounter struct {
	counts    map[string]int64
	errTables map[string]error
}

func newMemCounter() *memCounter {
	return &memCounter{counts: map[string]int64{}, errTables: map[string]error{}}
}

func (c *memCounter) CountRows(ctx context.Context, table string) (int64, error) {
	if err := c.errTables[table]; err != nil {
		return 0, err
	}
	return c.counts[table], nil
}

// memStores bundles every fake so tests can assert on their contents
type memStores struct {
	schools       *memSchoolStore
	students      *memStudentStore
	preferences   *memPreferencesStore
	roles         *memRoleStore
	posts         *memPostStore
	likes         *memLikeStore
	comments      *memCommentStore
	resources     *memResourceStore
	events        *memEventStore
	registrations *memRegistrationStore
	follows       *memFollowStore
	chats         *memChatStore
	participants  *memParticipantStore
	messages      *memMessageStore
}

func newMemStores() *memStores {
	return &memStores{
		schools:       newMemSchoolStore(),
		students:      newMemStudentStore(),
		preferences:   newMemPreferencesStore(),
		roles:         newMemRoleStore(),
		posts:         &memPostStore{},
		likes:         newMemLikeStore(),
		comments:      &memCommentStore{},
		resources:     &memResourceStore{},
		events:        &memEventStore{},
		registrations: newMemRegistrationStore(),
		follows:       newMemFollowStore(),
		chats:         &memChatStore{},
		participants:  newMemParticipantStore(),
		messages:      &memMessageStore{},
	}
}

func (m *memStores) stores() Stores {
	return Stores{
		Schools:       m.schools,
		Students:      m.students,
		Preferences:   m.preferences,
		Roles:         m.roles,
		Posts:         m.posts,
		Likes:         m.likes,
		Comments:      m.comments,
		Resources:     m.resources,
		Events:        m.events,
		Registrations: m.registrations,
		Follows:       m.follows,
		Chats:         m.chats,
		Participants:  m.participants,
		Messages:      m.messages,
	}
}
