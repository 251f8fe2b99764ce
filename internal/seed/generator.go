package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/engage-app/seedctl/internal/app/models"
	"github.com/engage-app/seedctl/internal/authadmin"
	"github.com/engage-app/seedctl/internal/pkg/dberrors"
)

// Escalated when the minimally required upstream entities cannot be
// obtained; everything downstream would be unseedable.
var (
	ErrNoSchools  = errors.New("no schools available to seed against")
	ErrNoStudents = errors.New("no students available to seed against")
)

// Profile controls how much of each entity type a run generates. The
// defaults reproduce the standard demo population.
type Profile struct {
	Schools   int
	Students  int
	Posts     int
	Comments  int
	Resources int
	Events    int
	Chats     int
	Messages  int

	// EmailDomain and Password shape the synthetic student accounts
	EmailDomain string
	Password    string

	// MessagesFromParticipants restricts message authors to participants of
	// the sampled chat. Off by default: the demo data deliberately relaxes
	// the author-must-be-participant invariant.
	MessagesFromParticipants bool
}

// DefaultProfile returns the standard generation profile
func DefaultProfile() Profile {
	return Profile{
		Schools:     5,
		Students:    20,
		Posts:       30,
		Comments:    25,
		Resources:   60,
		Events:      12,
		Chats:       8,
		Messages:    40,
		EmailDomain: "fbla.test",
		Password:    "FBLA2024!",
	}
}

// Tally counts per-record outcomes for one entity type
type Tally struct {
	Created    int
	Existing   int
	Duplicates int
	Failed     int
}

// Summary reports what a generation run did
type Summary struct {
	Schools       Tally
	Students      Tally
	Roles         Tally
	Posts         Tally
	Likes         Tally
	Comments      Tally
	Resources     Tally
	Events        Tally
	Registrations Tally
	Follows       Tally
	Chats         Tally
	Participants  Tally
	Messages      Tally
}

// Generator populates the store in foreign-key dependency order. Every
// per-record failure is logged and counted, never fatal; only an empty
// school or student population aborts the run.
type Generator struct {
	stores  Stores
	auth    AccountDirectory
	profile Profile
	rng     *rand.Rand
	now     func() time.Time
	log     zerolog.Logger
}

// NewGenerator creates a generator. The rng is the run's single source of
// randomness; seeding it deterministically makes runs reproducible.
func NewGenerator(stores Stores, auth AccountDirectory, profile Profile, rng *rand.Rand, log zerolog.Logger) *Generator {
	return &Generator{
		stores:  stores,
		auth:    auth,
		profile: profile,
		rng:     rng,
		now:     time.Now,
		log:     log,
	}
}

// Run generates the full population. The fixed order guarantees that every
// entity's prerequisites exist before it is created.
func (g *Generator) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{}

	schoolIDs := g.createSchools(ctx, summary)
	if len(schoolIDs) == 0 {
		return summary, ErrNoSchools
	}

	studentIDs := g.createStudents(ctx, schoolIDs, summary)
	if len(studentIDs) == 0 {
		return summary, ErrNoStudents
	}

	g.createSchoolRoles(ctx, schoolIDs, studentIDs, summary)
	postIDs := g.createPosts(ctx, studentIDs, summary)
	g.createLikes(ctx, postIDs, studentIDs, summary)
	g.createComments(ctx, postIDs, studentIDs, summary)
	g.createResources(ctx, summary)
	eventIDs := g.createEvents(ctx, schoolIDs, summary)
	g.createRegistrations(ctx, eventIDs, studentIDs, summary)
	g.createFollows(ctx, studentIDs, summary)
	chatIDs, members := g.createChats(ctx, studentIDs, summary)
	g.createMessages(ctx, chatIDs, members, studentIDs, summary)

	return summary, nil
}

// createSchools resolves the school population by name, cycling the fixed
// name pool and synthesizing names from cities after it is exhausted.
func (g *Generator) createSchools(ctx context.Context, summary *Summary) []uuid.UUID {
	g.log.Info().Int("count", g.profile.Schools).Msg("Creating schools")

	var schoolIDs []uuid.UUID
	for i := 0; i < g.profile.Schools; i++ {
		name := schoolNames[i%len(schoolNames)]
		if i >= len(schoolNames) {
			name = fmt.Sprintf("%s High School FBLA", pick(g.rng, cityNames))
		}

		id, created, err := resolveOrCreate(ctx,
			func(ctx context.Context) (uuid.UUID, bool, error) {
				return g.stores.Schools.FindIDByName(ctx, name)
			},
			func(ctx context.Context) (uuid.UUID, error) {
				return g.stores.Schools.Create(ctx, g.buildSchool(name))
			},
		)
		if err != nil {
			g.log.Error().Err(err).Str("school", name).Msg("Failed to create school")
			summary.Schools.Failed++
			continue
		}

		if created {
			summary.Schools.Created++
			g.log.Info().Str("school", name).Msg("Created school")
		} else {
			summary.Schools.Existing++
			g.log.Debug().Str("school", name).Msg("School already exists")
		}
		schoolIDs = append(schoolIDs, id)
	}

	return schoolIDs
}

func (g *Generator) buildSchool(name string) *models.School {
	city := pick(g.rng, cityNames)
	established := g.now().AddDate(0, 0, -(5*365 + g.rng.Intn(15*365)))

	return &models.School{
		Name:          name,
		Address:       fmt.Sprintf("%d %s", 100+g.rng.Intn(9900), pick(g.rng, streetNames)),
		City:          city,
		State:         pick(g.rng, stateAbbrs),
		Zip:           fmt.Sprintf("%05d", 10000+g.rng.Intn(89999)),
		Email:         schoolEmail(name),
		EstablishedAt: established,
	}
}

// createStudents resolves students by email. A new student's identity
// account is created first; the profile row is only inserted once an
// account id is secured, so the two sides always share an id. Students are
// assigned to schools round-robin by index.
func (g *Generator) createStudents(ctx context.Context, schoolIDs []uuid.UUID, summary *Summary) []uuid.UUID {
	g.log.Info().Int("count", g.profile.Students).Msg("Creating students with identity accounts")

	var studentIDs []uuid.UUID
	for i := 0; i < g.profile.Students; i++ {
		email := fmt.Sprintf("student%d@%s", i+1, g.profile.EmailDomain)
		schoolID := schoolIDs[i%len(schoolIDs)]

		existingID, found, err := g.stores.Students.FindIDByEmail(ctx, email)
		if err != nil {
			g.log.Error().Err(err).Str("email", email).Msg("Failed to look up student")
			summary.Students.Failed++
			continue
		}
		if found {
			summary.Students.Existing++
			g.log.Debug().Str("email", email).Msg("Student already exists")
			if err := ensureStudentPreferences(ctx, g.stores.Preferences, existingID); err != nil {
				g.log.Warn().Err(err).Str("email", email).Msg("Failed to ensure preferences")
			}
			studentIDs = append(studentIDs, existingID)
			continue
		}

		name := pick(g.rng, firstNames) + " " + pick(g.rng, lastNames)
		id := uuid.New()

		status, err := g.auth.CreateAccount(ctx, email, g.profile.Password, id, name)
		if err != nil {
			// Not fatal for the batch: the student is skipped
			g.log.Warn().Err(err).Str("email", email).Msg("Identity creation failed, skipping student")
			summary.Students.Failed++
			continue
		}
		if status == authadmin.StatusAlreadyExists {
			accountID, ok, err := g.findAccountByEmail(ctx, email)
			if err != nil || !ok {
				g.log.Warn().Err(err).Str("email", email).Msg("Identity account exists but could not be resolved, skipping student")
				summary.Students.Failed++
				continue
			}
			id = accountID
		}

		student := &models.Student{
			ID:        id,
			Name:      name,
			Email:     email,
			SchoolID:  &schoolID,
			Bio:       g.buildBio(),
			Awards:    g.buildAwards(),
			Interests: sampleItems(g.rng, bioInterests, 2+g.rng.Intn(4)),
		}

		switch err := g.stores.Students.Create(ctx, student); {
		case err == nil:
			summary.Students.Created++
			g.log.Info().Str("email", email).Str("name", name).Msg("Created student")
		case dberrors.IsUniqueViolation(err):
			resolvedID, ok, findErr := g.stores.Students.FindIDByEmail(ctx, email)
			if findErr != nil || !ok {
				g.log.Error().Err(err).Str("email", email).Msg("Failed to resolve existing student after conflict")
				summary.Students.Failed++
				continue
			}
			id = resolvedID
			summary.Students.Existing++
		default:
			g.log.Error().Err(err).Str("email", email).Msg("Failed to create student")
			summary.Students.Failed++
			continue
		}

		if err := ensureStudentPreferences(ctx, g.stores.Preferences, id); err != nil {
			g.log.Warn().Err(err).Str("email", email).Msg("Failed to ensure preferences")
		}
		studentIDs = append(studentIDs, id)
	}

	return studentIDs
}

func (g *Generator) findAccountByEmail(ctx context.Context, email string) (uuid.UUID, bool, error) {
	accounts, err := g.auth.ListAccounts(ctx)
	if err != nil {
		return uuid.Nil, false, err
	}
	for _, account := range accounts {
		if account.Email == email {
			return account.ID, true, nil
		}
	}
	return uuid.Nil, false, nil
}

func (g *Generator) buildBio() *string {
	options := []string{
		fmt.Sprintf("Passionate about %s. Competing in %s.",
			strings.ToLower(pick(g.rng, bioInterests)), pick(g.rng, competitiveEvents[:5])),
		fmt.Sprintf("FBLA member since %d. Love competing and learning!", 2020+g.rng.Intn(4)),
		fmt.Sprintf("Future business leader. Excited about %s!",
			strings.ToLower(pick(g.rng, bioInterests))),
	}

	// A quarter of students leave the bio empty
	if g.rng.Intn(4) == 0 {
		return nil
	}
	bio := pick(g.rng, options)
	return &bio
}

func (g *Generator) buildAwards() []models.Award {
	if g.rng.Float64() <= 0.4 {
		return nil
	}
	return []models.Award{{
		Title: pick(g.rng, awardTitles),
		Event: pick(g.rng, competitiveEvents[:15]),
		Icon:  pick(g.rng, awardIcons),
	}}
}

// createSchoolRoles partitions students across schools by their round-robin
// index, hands the distinguished roles to the first students of each school,
// and makes everyone else a Member. Assignment is best-effort: the store's
// one-role-per-(student, school) constraint settles duplicates.
func (g *Generator) createSchoolRoles(ctx context.Context, schoolIDs, studentIDs []uuid.UUID, summary *Summary) {
	g.log.Info().Msg("Creating school roles")

	for si, schoolID := range schoolIDs {
		var schoolStudents []uuid.UUID
		for i, studentID := range studentIDs {
			if i%len(schoolIDs) == si {
				schoolStudents = append(schoolStudents, studentID)
			}
		}
		if len(schoolStudents) == 0 {
			continue
		}

		assigned := 0
		for _, role := range models.DistinguishedRoles {
			if assigned >= len(schoolStudents) {
				break
			}
			outcome := g.insertRole(ctx, schoolStudents[assigned], schoolID, role, summary)
			if outcome == RelationCreated {
				assigned++
			}
		}

		for _, studentID := range schoolStudents[assigned:] {
			g.insertRole(ctx, studentID, schoolID, models.RoleMember, summary)
		}
	}
}

func (g *Generator) insertRole(ctx context.Context, studentID, schoolID uuid.UUID, role string, summary *Summary) RelationOutcome {
	err := g.stores.Roles.Create(ctx, &models.SchoolRole{
		StudentID: studentID,
		SchoolID:  schoolID,
		Role:      role,
	})

	outcome, err := classifyRelation(err)
	if err != nil {
		g.log.Warn().Err(err).Str("role", role).Msg("Failed to create school role")
		summary.Roles.Failed++
		return outcome
	}

	switch outcome {
	case RelationCreated:
		summary.Roles.Created++
	case RelationDuplicate:
		summary.Roles.Duplicates++
	case RelationInvalid:
		summary.Roles.Failed++
	}
	return outcome
}

func (g *Generator) createPosts(ctx context.Context, studentIDs []uuid.UUID, summary *Summary) []uuid.UUID {
	g.log.Info().Int("count", g.profile.Posts).Msg("Creating posts")

	var postIDs []uuid.UUID
	for i := 0; i < g.profile.Posts; i++ {
		post := &models.Post{
			AuthorID: pick(g.rng, studentIDs),
			Content:  pick(g.rng, postContent),
		}

		id, err := g.stores.Posts.Create(ctx, post)
		if err != nil {
			g.log.Warn().Err(err).Msg("Failed to create post")
			summary.Posts.Failed++
			continue
		}
		summary.Posts.Created++
		postIDs = append(postIDs, id)
	}

	return postIDs
}

func (g *Generator) createLikes(ctx context.Context, postIDs, studentIDs []uuid.UUID, summary *Summary) {
	g.log.Info().Msg("Creating likes")

	maxLikers := len(studentIDs)
	if maxLikers > 8 {
		maxLikers = 8
	}

	for _, postID := range postIDs {
		likers := sampleItems(g.rng, studentIDs, g.rng.Intn(maxLikers+1))
		for _, studentID := range likers {
			err := g.stores.Likes.Create(ctx, &models.Like{PostID: postID, StudentID: studentID})
			outcome, err := classifyRelation(err)
			if err != nil {
				g.log.Warn().Err(err).Msg("Failed to create like")
				summary.Likes.Failed++
				continue
			}
			g.tallyRelation(&summary.Likes, outcome)
		}
	}
}

func (g *Generator) createComments(ctx context.Context, postIDs, studentIDs []uuid.UUID, summary *Summary) {
	g.log.Info().Int("count", g.profile.Comments).Msg("Creating comments")

	if len(postIDs) == 0 {
		return
	}

	for i := 0; i < g.profile.Comments; i++ {
		comment := &models.Comment{
			PostID:   pick(g.rng, postIDs),
			AuthorID: pick(g.rng, studentIDs),
			Content:  pick(g.rng, commentTexts),
		}

		if err := g.stores.Comments.Create(ctx, comment); err != nil {
			g.log.Warn().Err(err).Msg("Failed to create comment")
			summary.Comments.Failed++
			continue
		}
		summary.Comments.Created++
	}
}

func (g *Generator) createResources(ctx context.Context, summary *Summary) {
	g.log.Info().Int("count", g.profile.Resources).Msg("Creating resources")

	for i := 0; i < g.profile.Resources; i++ {
		eventName := pick(g.rng, competitiveEvents)
		resourceType := pick(g.rng, models.ResourceTypes)

		resource := &models.Resource{
			Title:       fmt.Sprintf(pick(g.rng, resourceTitles[resourceType]), eventName),
			Description: fmt.Sprintf(resourceDescriptions[resourceType], eventName),
			Type:        resourceType,
			EventName:   eventName,
			URL:         g.buildResourceURL(resourceType, eventName),
			Downloads:   g.rng.Intn(2001),
		}

		if err := g.stores.Resources.Create(ctx, resource); err != nil {
			g.log.Warn().Err(err).Str("title", resource.Title).Msg("Failed to create resource")
			summary.Resources.Failed++
			continue
		}
		summary.Resources.Created++
	}
}

func (g *Generator) buildResourceURL(resourceType models.ResourceType, eventName string) string {
	slug := eventSlug(eventName)
	switch resourceType {
	case models.ResourceTypeLink:
		return fmt.Sprintf("https://courses.example.com/%s", slug)
	case models.ResourceTypeVideo:
		return fmt.Sprintf("https://storage.example.com/media/%s/%s.mp4", slug, uuid.New())
	default:
		return fmt.Sprintf("https://storage.example.com/media/%s/%s.pdf", slug, uuid.New())
	}
}

// createEvents cycles the event templates; the start date falls in a
// 180-day forward window and the end date 1-3 days after it.
func (g *Generator) createEvents(ctx context.Context, schoolIDs []uuid.UUID, summary *Summary) []uuid.UUID {
	g.log.Info().Int("count", g.profile.Events).Msg("Creating events")

	var eventIDs []uuid.UUID
	for i := 0; i < g.profile.Events; i++ {
		template := eventTemplates[i%len(eventTemplates)]

		startDate := dateOnly(g.now().AddDate(0, 0, g.rng.Intn(181)))
		endDate := startDate.AddDate(0, 0, 1+g.rng.Intn(3))

		event := &models.Event{
			Title: template.Title,
			Description: fmt.Sprintf(
				"Join us for the %s. This event brings together chapter members from across the region to compete, network, and develop leadership skills.",
				template.Title),
			StartDate:   startDate,
			EndDate:     endDate,
			Location:    fmt.Sprintf("%s, %s", pick(g.rng, cityNames), pick(g.rng, stateAbbrs)),
			Level:       template.Level,
			OrganizerID: pick(g.rng, schoolIDs),
		}

		id, err := g.stores.Events.Create(ctx, event)
		if err != nil {
			g.log.Warn().Err(err).Str("title", event.Title).Msg("Failed to create event")
			summary.Events.Failed++
			continue
		}
		summary.Events.Created++
		g.log.Info().Str("title", event.Title).Msg("Created event")
		eventIDs = append(eventIDs, id)
	}

	return eventIDs
}

// createRegistrations samples 3..min(10, studentCount) distinct students per
// event, fewer when the population is small.
func (g *Generator) createRegistrations(ctx context.Context, eventIDs, studentIDs []uuid.UUID, summary *Summary) {
	g.log.Info().Msg("Creating event registrations")

	upper := len(studentIDs)
	if upper > 10 {
		upper = 10
	}
	lower := 3
	if upper < lower {
		lower = upper
	}

	for _, eventID := range eventIDs {
		count := lower + g.rng.Intn(upper-lower+1)
		for _, studentID := range sampleItems(g.rng, studentIDs, count) {
			err := g.stores.Registrations.Create(ctx, &models.EventRegistration{
				EventID:   eventID,
				StudentID: studentID,
			})
			outcome, err := classifyRelation(err)
			if err != nil {
				g.log.Warn().Err(err).Msg("Failed to create event registration")
				summary.Registrations.Failed++
				continue
			}
			g.tallyRelation(&summary.Registrations, outcome)
		}
	}
}

// createFollows samples up to 2x the student count of follower/following
// pairs. Self-pairs are discarded before insert; duplicate pairs are
// settled by the store's uniqueness constraint.
func (g *Generator) createFollows(ctx context.Context, studentIDs []uuid.UUID, summary *Summary) {
	g.log.Info().Msg("Creating follow relationships")

	attempts := 2 * len(studentIDs)
	if attempts > 40 {
		attempts = 40
	}

	for i := 0; i < attempts; i++ {
		followerID := pick(g.rng, studentIDs)
		followingID := pick(g.rng, studentIDs)
		if followerID == followingID {
			continue
		}

		err := g.stores.Follows.Create(ctx, &models.StudentFollow{
			FollowerID:  followerID,
			FollowingID: followingID,
		})
		outcome, err := classifyRelation(err)
		if err != nil {
			g.log.Warn().Err(err).Msg("Failed to create follow")
			summary.Follows.Failed++
			continue
		}
		g.tallyRelation(&summary.Follows, outcome)
	}
}

// createChats creates each chat and its participant rows. A direct chat gets
// the creator plus exactly one other student; a group chat the creator plus
// 2-4 others. Participant inserts are best-effort, so a chat can end up
// under-populated when the store rejects rows; the returned members map only
// contains participants whose rows were actually created.
func (g *Generator) createChats(ctx context.Context, studentIDs []uuid.UUID, summary *Summary) ([]uuid.UUID, map[uuid.UUID][]uuid.UUID) {
	g.log.Info().Int("count", g.profile.Chats).Msg("Creating chats")

	members := make(map[uuid.UUID][]uuid.UUID)
	if len(studentIDs) < 2 {
		g.log.Warn().Msg("Not enough students for chats, skipping")
		return nil, members
	}

	var chatIDs []uuid.UUID
	for i := 0; i < g.profile.Chats; i++ {
		chatType := pick(g.rng, models.ChatTypes)
		creatorID := pick(g.rng, studentIDs)

		chatID, err := g.stores.Chats.Create(ctx, &models.Chat{Type: chatType, CreatedBy: creatorID})
		if err != nil {
			g.log.Warn().Err(err).Msg("Failed to create chat")
			summary.Chats.Failed++
			continue
		}
		summary.Chats.Created++
		chatIDs = append(chatIDs, chatID)

		others := excluding(studentIDs, creatorID)
		var participants []uuid.UUID
		if chatType == models.ChatTypeDirect {
			participants = []uuid.UUID{creatorID, pick(g.rng, others)}
		} else {
			count := 2 + g.rng.Intn(3)
			if count > len(others) {
				count = len(others)
			}
			participants = append([]uuid.UUID{creatorID}, sampleItems(g.rng, others, count)...)
		}

		for _, studentID := range participants {
			err := g.stores.Participants.Create(ctx, &models.ChatParticipant{
				ChatID:    chatID,
				StudentID: studentID,
			})
			outcome, err := classifyRelation(err)
			if err != nil {
				g.log.Warn().Err(err).Msg("Failed to create chat participant")
				summary.Participants.Failed++
				continue
			}
			g.tallyRelation(&summary.Participants, outcome)
			if outcome == RelationCreated {
				members[chatID] = append(members[chatID], studentID)
			}
		}

		g.log.Info().Str("type", string(chatType)).Int("participants", len(members[chatID])).Msg("Created chat")
	}

	return chatIDs, members
}

// createMessages samples chat and author independently. Unless
// MessagesFromParticipants is set, the author may not be a participant of
// the sampled chat; the demo data accepts that relaxation.
func (g *Generator) createMessages(ctx context.Context, chatIDs []uuid.UUID, members map[uuid.UUID][]uuid.UUID, studentIDs []uuid.UUID, summary *Summary) {
	g.log.Info().Int("count", g.profile.Messages).Msg("Creating messages")

	if len(chatIDs) == 0 {
		return
	}

	for i := 0; i < g.profile.Messages; i++ {
		chatID := pick(g.rng, chatIDs)

		var authorID uuid.UUID
		if g.profile.MessagesFromParticipants {
			pool := members[chatID]
			if len(pool) == 0 {
				g.log.Debug().Msg("Chat has no participants, skipping message")
				summary.Messages.Failed++
				continue
			}
			authorID = pick(g.rng, pool)
		} else {
			authorID = pick(g.rng, studentIDs)
		}

		message := &models.Message{
			ChatID:   chatID,
			AuthorID: authorID,
			Content:  pick(g.rng, messageTexts),
		}

		if err := g.stores.Messages.Create(ctx, message); err != nil {
			g.log.Warn().Err(err).Msg("Failed to create message")
			summary.Messages.Failed++
			continue
		}
		summary.Messages.Created++
	}
}

func (g *Generator) tallyRelation(tally *Tally, outcome RelationOutcome) {
	switch outcome {
	case RelationCreated:
		tally.Created++
	case RelationDuplicate:
		tally.Duplicates++
	case RelationInvalid:
		tally.Failed++
	}
}
