package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/engage-app/seedctl/internal/seed"
)

var seedFlags struct {
	reset                    bool
	count                    int
	auth                     bool
	randomSeed               int64
	messagesFromParticipants bool
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with synthetic data",
	Long: `Creates schools, students (with identity provider accounts), roles, posts,
likes, comments, resources, events, registrations, follows, chats, and
messages in foreign-key dependency order. Re-running converges on the same
population instead of appending duplicates.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().BoolVar(&seedFlags.reset, "reset", false, "Reset the database before seeding")
	seedCmd.Flags().IntVar(&seedFlags.count, "count", 0, "Number of students to create (default from config)")
	seedCmd.Flags().BoolVar(&seedFlags.auth, "auth", false, "Also delete seeded identity accounts when using --reset")
	seedCmd.Flags().Int64Var(&seedFlags.randomSeed, "seed", 0, "Random seed for reproducible runs (default from config)")
	seedCmd.Flags().BoolVar(&seedFlags.messagesFromParticipants, "messages-from-participants", false, "Only let chat participants author messages")
}

func runSeed(cmd *cobra.Command, args []string) error {
	if seedFlags.reset {
		if !confirm("This will DELETE ALL DATA and reset the database. Continue?") {
			fmt.Println("Seeding cancelled.")
			return nil
		}
	} else {
		if !confirm("This will populate your database with test data. Continue?") {
			fmt.Println("Seeding cancelled.")
			return nil
		}
	}

	rt, err := newRuntime(true, true)
	if err != nil {
		return err
	}
	defer rt.close()

	ctx := cmd.Context()

	if seedFlags.reset {
		teardown := seed.NewTeardown(rt.repos.MaintenanceRepository, rt.auth, rt.cfg.Auth.EmailDomain, rt.log)
		teardown.Run(ctx, seedFlags.auth)
	}

	profile := seed.DefaultProfile()
	profile.Students = rt.cfg.Seeding.Students
	if cmd.Flags().Changed("count") {
		profile.Students = seedFlags.count
	}
	profile.EmailDomain = rt.cfg.Auth.EmailDomain
	profile.Password = rt.cfg.Auth.Password
	profile.MessagesFromParticipants = seedFlags.messagesFromParticipants

	randomSeed := rt.cfg.Seeding.Seed
	if cmd.Flags().Changed("seed") {
		randomSeed = seedFlags.randomSeed
	}
	rng := rand.New(rand.NewSource(randomSeed))
	generator := seed.NewGenerator(rt.stores(), rt.auth, profile, rng, rt.log)

	summary, err := generator.Run(ctx)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	printSummary(summary, profile)
	return nil
}

func printSummary(summary *seed.Summary, profile seed.Profile) {
	fmt.Println()
	fmt.Println("Database seeding completed.")
	fmt.Println()
	fmt.Println("Summary:")
	printTally("Schools", summary.Schools)
	printTally("Students", summary.Students)
	printTally("School roles", summary.Roles)
	printTally("Posts", summary.Posts)
	printTally("Likes", summary.Likes)
	printTally("Comments", summary.Comments)
	printTally("Resources", summary.Resources)
	printTally("Events", summary.Events)
	printTally("Registrations", summary.Registrations)
	printTally("Follows", summary.Follows)
	printTally("Chats", summary.Chats)
	printTally("Participants", summary.Participants)
	printTally("Messages", summary.Messages)
	fmt.Println()
	fmt.Println("Login credentials:")
	fmt.Printf("  Email format: student1@%s, student2@%s, ...\n", profile.EmailDomain, profile.EmailDomain)
	fmt.Printf("  Password: %s\n", profile.Password)
}

func printTally(label string, tally seed.Tally) {
	fmt.Printf("  %-14s %4d created, %d existing, %d duplicate, %d failed\n",
		label, tally.Created, tally.Existing, tally.Duplicates, tally.Failed)
}
