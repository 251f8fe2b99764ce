// Package cli wires the configuration, store, and identity provider into
// the seedctl subcommands.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/engage-app/seedctl/internal/app/repositories"
	"github.com/engage-app/seedctl/internal/authadmin"
	"github.com/engage-app/seedctl/internal/config"
	"github.com/engage-app/seedctl/internal/db"
	"github.com/engage-app/seedctl/internal/pkg/logger"
	"github.com/engage-app/seedctl/internal/seed"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "seedctl [command]",
	Short:         "Seed, verify, and reset the Engage platform database",
	Long:          `Populates the Engage relational schema with a self-consistent set of synthetic schools, students, posts, events, and chats, mirrors students into the identity provider, and supports verification and full teardown.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yml", "Path to the configuration file")
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logger.Error().Err(err).Msg("Command failed")
	}
	return err
}

// runtime holds the dependencies a command needs, built lazily per
// invocation so configuration errors surface before any network call.
type runtime struct {
	cfg      *config.Config
	database *db.PostgresDB
	repos    *repositories.Repositories
	auth     *authadmin.Client
	log      zerolog.Logger
}

func newRuntime(needDB, needAuth bool) (*runtime, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})

	rt := &runtime{cfg: cfg, log: logger.Default()}

	if needAuth {
		// Validated before any connection is attempted
		if err := cfg.ValidateAuth(); err != nil {
			return nil, err
		}
		rt.auth = authadmin.NewClient(cfg.Auth.AdminURL, cfg.Auth.ServiceKey)
	}

	if needDB {
		database, err := db.NewPostgresDB(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		rt.database = database
		rt.repos = repositories.NewRepositories(database.Pool)
	}

	return rt, nil
}

func (rt *runtime) close() {
	if rt.database != nil {
		rt.database.Close()
	}
}

// stores adapts the repositories to the interfaces the engine depends on
func (rt *runtime) stores() seed.Stores {
	return seed.Stores{
		Schools:       rt.repos.SchoolRepository,
		Students:      rt.repos.StudentRepository,
		Preferences:   rt.repos.UserPreferencesRepository,
		Roles:         rt.repos.SchoolRoleRepository,
		Posts:         rt.repos.PostRepository,
		Likes:         rt.repos.LikeRepository,
		Comments:      rt.repos.CommentRepository,
		Resources:     rt.repos.ResourceRepository,
		Events:        rt.repos.EventRepository,
		Registrations: rt.repos.EventRegistrationRepository,
		Follows:       rt.repos.StudentFollowRepository,
		Chats:         rt.repos.ChatRepository,
		Participants:  rt.repos.ChatParticipantRepository,
		Messages:      rt.repos.MessageRepository,
	}
}
