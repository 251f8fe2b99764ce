package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/engage-app/seedctl/internal/seed"
)

var resetAuth bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all data from the database",
	Long: `Empties every table in reverse foreign-key dependency order. With --auth
also deletes the identity accounts created by seeding (matched by their
email convention); other accounts are never touched.`,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetAuth, "auth", false, "Also delete seeded identity accounts")
}

func runReset(cmd *cobra.Command, args []string) error {
	if !confirm("This will DELETE ALL DATA. Continue?") {
		fmt.Println("Reset cancelled.")
		return nil
	}

	rt, err := newRuntime(true, resetAuth)
	if err != nil {
		return err
	}
	defer rt.close()

	teardown := seed.NewTeardown(rt.repos.MaintenanceRepository, rt.auth, rt.cfg.Auth.EmailDomain, rt.log)
	report := teardown.Run(cmd.Context(), resetAuth)

	fmt.Printf("Cleared %d tables (%d rows).\n", len(report.TablesCleared), report.RowsDeleted)
	if len(report.TablesFailed) > 0 {
		fmt.Printf("Could not clear: %v\n", report.TablesFailed)
	}
	if resetAuth {
		fmt.Printf("Deleted %d identity accounts.\n", report.AccountsDeleted)
	} else {
		fmt.Println("Note: identity accounts are not deleted. Use 'seedctl cleanup-auth' or 'seedctl reset --auth'.")
	}

	return nil
}
