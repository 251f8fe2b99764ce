package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/engage-app/seedctl/internal/authadmin"
	"github.com/engage-app/seedctl/internal/seed"
)

var cleanupAuthCmd = &cobra.Command{
	Use:   "cleanup-auth",
	Short: "Delete seeded identity accounts",
	Long: `Lists identity-provider accounts and deletes only those matching the
seeding email convention. Accounts created by real users are left alone.`,
	RunE: runCleanupAuth,
}

var cleanupAuthAllCmd = &cobra.Command{
	Use:   "cleanup-auth-all",
	Short: "Delete ALL identity accounts",
	Long: `Deletes every account in the identity provider, seeded or not. Intended
for throwaway environments only.`,
	RunE: runCleanupAuthAll,
}

func init() {
	rootCmd.AddCommand(cleanupAuthCmd)
	rootCmd.AddCommand(cleanupAuthAllCmd)
}

func runCleanupAuth(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(false, true)
	if err != nil {
		return err
	}
	defer rt.close()

	accounts, err := rt.auth.ListAccounts(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list identity accounts: %w", err)
	}

	seeded := seed.SeededAccounts(accounts, rt.cfg.Auth.EmailDomain)
	if len(seeded) == 0 {
		fmt.Println("No seeded accounts found.")
		return nil
	}

	fmt.Printf("Found %d seeded accounts:\n", len(seeded))
	previewAccounts(seeded, 10)

	if !confirm(fmt.Sprintf("Delete these %d accounts?", len(seeded))) {
		fmt.Println("Cleanup cancelled.")
		return nil
	}

	deleted := deleteAccounts(cmd, rt, seeded)
	fmt.Printf("Deleted %d of %d seeded accounts.\n", deleted, len(seeded))
	return nil
}

func runCleanupAuthAll(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(false, true)
	if err != nil {
		return err
	}
	defer rt.close()

	accounts, err := rt.auth.ListAccounts(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list identity accounts: %w", err)
	}
	if len(accounts) == 0 {
		fmt.Println("No accounts found.")
		return nil
	}

	fmt.Printf("Found %d accounts:\n", len(accounts))
	previewAccounts(accounts, 15)

	fmt.Println("WARNING: this deletes EVERY account, not just seeded ones.")
	if !confirm(fmt.Sprintf("Delete ALL %d accounts?", len(accounts))) {
		fmt.Println("Cleanup cancelled.")
		return nil
	}

	deleted := deleteAccounts(cmd, rt, accounts)
	fmt.Printf("Deleted %d of %d accounts.\n", deleted, len(accounts))
	return nil
}

func previewAccounts(accounts []authadmin.Account, limit int) {
	for i, account := range accounts {
		if i == limit {
			fmt.Printf("  ... and %d more\n", len(accounts)-limit)
			break
		}
		fmt.Printf("  %s\n", account.Email)
	}
}

func deleteAccounts(cmd *cobra.Command, rt *runtime, accounts []authadmin.Account) int {
	deleted := 0
	for _, account := range accounts {
		if err := rt.auth.DeleteAccount(cmd.Context(), account.ID); err != nil {
			rt.log.Warn().Err(err).Str("email", account.Email).Msg("Could not delete account")
			continue
		}
		deleted++
	}
	return deleted
}
