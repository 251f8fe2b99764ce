package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/engage-app/seedctl/internal/seed"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that seeded data is present",
	Long: `Counts rows in every seeded table and reports whether each meets its
expected minimum. Read-only; never modifies data and always exits zero.`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(true, false)
	if err != nil {
		return err
	}
	defer rt.close()

	reporter := seed.NewReporter(rt.repos.MaintenanceRepository, rt.repos.StudentRepository, rt.log)
	report := reporter.Run(cmd.Context())

	fmt.Println("Table                 Rows  Status")
	fmt.Println("-----------------------------------")
	for _, result := range report.Results {
		status := "OK"
		if !result.OK {
			status = fmt.Sprintf("MISSING (want >= %d)", result.Minimum)
		}
		fmt.Printf("%-20s %5d  %s\n", result.Table, result.Count, status)
	}

	if len(report.SampleStudents) > 0 {
		fmt.Println("\nSample students:")
		for _, email := range report.SampleStudents {
			fmt.Printf("  %s\n", email)
		}
	}

	if report.AllOK {
		fmt.Println("\nAll checks passed.")
	} else {
		fmt.Println("\nSome tables are below their expected minimum. Run 'seedctl seed' to populate.")
	}

	return nil
}
