package fastvault

import (
	"fmt"

	"github.com/helpmefast/fastvault/internal/service"
	"github.com/helpmefast/fastvault/internal/vault"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run vault integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withVault(func(s vault.Store) error {
			report, err := service.RunDoctor(s)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range report.Checks {
				status := "ok"
				if c.Err != "" {
					status = c.Err
				}
				fmt.Fprintf(out, "%s\t%s\n", c.Name, status)
			}
			fmt.Fprintf(out, "Missing photos: %d\n", report.MissingPhotos)
			if report.Issues() > 0 {
				return fmt.Errorf("doctor found %d issue(s)", report.Issues())
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
