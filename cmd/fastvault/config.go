package fastvault

import (
	"fmt"
	"strings"

	"github.com/helpmefast/fastvault/internal/service"
	"github.com/helpmefast/fastvault/internal/vault"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage local configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withVault(func(s vault.Store) error {
			cfg, err := service.GetConfig(s)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "KEY\tVALUE")
			fmt.Fprintf(out, "theme\t%s\n", cfg.Theme)
			fmt.Fprintf(out, "notifications\t%t\n", cfg.Notifications)
			fmt.Fprintf(out, "weight-unit\t%s\n", cfg.WeightUnit)
			zones := make([]string, 0, len(cfg.DangerZones))
			for _, z := range cfg.DangerZones {
				zones = append(zones, fmt.Sprintf("%d-%d", z.Start, z.End))
			}
			fmt.Fprintf(out, "danger-zones\t%s\n", strings.Join(zones, ","))
			return nil
		})
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long:  "Keys: theme (light|dark), notifications (true|false), weight-unit (kg|lbs), danger-zones (e.g. 18-20,22-23; empty clears).",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value := ""
		if len(args) == 2 {
			value = args[1]
		}
		return withVault(func(s vault.Store) error {
			if _, err := service.SetConfigValue(s, args[0], value); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSetCmd)
}
