package fastvault

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/helpmefast/fastvault/internal/model"
	"github.com/helpmefast/fastvault/internal/service"
	"github.com/helpmefast/fastvault/internal/units"
	"github.com/helpmefast/fastvault/internal/vault"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Track weight and photo progress",
}

var (
	progressDate   string
	progressWeight float64
	progressUnit   string
	progressPhoto  string
	progressNote   string
)

var progressAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a progress entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withVault(func(s vault.Store) error {
			cfg, err := service.GetConfig(s)
			if err != nil {
				return err
			}
			unit := cfg.WeightUnit
			if strings.TrimSpace(progressUnit) != "" {
				unit = model.WeightUnit(progressUnit)
			}

			in := service.ProgressEntryInput{
				Date: progressDate,
				Note: progressNote,
			}
			if in.Date == "" {
				in.Date = time.Now().Format("2006-01-02")
			}
			if cmd.Flags().Changed("weight") {
				kg, err := units.ToKg(progressWeight, unit)
				if err != nil {
					return err
				}
				in.Weight = &kg
			}
			if progressPhoto != "" {
				data, err := os.ReadFile(progressPhoto)
				if err != nil {
					return fmt.Errorf("read photo %q: %w", progressPhoto, err)
				}
				in.Photo = data
				in.PhotoExt = service.PhotoExtFromName(progressPhoto)
			}

			entry, err := service.AddProgressEntry(s, in, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added progress entry %s for %s\n", entry.ID, entry.Date)
			return nil
		})
	},
}

var progressListCmd = &cobra.Command{
	Use:   "list",
	Short: "List progress entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withVault(func(s vault.Store) error {
			entries, err := service.ListProgressEntries(s)
			if err != nil {
				return err
			}
			cfg, err := service.GetConfig(s)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			sum := service.ProgressWeightSummary(entries)
			if sum.Initial != nil && sum.Current != nil {
				fmt.Fprintf(out, "Initial: %s %s\tCurrent: %s %s\tChange: %+.1f %s\n\n",
					units.FormatWeight(*sum.Initial, cfg.WeightUnit), cfg.WeightUnit,
					units.FormatWeight(*sum.Current, cfg.WeightUnit), cfg.WeightUnit,
					displayDelta(*sum.Current-*sum.Initial, cfg.WeightUnit), cfg.WeightUnit)
			}

			fmt.Fprintf(out, "ID\tDATE\tWEIGHT (%s)\tPHOTO\tNOTE\n", cfg.WeightUnit)
			for _, e := range entries {
				weight := "-"
				if e.Weight != nil {
					weight = units.FormatWeight(*e.Weight, cfg.WeightUnit)
				}
				photo := "-"
				if e.PhotoPath != "" {
					photo = "yes"
				}
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Date, weight, photo, e.Note)
			}
			return nil
		})
	},
}

var progressDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a progress entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withVault(func(s vault.Store) error {
			if err := service.DeleteProgressEntry(s, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted progress entry %s\n", args[0])
			return nil
		})
	},
}

func displayDelta(kg float64, unit model.WeightUnit) float64 {
	v, err := units.FromKg(kg, unit)
	if err != nil {
		return kg
	}
	return v
}

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.AddCommand(progressAddCmd, progressListCmd, progressDeleteCmd)

	progressAddCmd.Flags().StringVar(&progressDate, "date", "", "Entry date YYYY-MM-DD (default today)")
	progressAddCmd.Flags().Float64Var(&progressWeight, "weight", 0, "Weight in the configured unit")
	progressAddCmd.Flags().StringVar(&progressUnit, "unit", "", "Weight unit for this entry: kg or lbs")
	progressAddCmd.Flags().StringVar(&progressPhoto, "photo", "", "Path to a progress photo")
	progressAddCmd.Flags().StringVar(&progressNote, "note", "", "Optional note")
}
