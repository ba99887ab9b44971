package fastvault

import (
	"fmt"
	"strings"
	"time"

	"github.com/helpmefast/fastvault/internal/model"
	"github.com/helpmefast/fastvault/internal/service"
	"github.com/helpmefast/fastvault/internal/units"
	"github.com/helpmefast/fastvault/internal/vault"
	"github.com/spf13/cobra"
)

var fastCmd = &cobra.Command{
	Use:   "fast",
	Short: "Start, end, and inspect fasts",
}

var (
	fastHours float64
	fastType  string
)

var fastStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new fast",
	RunE: func(cmd *cobra.Command, args []string) error {
		ft, err := resolveFastType()
		if err != nil {
			return err
		}
		return withVault(func(s vault.Store) error {
			sess, err := service.StartFast(s, ft.Hours, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started %s fast (%.4g h goal) at %s\n",
				ft.Name, sess.TargetHours, sess.StartTime.Local().Format("2006-01-02 15:04"))
			return nil
		})
	},
}

var fastEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the active fast",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withVault(func(s vault.Store) error {
			entry, err := service.EndFast(s, time.Now())
			if err != nil {
				return err
			}
			cfg, err := service.GetConfig(s)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fasted %s\n", formatDuration(entry.Duration))
			fmt.Fprintf(cmd.OutOrStdout(), "Estimated weight loss: %s %s\n",
				units.FormatWeight(entry.WeightLoss, cfg.WeightUnit), cfg.WeightUnit)
			return nil
		})
	},
}

var fastStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current fast",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withVault(func(s vault.Store) error {
			st, err := service.FastStatus(s, time.Now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !st.Active {
				fmt.Fprintln(out, "No active fast. Start one with: fastvault fast start")
				return nil
			}
			cfg, err := service.GetConfig(s)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Fasting for %s (goal %.4g h, %.0f%%)\n",
				formatDuration(st.ElapsedSeconds), st.TargetHours, st.Progress*100)
			if st.RemainingSeconds > 0 {
				fmt.Fprintf(out, "Remaining: %s\n", formatDuration(st.RemainingSeconds))
			} else {
				fmt.Fprintln(out, "Goal reached!")
			}
			fmt.Fprintf(out, "Phase: %s (%.0f%%)\n", st.Phase.Name, st.PhaseProgress*100)
			fmt.Fprintf(out, "Burned: %d kcal, ~%.0f g fat\n", st.CaloriesBurned, st.FatBurnedGrams)
			fmt.Fprintf(out, "Weight loss: %s %s (projected %s %s)\n",
				units.FormatWeight(st.WeightLoss, cfg.WeightUnit), cfg.WeightUnit,
				units.FormatWeight(st.ProjectedWeightLoss, cfg.WeightUnit), cfg.WeightUnit)
			fmt.Fprintf(out, "\n%s\n", st.Message.Text)
			if st.Tip != nil {
				fmt.Fprintf(out, "Tip: %s\n", st.Tip.Text)
			}
			if st.InDangerZone {
				fmt.Fprintln(out, "Heads up: you are in a configured danger zone right now. Hold the line.")
			}
			return nil
		})
	},
}

var fastListCmd = &cobra.Command{
	Use:   "list",
	Short: "List completed fasts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withVault(func(s vault.Store) error {
			fasts, err := service.ListFasts(s)
			if err != nil {
				return err
			}
			cfg, err := service.GetConfig(s)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "START\tEND\tDURATION\tLOSS (%s)\n", cfg.WeightUnit)
			for _, f := range fasts {
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\n",
					f.StartTime.Local().Format("2006-01-02 15:04"),
					f.EndTime.Local().Format("2006-01-02 15:04"),
					formatDuration(f.Duration),
					units.FormatWeight(f.WeightLoss, cfg.WeightUnit))
			}
			return nil
		})
	},
}

var fastTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List fast presets",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "ID\tNAME\tHOURS")
		for _, ft := range model.CommonFastTypes {
			fmt.Fprintf(out, "%s\t%s\t%.4g\n", ft.ID, ft.Name, ft.Hours)
		}
	},
}

// resolveFastType maps the start flags to a preset or custom goal. --type
// wins when both are set; without flags the 16:8 preset applies.
func resolveFastType() (model.FastType, error) {
	if strings.TrimSpace(fastType) != "" {
		ft, ok := model.FastTypeByID(strings.TrimSpace(fastType))
		if !ok {
			return model.FastType{}, fmt.Errorf("unknown fast type %q (see: fastvault fast types)", fastType)
		}
		return ft, nil
	}
	if fastHours != 0 {
		if fastHours < 0 {
			return model.FastType{}, fmt.Errorf("--hours must be > 0")
		}
		return model.CustomFastType(fastHours), nil
	}
	ft, _ := model.FastTypeByID("16-8")
	return ft, nil
}

func init() {
	rootCmd.AddCommand(fastCmd)
	fastCmd.AddCommand(fastStartCmd, fastEndCmd, fastStatusCmd, fastListCmd, fastTypesCmd)

	fastStartCmd.Flags().Float64Var(&fastHours, "hours", 0, "Custom goal in hours")
	fastStartCmd.Flags().StringVar(&fastType, "type", "", "Fast preset id (see: fastvault fast types)")
}
