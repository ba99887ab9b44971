package fastvault

import (
	"fmt"
	"time"

	"github.com/helpmefast/fastvault/internal/service"
	"github.com/helpmefast/fastvault/internal/tips"
	"github.com/helpmefast/fastvault/internal/vault"
	"github.com/spf13/cobra"
)

var (
	tipsHours    float64
	tipsCategory string
)

var tipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "Show fasting tips for the current (or a given) fast duration",
	RunE: func(cmd *cobra.Command, args []string) error {
		hours := tipsHours
		if !cmd.Flags().Changed("hours") {
			// Default to the live fast when one is running.
			err := withVault(func(s vault.Store) error {
				st, err := service.FastStatus(s, time.Now())
				if err != nil {
					return err
				}
				if st.Active {
					hours = float64(st.ElapsedSeconds) / 3600
				}
				return nil
			})
			if err != nil {
				return err
			}
		}

		relevant := tips.Relevant(hours)
		out := cmd.OutOrStdout()
		shown := 0
		for _, tip := range relevant {
			if tipsCategory != "" && string(tip.Category) != tipsCategory {
				continue
			}
			label := string(tip.Category)
			if meta, ok := tips.CategoryMeta[tip.Category]; ok {
				label = meta.Label
			}
			fmt.Fprintf(out, "[%s] %s\n", label, tip.Text)
			if tip.Source != "" {
				fmt.Fprintf(out, "    (%s)\n", tip.Source)
			}
			shown++
		}
		if shown == 0 {
			fmt.Fprintln(out, "No tips for this duration and category.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tipsCmd)
	tipsCmd.Flags().Float64Var(&tipsHours, "hours", 0, "Fast duration in hours to show tips for")
	tipsCmd.Flags().StringVar(&tipsCategory, "category", "", "Only show one category (e.g. electrolytes, hydration)")
}
