package fastvault

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/helpmefast/fastvault/internal/service"
	"github.com/helpmefast/fastvault/internal/vault"
	"github.com/spf13/cobra"
)

var (
	exportWhat string
	exportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export history as JSON or CSV",
	Long:  "Exports fasting and progress data. --what selects history (full JSON), fasts (CSV), or progress (CSV).",
	RunE: func(cmd *cobra.Command, args []string) error {
		var out io.Writer = cmd.OutOrStdout()
		if strings.TrimSpace(exportOut) != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			defer f.Close()
			out = f
		}
		return withVault(func(s vault.Store) error {
			switch strings.ToLower(strings.TrimSpace(exportWhat)) {
			case "", "history":
				return service.ExportHistoryJSON(s, out)
			case "fasts":
				return service.ExportFastsCSV(s, out)
			case "progress":
				return service.ExportProgressCSV(s, out)
			default:
				return fmt.Errorf("unknown export target %q (use history, fasts, or progress)", exportWhat)
			}
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportWhat, "what", "history", "What to export: history, fasts, or progress")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default stdout)")
}
