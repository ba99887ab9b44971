package fastvault

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	vaultPath string
	storeKind string
)

var rootCmd = &cobra.Command{
	Use:   "fastvault",
	Short: "fastvault tracks intermittent fasting from your terminal",
	Long:  "fastvault is a local-first intermittent fasting CLI with a live fast timer, metabolic phases, weight progress, and coaching tips.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&vaultPath, "vault", "", "Path to vault directory")
	rootCmd.PersistentFlags().StringVar(&storeKind, "store", "", "Storage backend: dir or sqlite")
}
