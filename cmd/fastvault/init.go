package fastvault

import (
	"fmt"

	"github.com/helpmefast/fastvault/internal/vault"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveVaultPath()
		if err != nil {
			return err
		}
		if err := vault.EnsureDir(path); err != nil {
			return err
		}

		s, err := vault.Open(storeKind, path)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := vault.Init(s, path); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized vault at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
