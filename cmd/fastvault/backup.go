package fastvault

import (
	"fmt"

	"github.com/helpmefast/fastvault/internal/service"
	"github.com/helpmefast/fastvault/internal/vault"
	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up and restore the vault",
}

var backupCreateCmd = &cobra.Command{
	Use:   "create <dir>",
	Short: "Write a backup of all vault data to a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withVault(func(s vault.Store) error {
			info, err := service.CreateBackup(s, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backed up %d document(s) and %d photo(s) to %s\n",
				info.Documents, info.Photos, info.Path)
			return nil
		})
	},
}

var restoreForce bool

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <dir>",
	Short: "Restore vault data from a backup directory",
	Args:  cobra.ExactArgs(1),
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

		// No vault.Init here: restore must see an untouched vault to
		// detect existing data.
		if err := service.RestoreBackup(s, args[0], restoreForce); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored vault from %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd, backupRestoreCmd)

	backupRestoreCmd.Flags().BoolVar(&restoreForce, "force", false, "Overwrite an already-initialized vault")
}
