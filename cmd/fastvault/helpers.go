package fastvault

import (
	"fmt"

	"github.com/helpmefast/fastvault/internal/vault"
)

func resolveVaultPath() (string, error) {
	if vaultPath != "" {
		return vaultPath, nil
	}
	return vault.DefaultPath()
}

func withVault(run func(vault.Store) error) error {
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
	return run(s)
}

func formatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
