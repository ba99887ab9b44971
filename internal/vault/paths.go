package vault

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDirName = "fastvault"

// DefaultPath resolves the default vault directory under the user's config
// directory.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, "vault"), nil
}

// EnsureDir creates the vault directory if it does not exist.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create vault directory: %w", err)
	}
	return nil
}
