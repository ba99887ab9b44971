package vault

import (
	"fmt"
	"path/filepath"
	"strings"
)

const sqliteFileName = "fastvault.db"

// Open resolves a storage backend by kind ("dir" or "sqlite") for the vault
// at path.
func Open(kind, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "dir":
		return OpenDir(path)
	case "sqlite":
		if err := EnsureDir(path); err != nil {
			return nil, err
		}
		return OpenSQLite(filepath.Join(path, sqliteFileName))
	default:
		return nil, fmt.Errorf("unknown store kind %q (use dir or sqlite)", kind)
	}
}
