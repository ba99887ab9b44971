package service_test

import (
	"testing"

	"github.com/helpmefast/fastvault/internal/vault"
)

func newTestVault(t *testing.T) vault.Store {
	t.Helper()
	root := t.TempDir()
	s, err := vault.OpenDir(root)
	if err != nil {
		t.Fatalf("open vault: %v", err)
	}
	if err := vault.Init(s, root); err != nil {
		t.Fatalf("init vault: %v", err)
	}
	return s
}

func floatPtr(v float64) *float64 {
	return &v
}
