// Package vault is the persistence boundary: a small document/resource store
// the core reads and writes whole JSON documents through. Two backends
// implement it, a directory of JSON files and a single SQLite database.
package vault

import "errors"

// Logical document keys. Each key maps to exactly one persisted document that
// is always read and rewritten in full.
const (
	DocConfig     = "config"
	DocProfile    = "profile"
	DocHistory    = "history"
	DocActiveFast = "active-fast"
)

// DocumentKeys lists every logical document of a vault.
var DocumentKeys = []string{DocConfig, DocProfile, DocHistory, DocActiveFast}

// ErrNotFound reports a missing document or resource.
var ErrNotFound = errors.New("not found")

// Store is the gateway contract. Binary resources (photos, avatars) are
// addressed by the opaque handle returned from StoreBinaryResource.
type Store interface {
	ReadDocument(key string) ([]byte, error)
	WriteDocument(key string, data []byte) error

	StoreBinaryResource(data []byte, suggestedName string) (string, error)
	ReadResource(handle string) ([]byte, error)
	// DeleteResource is idempotent: deleting an absent resource succeeds.
	DeleteResource(handle string) error

	Close() error
}
