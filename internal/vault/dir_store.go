package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const photosDirName = "photos"

// DirStore keeps each document as a pretty-printed JSON file inside the
// vault directory and binary resources under photos/.
type DirStore struct {
	root string
}

// OpenDir opens (creating if needed) a directory-backed vault at root.
func OpenDir(root string) (*DirStore, error) {
	if err := EnsureDir(root); err != nil {
		return nil, err
	}
	return &DirStore{root: root}, nil
}

func (s *DirStore) documentPath(key string) (string, error) {
	if err := validateName(key); err != nil {
		return "", err
	}
	return filepath.Join(s.root, key+".json"), nil
}

func (s *DirStore) ReadDocument(key string) ([]byte, error) {
	path, err := s.documentPath(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("document %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read document %q: %w", key, err)
	}
	return data, nil
}

func (s *DirStore) WriteDocument(key string, data []byte) error {
	path, err := s.documentPath(key)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write document %q: %w", key, err)
	}
	return nil
}

func (s *DirStore) StoreBinaryResource(data []byte, suggestedName string) (string, error) {
	if err := validateName(suggestedName); err != nil {
		return "", err
	}
	dir := filepath.Join(s.root, photosDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create photos directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, suggestedName), data, 0o644); err != nil {
		return "", fmt.Errorf("store resource %q: %w", suggestedName, err)
	}
	return photosDirName + "/" + suggestedName, nil
}

func (s *DirStore) ReadResource(handle string) ([]byte, error) {
	path, err := s.resourcePath(handle)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("resource %q: %w", handle, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read resource %q: %w", handle, err)
	}
	return data, nil
}

func (s *DirStore) DeleteResource(handle string) error {
	path, err := s.resourcePath(handle)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete resource %q: %w", handle, err)
	}
	return nil
}

func (s *DirStore) Close() error {
	return nil
}

func (s *DirStore) resourcePath(handle string) (string, error) {
	handle = filepath.ToSlash(handle)
	for _, part := range strings.Split(handle, "/") {
		if err := validateName(part); err != nil {
			return "", fmt.Errorf("invalid resource handle %q", handle)
		}
	}
	return filepath.Join(s.root, filepath.FromSlash(handle)), nil
}

// validateName rejects names that could escape the vault directory.
func validateName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid name %q", name)
	}
	return nil
}
