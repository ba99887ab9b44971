package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/helpmefast/fastvault/internal/vault"
)

// BackupInfo describes a completed backup.
type BackupInfo struct {
	Path      string
	Documents int
	Photos    int
}

// CreateBackup copies every vault document, plus the photo and avatar
// resources they reference, into outDir as plain files. Missing resources
// are skipped; the documents are the authoritative part of a backup.
func CreateBackup(s vault.Store, outDir string) (BackupInfo, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return BackupInfo{}, fmt.Errorf("create backup directory: %w", err)
	}

	info := BackupInfo{Path: outDir}
	for _, key := range vault.DocumentKeys {
		raw, err := s.ReadDocument(key)
		if errors.Is(err, vault.ErrNotFound) {
			continue
		}
		if err != nil {
			return BackupInfo{}, err
		}
		if err := os.WriteFile(filepath.Join(outDir, key+".json"), raw, 0o644); err != nil {
			return BackupInfo{}, fmt.Errorf("write backup document %q: %w", key, err)
		}
		info.Documents++
	}

	for _, handle := range referencedResources(s) {
		data, err := s.ReadResource(handle)
		if err != nil {
			continue
		}
		dest := filepath.Join(outDir, filepath.FromSlash(handle))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return BackupInfo{}, fmt.Errorf("create backup resource directory: %w", err)
		}
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return BackupInfo{}, fmt.Errorf("write backup resource %q: %w", handle, err)
		}
		info.Photos++
	}
	return info, nil
}

// RestoreBackup loads the documents (and any resources) from a backup
// directory into the store. Without force it refuses to overwrite a vault
// that already has a config document.
func RestoreBackup(s vault.Store, dir string, force bool) error {
	if !force {
		if _, err := s.ReadDocument(vault.DocConfig); err == nil {
			return fmt.Errorf("vault already initialized (use --force to overwrite)")
		} else if !errors.Is(err, vault.ErrNotFound) {
			return err
		}
	}

	restored := 0
	for _, key := range vault.DocumentKeys {
		raw, err := os.ReadFile(filepath.Join(dir, key+".json"))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read backup document %q: %w", key, err)
		}
		if !json.Valid(raw) {
			return fmt.Errorf("backup document %q is not valid JSON", key)
		}
		if err := s.WriteDocument(key, raw); err != nil {
			return err
		}
		restored++
	}
	if restored == 0 {
		return fmt.Errorf("no vault documents found in %s", dir)
	}

	for _, handle := range referencedResources(s) {
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(handle)))
		if err != nil {
			continue
		}
		if _, err := s.StoreBinaryResource(data, path.Base(handle)); err != nil {
			return err
		}
	}
	return nil
}

// referencedResources collects every resource handle the current documents
// point at: progress photos and the profile avatar.
func referencedResources(s vault.Store) []string {
	var handles []string
	if h, err := loadHistory(s); err == nil {
		for _, e := range h.ProgressEntries {
			if e.PhotoPath != "" {
				handles = append(handles, e.PhotoPath)
			}
		}
	}
	if p, err := loadProfile(s); err == nil && p.Avatar != "" {
		handles = append(handles, p.Avatar)
	}
	return handles
}
