// Package service implements the tracker's operations over a vault.Store:
// the fasting session lifecycle, the history ledger, and the profile and
// config documents. Every mutation reads the affected document in full,
// applies the change in memory, and rewrites it; a failed write leaves the
// persisted state untouched.
package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/helpmefast/fastvault/internal/fast"
	"github.com/helpmefast/fastvault/internal/model"
	"github.com/helpmefast/fastvault/internal/vault"
)

// Persisted documents are untrusted input: they are parse-validated on every
// read, and a missing document falls back to a sane default.

func loadHistory(s vault.Store) (model.History, error) {
	var h model.History
	raw, err := s.ReadDocument(vault.DocHistory)
	if errors.Is(err, vault.ErrNotFound) {
		return model.History{Fasts: []model.FastEntry{}, ProgressEntries: []model.ProgressEntry{}}, nil
	}
	if err != nil {
		return h, err
	}
	if err := json.Unmarshal(raw, &h); err != nil {
		return h, fmt.Errorf("parse history document: %w", err)
	}
	if h.Fasts == nil {
		h.Fasts = []model.FastEntry{}
	}
	if h.ProgressEntries == nil {
		h.ProgressEntries = []model.ProgressEntry{}
	}
	return h, nil
}

func saveHistory(s vault.Store, h model.History) error {
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history document: %w", err)
	}
	return s.WriteDocument(vault.DocHistory, data)
}

func loadSession(s vault.Store) (fast.Session, error) {
	raw, err := s.ReadDocument(vault.DocActiveFast)
	if errors.Is(err, vault.ErrNotFound) {
		return fast.Session{}, nil
	}
	if err != nil {
		return fast.Session{}, err
	}
	var sess fast.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return fast.Session{}, fmt.Errorf("parse active-fast document: %w", err)
	}
	return sess.Normalize(), nil
}

func saveSession(s vault.Store, sess fast.Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encode active-fast document: %w", err)
	}
	return s.WriteDocument(vault.DocActiveFast, data)
}

func loadProfile(s vault.Store) (model.Profile, error) {
	raw, err := s.ReadDocument(vault.DocProfile)
	if errors.Is(err, vault.ErrNotFound) {
		return vault.DefaultProfile(), nil
	}
	if err != nil {
		return model.Profile{}, err
	}
	var p model.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return model.Profile{}, fmt.Errorf("parse profile document: %w", err)
	}
	return p, nil
}

func saveProfile(s vault.Store, p model.Profile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile document: %w", err)
	}
	return s.WriteDocument(vault.DocProfile, data)
}

func loadConfig(s vault.Store) (model.Config, error) {
	raw, err := s.ReadDocument(vault.DocConfig)
	if errors.Is(err, vault.ErrNotFound) {
		return vault.DefaultConfig(""), nil
	}
	if err != nil {
		return model.Config{}, err
	}
	var cfg model.Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return model.Config{}, fmt.Errorf("parse config document: %w", err)
	}
	if !model.ValidWeightUnit(cfg.WeightUnit) {
		cfg.WeightUnit = model.WeightUnitKg
	}
	return cfg, nil
}

func saveConfig(s vault.Store, cfg model.Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config document: %w", err)
	}
	return s.WriteDocument(vault.DocConfig, data)
}
