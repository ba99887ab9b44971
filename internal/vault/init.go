package vault

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/helpmefast/fastvault/internal/model"
)

// DefaultConfig is the config document seeded into a fresh vault.
func DefaultConfig(vaultPath string) model.Config {
	return model.Config{
		VaultPath:     vaultPath,
		Theme:         "light",
		Notifications: true,
		DangerZones:   []model.DangerZone{{Start: 18, End: 20}},
		WeightUnit:    model.WeightUnitKg,
	}
}

// DefaultProfile is the zeroed profile seeded into a fresh vault.
func DefaultProfile() model.Profile {
	return model.Profile{
		Gender:        model.GenderMale,
		ActivityLevel: model.ActivityModerate,
	}
}

// Init seeds the config, profile and history documents when absent. It is
// idempotent: existing documents are left untouched. The active-fast
// descriptor is deliberately not seeded; its absence means idle.
func Init(s Store, vaultPath string) error {
	seeds := []struct {
		key string
		doc any
	}{
		{DocConfig, DefaultConfig(vaultPath)},
		{DocProfile, DefaultProfile()},
		{DocHistory, model.History{Fasts: []model.FastEntry{}, ProgressEntries: []model.ProgressEntry{}}},
	}
	for _, seed := range seeds {
		_, err := s.ReadDocument(seed.key)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		data, err := json.MarshalIndent(seed.doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode default %s document: %w", seed.key, err)
		}
		if err := s.WriteDocument(seed.key, data); err != nil {
			return err
		}
	}
	return nil
}
