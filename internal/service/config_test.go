package service_test

import (
	"testing"

	"github.com/helpmefast/fastvault/internal/model"
	"github.com/helpmefast/fastvault/internal/service"
)

func TestGetConfigDefaults(t *testing.T) {
	t.Parallel()
	s := newTestVault(t)
	defer s.Close()

	cfg, err := service.GetConfig(s)
	if err != nil {
		t.Fatalf("get config: %v", err)
	}
	if cfg.Theme != "light" || !cfg.Notifications || cfg.WeightUnit != model.WeightUnitKg {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if len(cfg.DangerZones) != 1 || cfg.DangerZones[0].Start != 18 || cfg.DangerZones[0].End != 20 {
		t.Fatalf("expected default 18-20 danger zone, got %+v", cfg.DangerZones)
	}
}

func TestSetConfigValue(t *testing.T) {
	t.Parallel()
	s := newTestVault(t)
	defer s.Close()

	if _, err := service.SetConfigValue(s, "theme", "dark"); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if _, err := service.SetConfigValue(s, "notifications", "false"); err != nil {
		t.Fatalf("set notifications: %v", err)
	}
	if _, err := service.SetConfigValue(s, "weight-unit", "lbs"); err != nil {
		t.Fatalf("set weight unit: %v", err)
	}
	cfg, err := service.SetConfigValue(s, "danger-zones", "18-20, 22-23")
	if err != nil {
		t.Fatalf("set danger zones: %v", err)
	}

	if cfg.Theme != "dark" || cfg.Notifications || cfg.WeightUnit != model.WeightUnitLbs {
		t.Fatalf("unexpected config after edits: %+v", cfg)
	}
	want := []model.DangerZone{{Start: 18, End: 20}, {Start: 22, End: 23}}
	if len(cfg.DangerZones) != len(want) {
		t.Fatalf("expected %d zones, got %+v", len(want), cfg.DangerZones)
	}
	for i, z := range want {
		if cfg.DangerZones[i] != z {
			t.Fatalf("zone %d: expected %+v, got %+v", i, z, cfg.DangerZones[i])
		}
	}

	// Edits persist across reads.
	got, err := service.GetConfig(s)
	if err != nil {
		t.Fatalf("get config: %v", err)
	}
	if got.Theme != "dark" || got.WeightUnit != model.WeightUnitLbs {
		t.Fatalf("config did not persist: %+v", got)
	}

	// Clearing zones with an empty value.
	cleared, err := service.SetConfigValue(s, "danger-zones", "")
	if err != nil {
		t.Fatalf("clear danger zones: %v", err)
	}
	if len(cleared.DangerZones) != 0 {
		t.Fatalf("expected no zones, got %+v", cleared.DangerZones)
	}
}

func TestSetConfigValueRejectsBadInput(t *testing.T) {
	t.Parallel()
	s := newTestVault(t)
	defer s.Close()

	bad := [][2]string{
		{"theme", "solarized"},
		{"notifications", "maybe"},
		{"weight-unit", "stone"},
		{"danger-zones", "20-18"},
		{"danger-zones", "18"},
		{"danger-zones", "18-25"},
		{"volume", "11"},
	}
	for _, kv := range bad {
		if _, err := service.SetConfigValue(s, kv[0], kv[1]); err == nil {
			t.Fatalf("expected %s=%s to be rejected", kv[0], kv[1])
		}
	}

	cfg, err := service.GetConfig(s)
	if err != nil {
		t.Fatalf("get config: %v", err)
	}
	if cfg.Theme != "light" {
		t.Fatalf("rejected edits must not change config, got %+v", cfg)
	}
}
