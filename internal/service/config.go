package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/helpmefast/fastvault/internal/model"
	"github.com/helpmefast/fastvault/internal/vault"
)

// GetConfig reads the config document, defaulting when absent.
func GetConfig(s vault.Store) (model.Config, error) {
	return loadConfig(s)
}

// SetConfigValue updates one config key and rewrites the document.
// Supported keys: theme, notifications, weight-unit, danger-zones.
func SetConfigValue(s vault.Store, key, value string) (model.Config, error) {
	cfg, err := loadConfig(s)
	if err != nil {
		return model.Config{}, err
	}

	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)
	switch key {
	case "theme":
		if value != "light" && value != "dark" {
			return model.Config{}, fmt.Errorf("invalid theme %q (use light or dark)", value)
		}
		cfg.Theme = value
	case "notifications":
		on, err := strconv.ParseBool(value)
		if err != nil {
			return model.Config{}, fmt.Errorf("invalid notifications value %q (use true or false)", value)
		}
		cfg.Notifications = on
	case "weight-unit":
		unit := model.WeightUnit(value)
		if !model.ValidWeightUnit(unit) {
			return model.Config{}, fmt.Errorf("invalid weight unit %q (use kg or lbs)", value)
		}
		cfg.WeightUnit = unit
	case "danger-zones":
		zones, err := parseDangerZones(value)
		if err != nil {
			return model.Config{}, err
		}
		cfg.DangerZones = zones
	default:
		return model.Config{}, fmt.Errorf("unknown config key %q", key)
	}

	if err := saveConfig(s, cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

// parseDangerZones parses "18-20,22-23" into hour ranges. An empty value
// clears all zones.
func parseDangerZones(value string) ([]model.DangerZone, error) {
	zones := []model.DangerZone{}
	if value == "" {
		return zones, nil
	}
	for _, part := range strings.Split(value, ",") {
		bounds := strings.SplitN(strings.TrimSpace(part), "-", 2)
		if len(bounds) != 2 {
			return nil, fmt.Errorf("invalid danger zone %q (expected start-end)", part)
		}
		start, err1 := strconv.Atoi(strings.TrimSpace(bounds[0]))
		end, err2 := strconv.Atoi(strings.TrimSpace(bounds[1]))
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("invalid danger zone %q (expected start-end)", part)
		}
		if start < 0 || start > 23 || end < 1 || end > 24 || start >= end {
			return nil, fmt.Errorf("invalid danger zone %q (hours 0-24, start before end)", part)
		}
		zones = append(zones, model.DangerZone{Start: start, End: end})
	}
	return zones, nil
}
