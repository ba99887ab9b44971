package service

import (
	"fmt"
	"time"

	"github.com/helpmefast/fastvault/internal/energy"
	"github.com/helpmefast/fastvault/internal/model"
	"github.com/helpmefast/fastvault/internal/vault"
)

// GetProfile reads the profile document, defaulting when absent.
func GetProfile(s vault.Store) (model.Profile, error) {
	return loadProfile(s)
}

// ProfileInput carries the editable profile fields. Weight is kg, height cm.
type ProfileInput struct {
	Name          string
	WeightKg      float64
	HeightCm      float64
	Age           int
	Gender        model.Gender
	ActivityLevel model.ActivityLevel
}

// SaveProfile validates the input, recomputes the cached TDEE and rewrites
// the profile document. The avatar handle of an existing profile survives.
func SaveProfile(s vault.Store, in ProfileInput) (model.Profile, error) {
	if in.WeightKg <= 0 {
		return model.Profile{}, fmt.Errorf("weight must be > 0")
	}
	if in.HeightCm <= 0 {
		return model.Profile{}, fmt.Errorf("height must be > 0")
	}
	if in.Age <= 0 || in.Age > 130 {
		return model.Profile{}, fmt.Errorf("age must be between 1 and 130")
	}
	if !model.ValidGender(in.Gender) {
		return model.Profile{}, fmt.Errorf("invalid gender %q (use male or female)", in.Gender)
	}
	if !model.ValidActivityLevel(in.ActivityLevel) {
		return model.Profile{}, fmt.Errorf("invalid activity level %q", in.ActivityLevel)
	}

	existing, err := loadProfile(s)
	if err != nil {
		return model.Profile{}, err
	}

	p := model.Profile{
		Name:          in.Name,
		Avatar:        existing.Avatar,
		Weight:        in.WeightKg,
		Height:        in.HeightCm,
		Age:           in.Age,
		Gender:        in.Gender,
		ActivityLevel: in.ActivityLevel,
	}
	tdee, err := energy.TDEE(p)
	if err != nil {
		return model.Profile{}, err
	}
	p.TMB = tdee

	if err := saveProfile(s, p); err != nil {
		return model.Profile{}, err
	}
	return p, nil
}

// SaveAvatar persists the avatar image through the gateway and records its
// handle on the profile. A replaced avatar is cleaned up best effort.
func SaveAvatar(s vault.Store, image []byte) (string, error) {
	if len(image) == 0 {
		return "", fmt.Errorf("avatar image is empty")
	}
	p, err := loadProfile(s)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("avatar_%d.png", time.Now().UnixNano())
	handle, err := s.StoreBinaryResource(image, name)
	if err != nil {
		return "", err
	}

	old := p.Avatar
	p.Avatar = handle
	if err := saveProfile(s, p); err != nil {
		_ = s.DeleteResource(handle)
		return "", err
	}
	if old != "" && old != handle {
		_ = s.DeleteResource(old)
	}
	return handle, nil
}
