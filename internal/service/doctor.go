package service

import (
	"github.com/helpmefast/fastvault/internal/vault"
)

// DoctorCheck is the outcome of one integrity check. Err is empty on success.
type DoctorCheck struct {
	Name string
	Err  string
}

// DoctorReport summarizes vault integrity. MissingPhotos counts resource
// handles referenced by documents that the store can no longer serve.
type DoctorReport struct {
	Checks        []DoctorCheck
	MissingPhotos int
}

// Issues counts everything a check or photo scan flagged.
func (r DoctorReport) Issues() int {
	n := r.MissingPhotos
	for _, c := range r.Checks {
		if c.Err != "" {
			n++
		}
	}
	return n
}

// RunDoctor parses every vault document and verifies the resources they
// reference are still readable.
func RunDoctor(s vault.Store) (DoctorReport, error) {
	var report DoctorReport

	check := func(name string, err error) {
		c := DoctorCheck{Name: name}
		if err != nil {
			c.Err = err.Error()
		}
		report.Checks = append(report.Checks, c)
	}

	_, cfgErr := loadConfig(s)
	check(vault.DocConfig, cfgErr)
	profile, profErr := loadProfile(s)
	check(vault.DocProfile, profErr)
	history, histErr := loadHistory(s)
	check(vault.DocHistory, histErr)
	_, sessErr := loadSession(s)
	check(vault.DocActiveFast, sessErr)

	if histErr == nil {
		for _, e := range history.ProgressEntries {
			if e.PhotoPath == "" {
				continue
			}
			if _, err := s.ReadResource(e.PhotoPath); err != nil {
				report.MissingPhotos++
			}
		}
	}
	if profErr == nil && profile.Avatar != "" {
		if _, err := s.ReadResource(profile.Avatar); err != nil {
			report.MissingPhotos++
		}
	}
	return report, nil
}
