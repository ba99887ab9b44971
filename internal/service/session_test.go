package service_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/helpmefast/fastvault/internal/fast"
	"github.com/helpmefast/fastvault/internal/model"
	"github.com/helpmefast/fastvault/internal/service"
	"github.com/helpmefast/fastvault/internal/vault"
)

var t0 = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func setupProfile(t *testing.T, s vault.Store) model.Profile {
	t.Helper()
	p, err := service.SaveProfile(s, service.ProfileInput{
		Name:          "Sam",
		WeightKg:      80,
		HeightCm:      180,
		Age:           30,
		Gender:        model.GenderMale,
		ActivityLevel: model.ActivityModerate,
	})
	if err != nil {
		t.Fatalf("save profile: %v", err)
	}
	return p
}

func TestStartEndRoundTrip(t *testing.T) {
	t.Parallel()
	s := newTestVault(t)
	defer s.Close()
	profile := setupProfile(t, s)

	sess, err := service.StartFast(s, 16, t0)
	if err != nil {
		t.Fatalf("start fast: %v", err)
	}
	if !sess.Active || sess.TargetHours != 16 {
		t.Fatalf("unexpected session %+v", sess)
	}

	t1 := t0.Add(16 * time.Hour)
	entry, err := service.EndFast(s, t1)
	if err != nil {
		t.Fatalf("end fast: %v", err)
	}
	if entry.ID == "" {
		t.Fatalf("expected a generated entry id")
	}
	if entry.Duration != 16*3600 {
		t.Fatalf("expected duration %d, got %d", 16*3600, entry.Duration)
	}
	wantLoss := profile.TMB / 86400 * float64(entry.Duration) / 7700
	if math.Abs(entry.WeightLoss-wantLoss) > 1e-9 {
		t.Fatalf("expected weight loss %v, got %v", wantLoss, entry.WeightLoss)
	}

	fasts, err := service.ListFasts(s)
	if err != nil {
		t.Fatalf("list fasts: %v", err)
	}
	if len(fasts) != 1 || fasts[0].ID != entry.ID {
		t.Fatalf("expected the fast in history, got %+v", fasts)
	}

	// Back to idle, durably.
	restored, err := service.ActiveFast(s)
	if err != nil {
		t.Fatalf("restore session: %v", err)
	}
	if restored.Active {
		t.Fatalf("expected idle session after end")
	}
}

func TestStartRejectedWhileActive(t *testing.T) {
	t.Parallel()
	s := newTestVault(t)
	defer s.Close()

	if _, err := service.StartFast(s, 16, t0); err != nil {
		t.Fatalf("start fast: %v", err)
	}
	if _, err := service.StartFast(s, 24, t0.Add(time.Hour)); !errors.Is(err, fast.ErrAlreadyActive) {
		t.Fatalf("expected ErrAlreadyActive, got %v", err)
	}

	// The persisted descriptor is unchanged.
	sess, err := service.ActiveFast(s)
	if err != nil {
		t.Fatalf("restore session: %v", err)
	}
	if sess.TargetHours != 16 || !sess.StartTime.Equal(t0) {
		t.Fatalf("rejected start must not change persisted state, got %+v", sess)
	}
}

func TestEndRejectedWhileIdle(t *testing.T) {
	t.Parallel()
	s := newTestVault(t)
	defer s.Close()

	if _, err := service.EndFast(s, t0); !errors.Is(err, fast.ErrNotActive) {
		t.Fatalf("expected ErrNotActive, got %v", err)
	}
	fasts, err := service.ListFasts(s)
	if err != nil {
		t.Fatalf("list fasts: %v", err)
	}
	if len(fasts) != 0 {
		t.Fatalf("rejected end must not append history, got %+v", fasts)
	}
}

func TestActiveFastSurvivesRestart(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	s, err := vault.OpenDir(root)
	if err != nil {
		t.Fatalf("open vault: %v", err)
	}
	if err := vault.Init(s, root); err != nil {
		t.Fatalf("init vault: %v", err)
	}
	if _, err := service.StartFast(s, 18, t0); err != nil {
		t.Fatalf("start fast: %v", err)
	}
	s.Close()

	// A fresh store over the same directory models a process restart.
	s2, err := vault.OpenDir(root)
	if err != nil {
		t.Fatalf("reopen vault: %v", err)
	}
	defer s2.Close()
	sess, err := service.ActiveFast(s2)
	if err != nil {
		t.Fatalf("restore session: %v", err)
	}
	if !sess.Active || sess.TargetHours != 18 || !sess.StartTime.Equal(t0) {
		t.Fatalf("expected restored active session, got %+v", sess)
	}
}

func TestCorruptActiveFastReadsAsIdle(t *testing.T) {
	t.Parallel()
	s := newTestVault(t)
	defer s.Close()

	// Marked active but missing its start time and goal.
	if err := s.WriteDocument(vault.DocActiveFast, []byte(`{"isActive":true}`)); err != nil {
		t.Fatalf("write descriptor: %v", err)
	}
	sess, err := service.ActiveFast(s)
	if err != nil {
		t.Fatalf("restore session: %v", err)
	}
	if sess.Active {
		t.Fatalf("expected corrupt descriptor to read as idle")
	}

	if err := s.WriteDocument(vault.DocActiveFast, []byte(`{not json`)); err != nil {
		t.Fatalf("write descriptor: %v", err)
	}
	if _, err := service.ActiveFast(s); err == nil {
		t.Fatalf("expected unparsable descriptor to surface an error")
	}
}

func TestFastStatusDerivation(t *testing.T) {
	t.Parallel()
	s := newTestVault(t)
	defer s.Close()
	profile := setupProfile(t, s)

	if _, err := service.StartFast(s, 16, t0); err != nil {
		t.Fatalf("start fast: %v", err)
	}

	at := t0.Add(17 * time.Hour)
	st, err := service.FastStatus(s, at)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !st.Active {
		t.Fatalf("expected active status")
	}
	if st.ElapsedSeconds != 17*3600 {
		t.Fatalf("expected 17h elapsed, got %d", st.ElapsedSeconds)
	}
	if st.RemainingSeconds != 0 || st.Progress != 1 {
		t.Fatalf("expected finished goal metrics, got remaining=%d progress=%v", st.RemainingSeconds, st.Progress)
	}
	if st.Phase.Name != "Fat Burning" {
		t.Fatalf("expected Fat Burning at 17h, got %s", st.Phase.Name)
	}
	if st.Message.Hours != 16 {
		t.Fatalf("expected the 16h message, got %+v", st.Message)
	}
	if st.Tip == nil {
		t.Fatalf("expected a rotating tip at 17h")
	}
	wantCalories := int(math.Round(profile.TMB / 86400 * 17 * 3600))
	if st.CaloriesBurned != wantCalories {
		t.Fatalf("expected %d kcal, got %d", wantCalories, st.CaloriesBurned)
	}

	// Derived values are recomputed, not stored: a later observation moves.
	st2, err := service.FastStatus(s, at.Add(time.Hour))
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st2.ElapsedSeconds != 18*3600 {
		t.Fatalf("expected 18h elapsed on re-observation, got %d", st2.ElapsedSeconds)
	}
}

func TestFastStatusIdle(t *testing.T) {
	t.Parallel()
	s := newTestVault(t)
	defer s.Close()

	st, err := service.FastStatus(s, t0)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.Active || st.ElapsedSeconds != 0 || st.Progress != 0 {
		t.Fatalf("expected idle status, got %+v", st)
	}
}
