package service_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/helpmefast/fastvault/internal/model"
	"github.com/helpmefast/fastvault/internal/service"
)

func TestExportFastsCSV(t *testing.T) {
	t.Parallel()
	s := newTestVault(t)
	defer s.Close()
	setupProfile(t, s)

	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	if _, err := service.StartFast(s, 16, start); err != nil {
		t.Fatalf("start fast: %v", err)
	}
	entry, err := service.EndFast(s, start.Add(16*time.Hour))
	if err != nil {
		t.Fatalf("end fast: %v", err)
	}

	var buf bytes.Buffer
	if err := service.ExportFastsCSV(s, &buf); err != nil {
		t.Fatalf("export fasts: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse exported csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one row, got %d rows", len(rows))
	}
	if rows[0][0] != "id" || rows[0][3] != "duration_seconds" {
		t.Fatalf("unexpected header %v", rows[0])
	}
	if rows[1][0] != entry.ID || rows[1][3] != "57600" {
		t.Fatalf("unexpected row %v", rows[1])
	}
	if rows[1][1] != start.Format(time.RFC3339) {
		t.Fatalf("expected RFC3339 start time, got %q", rows[1][1])
	}
}

func TestExportProgressCSV(t *testing.T) {
	t.Parallel()
	s := newTestVault(t)
	defer s.Close()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	if _, err := service.AddProgressEntry(s, service.ProgressEntryInput{Date: "2026-03-09", Weight: floatPtr(81)}, now); err != nil {
		t.Fatalf("add entry: %v", err)
	}
	if _, err := service.AddProgressEntry(s, service.ProgressEntryInput{Date: "2026-03-10", Note: "photo day", Photo: []byte("img")}, now); err != nil {
		t.Fatalf("add entry: %v", err)
	}

	var buf bytes.Buffer
	if err := service.ExportProgressCSV(s, &buf); err != nil {
		t.Fatalf("export progress: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse exported csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus two rows, got %d", len(rows))
	}
	// Ledger order: newest date first.
	if rows[1][1] != "2026-03-10" || rows[2][1] != "2026-03-09" {
		t.Fatalf("unexpected date order: %v / %v", rows[1], rows[2])
	}
	if rows[1][3] != "" || rows[2][3] != "81.00" {
		t.Fatalf("unexpected weight columns: %v / %v", rows[1], rows[2])
	}
	if rows[1][5] != "photo day" {
		t.Fatalf("expected note in last column, got %v", rows[1])
	}
}

func TestExportHistoryJSON(t *testing.T) {
	t.Parallel()
	s := newTestVault(t)
	defer s.Close()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	if _, err := service.AddProgressEntry(s, service.ProgressEntryInput{Date: "2026-03-10", Weight: floatPtr(80)}, now); err != nil {
		t.Fatalf("add entry: %v", err)
	}

	var buf bytes.Buffer
	if err := service.ExportHistoryJSON(s, &buf); err != nil {
		t.Fatalf("export history: %v", err)
	}
	var h model.History
	if err := json.Unmarshal(buf.Bytes(), &h); err != nil {
		t.Fatalf("parse exported history: %v", err)
	}
	if len(h.ProgressEntries) != 1 || h.ProgressEntries[0].Date != "2026-03-10" {
		t.Fatalf("unexpected exported history: %+v", h)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Fatalf("expected indented output")
	}
}
