package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/helpmefast/fastvault/internal/vault"
)

// ExportHistoryJSON writes the full history document, pretty-printed.
func ExportHistoryJSON(s vault.Store, w io.Writer) error {
	h, err := loadHistory(s)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(h); err != nil {
		return fmt.Errorf("encode history export: %w", err)
	}
	return nil
}

// ExportFastsCSV writes completed fasts as CSV.
func ExportFastsCSV(s vault.Store, w io.Writer) error {
	fasts, err := ListFasts(s)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "start_time", "end_time", "duration_seconds", "weight_loss_kg"}); err != nil {
		return fmt.Errorf("write fasts csv header: %w", err)
	}
	for _, f := range fasts {
		row := []string{
			f.ID,
			f.StartTime.Format(time.RFC3339),
			f.EndTime.Format(time.RFC3339),
			strconv.FormatInt(f.Duration, 10),
			strconv.FormatFloat(f.WeightLoss, 'f', 4, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write fasts csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportProgressCSV writes progress entries as CSV, in ledger order.
func ExportProgressCSV(s vault.Store, w io.Writer) error {
	entries, err := ListProgressEntries(s)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "date", "created_at", "weight_kg", "photo", "note"}); err != nil {
		return fmt.Errorf("write progress csv header: %w", err)
	}
	for _, e := range entries {
		weight := ""
		if e.Weight != nil {
			weight = strconv.FormatFloat(*e.Weight, 'f', 2, 64)
		}
		createdAt := ""
		if e.CreatedAt != nil {
			createdAt = e.CreatedAt.Format(time.RFC3339)
		}
		if err := cw.Write([]string{e.ID, e.Date, createdAt, weight, e.PhotoPath, e.Note}); err != nil {
			return fmt.Errorf("write progress csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
