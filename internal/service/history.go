package service

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/helpmefast/fastvault/internal/model"
	"github.com/helpmefast/fastvault/internal/vault"
)

// ListFasts returns all completed fasts in the order they were recorded.
func ListFasts(s vault.Store) ([]model.FastEntry, error) {
	h, err := loadHistory(s)
	if err != nil {
		return nil, err
	}
	return h.Fasts, nil
}

// ProgressEntryInput describes a new progress entry. Weight is kg. Photo is
// the raw image; PhotoExt its file extension (".jpg" when empty).
type ProgressEntryInput struct {
	Date     string
	Weight   *float64
	Photo    []byte
	PhotoExt string
	Note     string
}

// AddProgressEntry validates the input, persists an attached photo through
// the gateway, inserts the entry in sorted position and rewrites the ledger.
func AddProgressEntry(s vault.Store, in ProgressEntryInput, now time.Time) (model.ProgressEntry, error) {
	date, err := parseEntryDate(in.Date, now)
	if err != nil {
		return model.ProgressEntry{}, err
	}
	if in.Weight == nil && len(in.Photo) == 0 {
		return model.ProgressEntry{}, fmt.Errorf("a progress entry needs a weight or a photo")
	}
	if in.Weight != nil && *in.Weight <= 0 {
		return model.ProgressEntry{}, fmt.Errorf("weight must be > 0")
	}

	entry := model.ProgressEntry{
		ID:        uuid.NewString(),
		Date:      date,
		CreatedAt: &now,
		Weight:    in.Weight,
		Note:      strings.TrimSpace(in.Note),
	}

	if len(in.Photo) > 0 {
		ext := in.PhotoExt
		if ext == "" {
			ext = ".jpg"
		}
		handle, err := s.StoreBinaryResource(in.Photo, "photo_"+entry.ID+ext)
		if err != nil {
			return model.ProgressEntry{}, err
		}
		entry.PhotoPath = handle
	}

	h, err := loadHistory(s)
	if err != nil {
		return model.ProgressEntry{}, err
	}
	h.ProgressEntries = append(h.ProgressEntries, entry)
	sortProgressEntries(h.ProgressEntries)

	if err := saveHistory(s, h); err != nil {
		// The ledger write failed; don't leave the photo orphaned.
		if entry.PhotoPath != "" {
			_ = s.DeleteResource(entry.PhotoPath)
		}
		return model.ProgressEntry{}, err
	}
	return entry, nil
}

// DeleteProgressEntry removes the entry with the given id. Deleting an
// unknown id is a no-op success. The ledger rewrite is authoritative; photo
// cleanup afterwards is best effort and never fails the deletion.
func DeleteProgressEntry(s vault.Store, id string) error {
	h, err := loadHistory(s)
	if err != nil {
		return err
	}

	var photoPath string
	kept := h.ProgressEntries[:0]
	for _, e := range h.ProgressEntries {
		if e.ID == id {
			photoPath = e.PhotoPath
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) == len(h.ProgressEntries) {
		return nil
	}
	h.ProgressEntries = kept

	if err := saveHistory(s, h); err != nil {
		return err
	}
	if photoPath != "" {
		_ = s.DeleteResource(photoPath)
	}
	return nil
}

// ListProgressEntries returns the ledger ordered by date descending, then
// creation time descending (missing creation times sort earliest).
func ListProgressEntries(s vault.Store) ([]model.ProgressEntry, error) {
	h, err := loadHistory(s)
	if err != nil {
		return nil, err
	}
	sortProgressEntries(h.ProgressEntries)
	return h.ProgressEntries, nil
}

// WeightSummary reports the chronologically earliest and latest recorded
// weights across the given (date-descending) entries.
type WeightSummary struct {
	Initial *float64
	Current *float64
}

func ProgressWeightSummary(entries []model.ProgressEntry) WeightSummary {
	var sum WeightSummary
	for _, e := range entries {
		if e.Weight == nil {
			continue
		}
		if sum.Current == nil {
			sum.Current = e.Weight
		}
		sum.Initial = e.Weight
	}
	return sum
}

func sortProgressEntries(entries []model.ProgressEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return createdAtOf(entries[i]).After(createdAtOf(entries[j]))
	})
}

func createdAtOf(e model.ProgressEntry) time.Time {
	if e.CreatedAt == nil {
		return time.Time{}
	}
	return *e.CreatedAt
}

// parseEntryDate validates a YYYY-MM-DD date and rejects dates after now.
func parseEntryDate(value string, now time.Time) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("date is required")
	}
	d, err := time.ParseInLocation("2006-01-02", value, now.Location())
	if err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	if d.After(now) {
		return "", fmt.Errorf("date %s is in the future", value)
	}
	return d.Format("2006-01-02"), nil
}

// PhotoExtFromName extracts a usable photo extension from a file name.
func PhotoExtFromName(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".png":
		return ".png"
	case ".jpeg", ".jpg":
		return ".jpg"
	default:
		return ".jpg"
	}
}
