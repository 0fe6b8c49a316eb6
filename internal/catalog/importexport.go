package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"shelfkeeper/internal/models"
	"shelfkeeper/internal/validation"
)

// ExportFile is the record export envelope.
type ExportFile struct {
	Records    []models.Record `json:"records"`
	ExportedAt time.Time       `json:"exportedAt"`
	Total      int             `json:"total"`
}

// Export returns the full collection, independent of the current search
// and sort, with an export timestamp and total count.
func (c *Catalog) Export() *ExportFile {
	records := make([]models.Record, len(c.records))
	copy(records, c.records)
	return &ExportFile{
		Records:    records,
		ExportedAt: c.now().UTC(),
		Total:      len(records),
	}
}

// PageValue holds a page count that may arrive as a JSON number or
// string. Validation runs on the string form either way.
type PageValue string

func (p *PageValue) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*p = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*p = PageValue(v)
		return nil
	}
	*p = PageValue(s)
	return nil
}

// ImportCandidate is one unvalidated record from an import file. ID and
// CreatedAt are optional; missing values are generated at import time.
type ImportCandidate struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Pages     PageValue `json:"pages"`
	Tag       string    `json:"tag"`
	DateAdded string    `json:"dateAdded"`
	CreatedAt time.Time `json:"createdAt"`
}

// ParseExport decodes an import payload: either the ExportFile envelope
// or, for backward compatibility, a bare array of records.
func ParseExport(data []byte) ([]ImportCandidate, error) {
	var envelope struct {
		Records []ImportCandidate `json:"records"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Records != nil {
		return envelope.Records, nil
	}

	var bare []ImportCandidate
	if err := json.Unmarshal(data, &bare); err != nil {
		return nil, fmt.Errorf("unrecognized import format: %w", err)
	}
	return bare, nil
}

// ImportError reports why one candidate was skipped.
type ImportError struct {
	Index  int                              `json:"index"`
	Errors map[string]validation.FieldError `json:"errors"`
}

// ImportReport summarizes an import run.
type ImportReport struct {
	Success  bool          `json:"success"`
	Imported int           `json:"imported"`
	Errors   []ImportError `json:"errors"`
}

// ImportRecords validates every candidate independently, skipping and
// reporting invalid ones, and REPLACES the entire collection with the
// valid imports when there is at least one. Success means at least one
// record was imported.
func (c *Catalog) ImportRecords(ctx context.Context, candidates []ImportCandidate) (*ImportReport, error) {
	var valid []models.Record
	var importErrors []ImportError

	ts := c.now().UTC()
	for i, cand := range candidates {
		res := validation.ValidateRecord(validation.RecordInput{
			Title:     cand.Title,
			Author:    cand.Author,
			Pages:     string(cand.Pages),
			Tag:       cand.Tag,
			DateAdded: cand.DateAdded,
		})
		if !res.Valid {
			importErrors = append(importErrors, ImportError{Index: i, Errors: res.Errors})
			continue
		}

		pages, _ := strconv.Atoi(string(cand.Pages))
		rec := models.Record{
			ID:        cand.ID,
			Title:     cand.Title,
			Author:    cand.Author,
			Pages:     pages,
			Tag:       cand.Tag,
			DateAdded: cand.DateAdded,
			CreatedAt: cand.CreatedAt,
			UpdatedAt: ts,
		}
		if rec.ID == "" {
			rec.ID = c.newID()
		}
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = ts
		}
		valid = append(valid, rec)
	}

	if len(valid) > 0 {
		c.records = valid
		if err := c.persist(ctx); err != nil {
			return nil, err
		}
		c.applyFiltersAndSort()
		c.log.Info(ctx, "records imported", "imported", len(valid), "skipped", len(importErrors))
	}

	return &ImportReport{
		Success:  len(valid) > 0,
		Imported: len(valid),
		Errors:   importErrors,
	}, nil
}
