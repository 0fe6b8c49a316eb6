// Package catalog owns the in-memory record collection, the current
// search term and sort spec, and the derived visible view. Every
// mutation runs through the validation engine, persists the full
// collection, and synchronously recomputes the view.
package catalog

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"shelfkeeper/internal/common"
	"shelfkeeper/internal/logging"
	"shelfkeeper/internal/models"
	"shelfkeeper/internal/storage"
	"shelfkeeper/internal/validation"
)

// DefaultSort is the ordering used before the user picks one.
var DefaultSort = models.SortSpec{Field: FieldDateAdded, Direction: models.SortDesc}

// ValidationError reports per-field failures of a rejected mutation.
// The record collection is unchanged when it is returned.
type ValidationError struct {
	Fields map[string]validation.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("record validation failed (%d field(s))", len(e.Fields))
}

// Catalog is the explicit state object for one user's library. It is not
// safe for concurrent use; the application drives it from a single
// goroutine.
type Catalog struct {
	store *storage.Slots
	log   logging.Logger

	records  []models.Record
	term     string
	useRegex bool
	sortSpec models.SortSpec
	view     []models.Record

	// test seams
	now   func() time.Time
	newID func() string
}

// New loads the persisted collection and computes the initial view.
func New(ctx context.Context, store *storage.Slots, log logging.Logger) (*Catalog, error) {
	if log == nil {
		log = logging.NopLogger{}
	}

	records, err := store.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	c := &Catalog{
		store:    store,
		log:      log,
		records:  records,
		sortSpec: DefaultSort,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	c.applyFiltersAndSort()
	return c, nil
}

// Reload re-reads the persisted collection, keeping the current search
// and sort. Used after the underlying store is replaced wholesale.
func (c *Catalog) Reload(ctx context.Context) error {
	records, err := c.store.Records(ctx)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}
	c.records = records
	c.applyFiltersAndSort()
	return nil
}

// View returns the current filtered, sorted view.
func (c *Catalog) View() []models.Record { return c.view }

// Records returns the full collection regardless of the current view.
func (c *Catalog) Records() []models.Record { return c.records }

// SearchTerm returns the active search term.
func (c *Catalog) SearchTerm() string { return c.term }

// Sort returns the active sort spec.
func (c *Catalog) Sort() models.SortSpec { return c.sortSpec }

// Get returns the record with the given id, or common.ErrNotFound.
func (c *Catalog) Get(id string) (*models.Record, error) {
	for i := range c.records {
		if c.records[i].ID == id {
			rec := c.records[i]
			return &rec, nil
		}
	}
	return nil, common.ErrNotFound
}

// AddRecord validates in, appends a new record with a fresh id and
// timestamps, persists, and recomputes the view. Warnings accompany a
// successful result and never block the write.
func (c *Catalog) AddRecord(ctx context.Context, in validation.RecordInput) (*models.Record, map[string]string, error) {
	res := validation.ValidateRecord(in)
	if !res.Valid {
		return nil, nil, &ValidationError{Fields: res.Errors}
	}

	pages, _ := strconv.Atoi(in.Pages)
	ts := c.now().UTC()
	rec := models.Record{
		ID:        c.newID(),
		Title:     in.Title,
		Author:    in.Author,
		Pages:     pages,
		Tag:       in.Tag,
		DateAdded: in.DateAdded,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	c.records = append(c.records, rec)
	if err := c.persist(ctx); err != nil {
		return nil, nil, err
	}
	c.applyFiltersAndSort()

	c.log.Info(ctx, "record added", "id", rec.ID, "title", rec.Title)
	return &rec, res.Warnings, nil
}

// UpdateRecord validates in and replaces the record with the given id,
// preserving its id and creation timestamp. Returns common.ErrNotFound
// when the id is absent.
func (c *Catalog) UpdateRecord(ctx context.Context, id string, in validation.RecordInput) (*models.Record, map[string]string, error) {
	res := validation.ValidateRecord(in)
	if !res.Valid {
		return nil, nil, &ValidationError{Fields: res.Errors}
	}

	idx := c.indexOf(id)
	if idx < 0 {
		return nil, nil, common.ErrNotFound
	}

	pages, _ := strconv.Atoi(in.Pages)
	rec := c.records[idx]
	rec.Title = in.Title
	rec.Author = in.Author
	rec.Pages = pages
	rec.Tag = in.Tag
	rec.DateAdded = in.DateAdded
	rec.UpdatedAt = c.now().UTC()
	c.records[idx] = rec

	if err := c.persist(ctx); err != nil {
		return nil, nil, err
	}
	c.applyFiltersAndSort()

	c.log.Info(ctx, "record updated", "id", rec.ID)
	return &rec, res.Warnings, nil
}

// DeleteRecord removes the record immediately and permanently.
func (c *Catalog) DeleteRecord(ctx context.Context, id string) error {
	idx := c.indexOf(id)
	if idx < 0 {
		return common.ErrNotFound
	}

	c.records = append(c.records[:idx], c.records[idx+1:]...)
	if err := c.persist(ctx); err != nil {
		return err
	}
	c.applyFiltersAndSort()

	c.log.Info(ctx, "record deleted", "id", id)
	return nil
}

func (c *Catalog) indexOf(id string) int {
	for i := range c.records {
		if c.records[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Catalog) persist(ctx context.Context) error {
	if err := c.store.SaveRecords(ctx, c.records); err != nil {
		return fmt.Errorf("failed to persist records: %w", err)
	}
	return nil
}
