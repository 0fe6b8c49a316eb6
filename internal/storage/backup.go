package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shelfkeeper/internal/models"
)

// now is a test seam for timestamps.
var now = time.Now

// Backup is the administrative whole-store snapshot. Absent sections
// (nil Users/Records, nil Settings) are skipped on import.
type Backup struct {
	Users      []models.User    `json:"users"`
	Records    []models.Record  `json:"records"`
	Settings   *models.Settings `json:"settings,omitempty"`
	ExportedAt time.Time        `json:"exportedAt"`
}

// ExportAll snapshots every slot.
func (s *Slots) ExportAll(ctx context.Context) (*Backup, error) {
	users, err := s.Users(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.Settings(ctx)
	if err != nil {
		return nil, err
	}
	return &Backup{
		Users:      users,
		Records:    records,
		Settings:   &settings,
		ExportedAt: now().UTC(),
	}, nil
}

// ImportAll restores a snapshot. Unlike per-record catalog import this is
// all-or-nothing: every entry is structurally checked up front and the
// first defect fails the whole operation before anything is written.
// Backends that support batched writes commit all slots in one
// transaction.
func (s *Slots) ImportAll(ctx context.Context, b *Backup) error {
	if b == nil {
		return fmt.Errorf("invalid backup: expected an object")
	}

	for i, u := range b.Users {
		if u.ID == "" || u.Username == "" || u.Email == "" || u.Password == "" {
			return fmt.Errorf("invalid user at index %d: missing required fields", i)
		}
	}
	for i, r := range b.Records {
		if r.Title == "" || r.Author == "" || r.Tag == "" || r.DateAdded == "" {
			return fmt.Errorf("invalid record at index %d: missing required fields (title, author, pages, tag, dateAdded)", i)
		}
	}

	slots := make(map[string][]byte)
	if b.Users != nil {
		if err := marshalInto(slots, KeyUsers, b.Users); err != nil {
			return err
		}
	}
	if b.Records != nil {
		if err := marshalInto(slots, KeyRecords, b.Records); err != nil {
			return err
		}
	}
	if b.Settings != nil {
		if err := marshalInto(slots, KeySettings, *b.Settings); err != nil {
			return err
		}
	}
	if len(slots) == 0 {
		return nil
	}

	if batch, ok := s.store.(BatchStore); ok {
		if err := batch.SetMany(ctx, slots); err != nil {
			s.log.Error(ctx, "backup restore failed", "error", err)
			return err
		}
		return nil
	}
	for key, value := range slots {
		if err := s.store.Set(ctx, key, value); err != nil {
			s.log.Error(ctx, "backup restore failed", "key", key, "error", err)
			return err
		}
	}
	return nil
}

func marshalInto(slots map[string][]byte, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode slot %q: %w", key, err)
	}
	slots[key] = data
	return nil
}
