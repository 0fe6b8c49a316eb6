package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"shelfkeeper/internal/common"
	"shelfkeeper/internal/logging"
	"shelfkeeper/internal/models"
)

// sessionKeySize is the number of random bytes behind the session
// signing key.
const sessionKeySize = 32

// Slots is the typed JSON layer over a Store. An absent slot reads as an
// empty collection or the default settings; read and write failures are
// logged and surfaced as errors, never thrown further up.
type Slots struct {
	store Store
	log   logging.Logger
}

// NewSlots wraps a Store. A nil logger falls back to NopLogger.
func NewSlots(store Store, log logging.Logger) *Slots {
	if log == nil {
		log = logging.NopLogger{}
	}
	return &Slots{store: store, log: log}
}

// Store exposes the underlying Store for backends that need it.
func (s *Slots) Store() Store { return s.store }

func (s *Slots) getJSON(ctx context.Context, key string, out any) (bool, error) {
	data, err := s.store.Get(ctx, key)
	if err != nil {
		s.log.Error(ctx, "slot read failed", "key", key, "error", err)
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.log.Error(ctx, "slot holds corrupt data", "key", key, "error", err)
		return false, fmt.Errorf("failed to decode slot %q: %w", key, err)
	}
	return true, nil
}

func (s *Slots) setJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode slot %q: %w", key, err)
	}
	if err := s.store.Set(ctx, key, data); err != nil {
		s.log.Error(ctx, "slot write failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Users returns the stored user collection, empty when absent.
func (s *Slots) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if _, err := s.getJSON(ctx, KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SaveUsers replaces the whole user collection.
func (s *Slots) SaveUsers(ctx context.Context, users []models.User) error {
	return s.setJSON(ctx, KeyUsers, users)
}

// Records returns the stored record collection, empty when absent.
func (s *Slots) Records(ctx context.Context) ([]models.Record, error) {
	var records []models.Record
	if _, err := s.getJSON(ctx, KeyRecords, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SaveRecords replaces the whole record collection.
func (s *Slots) SaveRecords(ctx context.Context, records []models.Record) error {
	return s.setJSON(ctx, KeyRecords, records)
}

// SessionToken returns the persisted session token, "" when absent.
func (s *Slots) SessionToken(ctx context.Context) (string, error) {
	data, err := s.store.Get(ctx, KeySession)
	if err != nil {
		s.log.Error(ctx, "slot read failed", "key", KeySession, "error", err)
		return "", err
	}
	return string(data), nil
}

// SaveSessionToken persists the active session token.
func (s *Slots) SaveSessionToken(ctx context.Context, token string) error {
	if err := s.store.Set(ctx, KeySession, []byte(token)); err != nil {
		s.log.Error(ctx, "slot write failed", "key", KeySession, "error", err)
		return err
	}
	return nil
}

// ClearSession removes the active session.
func (s *Slots) ClearSession(ctx context.Context) error {
	return s.store.Remove(ctx, KeySession)
}

// Settings returns the stored settings, or the defaults when absent.
func (s *Slots) Settings(ctx context.Context) (models.Settings, error) {
	settings := models.DefaultSettings()
	if _, err := s.getJSON(ctx, KeySettings, &settings); err != nil {
		return models.DefaultSettings(), err
	}
	return settings, nil
}

// SaveSettings replaces the stored settings.
func (s *Slots) SaveSettings(ctx context.Context, settings models.Settings) error {
	return s.setJSON(ctx, KeySettings, settings)
}

// SessionKey returns the per-installation session signing key, creating
// and persisting it on first use.
func (s *Slots) SessionKey(ctx context.Context) ([]byte, error) {
	data, err := s.store.Get(ctx, KeySessionKey)
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		return data, nil
	}

	key, err := common.RandHexString(sessionKeySize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session key: %w", err)
	}
	if err := s.store.Set(ctx, KeySessionKey, []byte(key)); err != nil {
		return nil, err
	}
	s.log.Debug(ctx, "generated new session signing key")
	return []byte(key), nil
}
