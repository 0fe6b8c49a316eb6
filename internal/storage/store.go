// Package storage implements the durable slot store behind shelfkeeper:
// a small key/value interface with SQLite and in-memory backends, a typed
// JSON layer over the four well-known slots, and whole-store backup.
package storage

import "context"

// Slot keys. Every write replaces the slot's whole value; there are no
// partial updates.
const (
	KeyUsers      = "users"
	KeyRecords    = "records"
	KeySession    = "session"
	KeySettings   = "settings"
	KeySessionKey = "session_key"
)

// Store is the persistence collaborator. Get returns (nil, nil) for an
// absent key; failures come back as errors and never as panics.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// BatchStore is implemented by backends that can replace several slots
// atomically.
type BatchStore interface {
	Store
	SetMany(ctx context.Context, values map[string][]byte) error
}
