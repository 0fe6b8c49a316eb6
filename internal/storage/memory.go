package storage

import "context"

// MemoryStore is a map-backed Store used as a test double and for
// throwaway sessions. It copies values on the way in and out so callers
// cannot alias its internals.
type MemoryStore struct {
	slots map[string][]byte
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, ok := m.slots[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	in := make([]byte, len(value))
	copy(in, value)
	m.slots[key] = in
	return nil
}

func (m *MemoryStore) Remove(ctx context.Context, key string) error {
	delete(m.slots, key)
	return nil
}

func (m *MemoryStore) SetMany(ctx context.Context, values map[string][]byte) error {
	for key, value := range values {
		if err := m.Set(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}
