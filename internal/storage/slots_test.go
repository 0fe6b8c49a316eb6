package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelfkeeper/internal/models"
)

// failingStore always errors, for exercising failure surfacing.
type failingStore struct{ err error }

func (f failingStore) Get(ctx context.Context, key string) ([]byte, error) { return nil, f.err }
func (f failingStore) Set(ctx context.Context, key string, value []byte) error {
	return f.err
}
func (f failingStore) Remove(ctx context.Context, key string) error { return f.err }

func TestSlots_UsersEmptyWhenAbsent(t *testing.T) {
	s := NewSlots(NewMemoryStore(), nil)

	users, err := s.Users(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestSlots_UsersRoundTrip(t *testing.T) {
	s := NewSlots(NewMemoryStore(), nil)
	ctx := context.Background()

	in := []models.User{{ID: "u1", Username: "alice", Email: "a@x.com", Password: "Passw0rd"}}
	require.NoError(t, s.SaveUsers(ctx, in))

	out, err := s.Users(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("users mismatch (-want +got):\n%s", diff)
	}
}

func TestSlots_RecordsRoundTrip(t *testing.T) {
	s := NewSlots(NewMemoryStore(), nil)
	ctx := context.Background()

	in := []models.Record{{ID: "r1", Title: "Dune", Author: "Frank Herbert", Pages: 412, Tag: "Sci-Fi", DateAdded: "2024-01-15"}}
	require.NoError(t, s.SaveRecords(ctx, in))

	out, err := s.Records(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestSlots_SettingsDefaultWhenAbsent(t *testing.T) {
	s := NewSlots(NewMemoryStore(), nil)

	settings, err := s.Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestSlots_SettingsRoundTrip(t *testing.T) {
	s := NewSlots(NewMemoryStore(), nil)
	ctx := context.Background()

	in := models.Settings{Theme: "light", PageUnits: "pages"}
	require.NoError(t, s.SaveSettings(ctx, in))

	out, err := s.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSlots_SessionTokenLifecycle(t *testing.T) {
	s := NewSlots(NewMemoryStore(), nil)
	ctx := context.Background()

	token, err := s.SessionToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, s.SaveSessionToken(ctx, "tok123"))
	token, err = s.SessionToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)

	require.NoError(t, s.ClearSession(ctx))
	token, err = s.SessionToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestSlots_SessionKeyGeneratedOnce(t *testing.T) {
	s := NewSlots(NewMemoryStore(), nil)
	ctx := context.Background()

	k1, err := s.SessionKey(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, k1)

	k2, err := s.SessionKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, k1, k2)
}

func TestSlots_CorruptSlotSurfacesError(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, KeyRecords, []byte("{not json")))

	s := NewSlots(store, nil)
	_, err := s.Records(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode slot")
}

func TestSlots_ReadFailureSurfaced(t *testing.T) {
	boom := errors.New("boom")
	s := NewSlots(failingStore{err: boom}, nil)

	_, err := s.Users(context.Background())
	require.ErrorIs(t, err, boom)
}
