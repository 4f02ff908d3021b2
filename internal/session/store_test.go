package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinmind/internal/eventbus"
)

func TestCreateAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewStore(path, nil)

	assert.False(t, s.Active(), "New store should have no session")
	_, err := s.Token()
	assert.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, s.Create("tok-1", 0))
	assert.Equal(t, "tok-1", s.AccessToken())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "Session file must be private")
}

func TestExpiredSessionIsRemoved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	bus := eventbus.New()
	defer bus.Close()

	deleted := make(chan eventbus.SessionDeletedEvent, 1)
	bus.Subscribe(eventbus.EventSessionDeleted, func(e eventbus.DomainEvent) {
		deleted <- e.(eventbus.SessionDeletedEvent)
	})

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore(path, bus)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Create("tok", time.Minute))
	assert.True(t, s.Active())

	now = now.Add(DefaultLifetime)
	assert.Equal(t, "", s.AccessToken(), "Expired token should not be returned")
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "Expired session file should be deleted")

	select {
	case ev := <-deleted:
		assert.True(t, ev.Expired)
	case <-time.After(time.Second):
		t.Fatal("SessionDeleted event was not published")
	}
}

func TestCorruptSessionIsDiscarded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	s := NewStore(path, nil)
	_, err := s.Token()
	assert.ErrorIs(t, err, ErrNoSession)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "session.json"), nil)
	require.NoError(t, s.Create("tok", time.Hour))
	require.NoError(t, s.Delete())
	require.NoError(t, s.Delete(), "Deleting twice should not fail")
	assert.False(t, s.Active())
}

func TestCreateRejectsEmptyToken(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "session.json"), nil)
	assert.Error(t, s.Create("", time.Hour))
}
