package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	cblog "github.com/charmbracelet/log"

	"coinmind/internal/eventbus"
)

// DefaultLifetime applies when the backend does not report expires_in
const DefaultLifetime = 30 * time.Minute

// ErrNoSession is returned when no valid token is stored
var ErrNoSession = errors.New("no active session")

// record is the on-disk shape of the session file
type record struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Store keeps the bearer token in a file only the current user can read.
// It plays the role an httpOnly cookie plays for a browser.
type Store struct {
	mu   sync.Mutex
	path string
	bus  eventbus.EventBus
	now  func() time.Time
}

// NewStore creates a session store backed by path. bus may be nil.
func NewStore(path string, bus eventbus.EventBus) *Store {
	return &Store{path: path, bus: bus, now: time.Now}
}

// Create stores a new token. expiresIn <= 0 selects DefaultLifetime.
func (s *Store) Create(token string, expiresIn time.Duration) error {
	if token == "" {
		return fmt.Errorf("create session: empty token")
	}
	if expiresIn <= 0 {
		expiresIn = DefaultLifetime
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(record{AccessToken: token, ExpiresAt: s.now().Add(expiresIn)})
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.SessionCreatedEvent{ExpiresIn: int(expiresIn / time.Second)})
	}
	return nil
}

// AccessToken returns the stored token, or "" when there is none or it expired.
// Expired sessions are removed.
func (s *Store) AccessToken() string {
	token, err := s.Token()
	if err != nil {
		return ""
	}
	return token
}

// Token is AccessToken with the reason for a missing token
func (s *Store) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session file: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil || rec.AccessToken == "" {
		cblog.With("component", "session").Warn("Discarding unreadable session file", "path", s.path)
		s.removeLocked(false)
		return "", ErrNoSession
	}
	if !s.now().Before(rec.ExpiresAt) {
		s.removeLocked(true)
		return "", ErrNoSession
	}
	return rec.AccessToken, nil
}

// Active reports whether a non-expired token exists
func (s *Store) Active() bool {
	return s.AccessToken() != ""
}

// Delete removes the session. Deleting a missing session is not an error.
func (s *Store) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if s.bus != nil {
		s.bus.Publish(eventbus.SessionDeletedEvent{})
	}
	return nil
}

func (s *Store) removeLocked(expired bool) {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		cblog.With("component", "session").Error("Failed to remove session file", "err", err)
		return
	}
	if s.bus != nil {
		s.bus.Publish(eventbus.SessionDeletedEvent{Expired: expired})
	}
}
