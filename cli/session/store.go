package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/FM1201/aijohub/cli/api"
	"github.com/FM1201/aijohub/pkg/logger"
)

const sessionFile = "session.json"

// Session is the authenticated identity used to authorize API calls.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Store owns the single persisted session slot. There is no session
// multiplexing: saving a new session replaces the previous one.
type Store struct {
	path string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, sessionFile)}
}

// Restore reads the persisted session, if any. No backend validation
// happens here; an expired token simply fails on first use.
func (s *Store) Restore() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	if sess.Token == "" {
		return nil, nil
	}
	return &sess, nil
}

// Login authenticates against the backend and persists the resulting
// session. Nothing is persisted on failure.
func (s *Store) Login(ctx context.Context, client *api.Client, username, password string) (*Session, error) {
	token, err := client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	sess := &Session{Token: token, Username: username}
	if err := s.save(sess); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("session persisted", "username", username)
	return sess, nil
}

// Logout clears the persisted session. A missing session is not an error.
func (s *Store) Logout() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *Store) save(sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}
