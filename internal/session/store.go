// Package session persists the currently authenticated user as a single
// JSON record on disk. The record's presence is the only "logged in"
// signal; a save replaces it wholesale and an unreadable record counts as
// absent, never as an error.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/souqlabs/souq/pkg/domain"
)

// Store reads and writes the session record at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store bound to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns ~/.souq/session.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".souq", "session.json"), nil
}

// Save serializes and persists the full record, replacing any previous one.
func (s *Store) Save(user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session.Save: marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("session.Save: create dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("session.Save: write: %w", err)
	}
	return nil
}

// Load returns the persisted record, or ok=false when it was never saved
// or does not parse as a valid user.
func (s *Store) Load() (*domain.User, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, false
	}
	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, false
	}
	return &user, true
}

// Clear removes the persisted record. Clearing an absent record is not an
// error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session.Clear: %w", err)
	}
	return nil
}
