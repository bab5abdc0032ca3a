// Package session reads the current API session token from the local
// key-value store the console writes after sign-in. The engine only ever
// reads it; an absent token is not an error here, it surfaces later as a
// failed downstream check or a refused run.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// TokenKey is the key the console stores the bearer token under
const TokenKey = "qa_session_token"

// DefaultPath returns the default store location under the user home
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".qascan", "session.json")
	}
	return filepath.Join(home, ".qascan", "session.json")
}

// Store is a file-backed key-value store holding session state
type Store struct {
	path string
}

// NewStore creates a store reading from the given path. An empty path
// falls back to the default location.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// Token returns the stored bearer token, or "" when the store or key is
// absent. Only malformed store content is reported as an error.
func (s *Store) Token() (string, error) {
	values, err := s.load()
	if err != nil {
		return "", err
	}
	return values[TokenKey], nil
}

// Get returns the value stored under key, or "" when absent
func (s *Store) Get(key string) (string, error) {
	values, err := s.load()
	if err != nil {
		return "", err
	}
	return values[key], nil
}

func (s *Store) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}

	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}
