// Package localstore is the device key/value store backing favorites,
// session identity and enrollments. Values are raw JSON documents keyed by
// name, the whole map is kept in one file and rewritten on every Set.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Dhaneyl/course-platform/pkg/logger"
)

// Keys of the persisted collections, shared with the stores that own them.
const (
	KeyAuth        = "course-platform-auth"
	KeyFavorites   = "course-platform-favorites"
	KeyEnrollments = "course-platform-enrollments"
)

type Store struct {
	path string
	log  logger.Log

	mu   sync.Mutex
	data map[string]json.RawMessage
}

// Open loads the store file at path, creating parent directories as needed.
// A missing file yields an empty store. A corrupt file is discarded and
// replaced on the next write rather than reported as an error.
func Open(path string, log logger.Log) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	s := &Store{
		path: path,
		log:  log,
		data: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		log.Warn("store file is corrupt, reinitializing", "path", path)
		s.data = make(map[string]json.RawMessage)
	}

	return s, nil
}

// Get returns the raw value stored under key, or ok=false when absent.
func (s *Store) Get(key string) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.data[key]
	return v, ok
}

// Set stores value under key and synchronously rewrites the store file.
func (s *Store) Set(key string, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.flush()
}

// Remove deletes key and synchronously rewrites the store file. Removing an
// absent key is a no-op.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.flush()
}

func (s *Store) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return nil
}
