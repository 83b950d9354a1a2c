// Package favorites keeps the device-level set of bookmarked course ids.
// The set is shared by every identity on the device and persisted in full
// after each mutation.
package favorites

import (
	"encoding/json"
	"sync"

	"github.com/Dhaneyl/course-platform/internal/storage/localstore"
	"github.com/Dhaneyl/course-platform/pkg/logger"
)

type Store struct {
	log   logger.Log
	store *localstore.Store

	mu  sync.Mutex
	ids []string
}

// New loads the persisted set. A corrupt stored value is cleared and the set
// starts empty.
func New(log logger.Log, store *localstore.Store) *Store {
	s := &Store{
		log:   log,
		store: store,
		ids:   []string{},
	}

	if raw, ok := store.Get(localstore.KeyFavorites); ok {
		var ids []string
		if err := json.Unmarshal(raw, &ids); err != nil {
			log.Warn("discarding corrupt favorites")
			if err := store.Remove(localstore.KeyFavorites); err != nil {
				log.ErrorErr("failed to clear favorites", err)
			}
		} else {
			s.ids = ids
		}
	}

	return s
}

// List returns the favorite course ids in insertion order.
func (s *Store) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Add is idempotent: adding a present id changes nothing.
func (s *Store) Add(courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.contains(courseID) {
		return nil
	}
	s.ids = append(s.ids, courseID)
	return s.persist()
}

func (s *Store) Remove(courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.contains(courseID) {
		return nil
	}
	out := s.ids[:0]
	for _, id := range s.ids {
		if id != courseID {
			out = append(out, id)
		}
	}
	s.ids = out
	return s.persist()
}

// Toggle flips membership and reports the resulting state.
func (s *Store) Toggle(courseID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.contains(courseID) {
		out := s.ids[:0]
		for _, id := range s.ids {
			if id != courseID {
				out = append(out, id)
			}
		}
		s.ids = out
		return false, s.persist()
	}

	s.ids = append(s.ids, courseID)
	return true, s.persist()
}

func (s *Store) IsFavorite(courseID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contains(courseID)
}

func (s *Store) contains(courseID string) bool {
	for _, id := range s.ids {
		if id == courseID {
			return true
		}
	}
	return false
}

func (s *Store) persist() error {
	raw, err := json.Marshal(s.ids)
	if err != nil {
		return err
	}
	return s.store.Set(localstore.KeyFavorites, raw)
}
