// Package session tracks the current authenticated student. Authentication
// is simulated: login succeeds for any credentials after a fixed delay, the
// identity is persisted to the device store and removed on logout.
package session

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/Dhaneyl/course-platform/internal/models"
	"github.com/Dhaneyl/course-platform/internal/storage/localstore"
	"github.com/Dhaneyl/course-platform/pkg/logger"

	"github.com/google/uuid"
)

// DemoEmail is the seeded account returning a fixed identity.
const DemoEmail = "demo@example.com"

var demoStudent = models.Student{
	ID:          "student-demo",
	Name:        "Demo User",
	Email:       DemoEmail,
	Avatar:      "https://api.dicebear.com/7.x/avataaars/svg?seed=demo",
	Enrollments: []string{},
	Favorites:   []string{},
}

type Store struct {
	log   logger.Log
	store *localstore.Store
	delay time.Duration

	mu      sync.Mutex
	current *models.Student
	loading bool
}

// New loads any persisted identity. A corrupt stored value is discarded and
// the session starts anonymous. The loading flag resolves before New returns.
func New(log logger.Log, store *localstore.Store, delay time.Duration) *Store {
	s := &Store{
		log:     log,
		store:   store,
		delay:   delay,
		loading: true,
	}

	if raw, ok := store.Get(localstore.KeyAuth); ok {
		var student models.Student
		if err := json.Unmarshal(raw, &student); err != nil {
			log.Warn("discarding corrupt auth identity")
			if err := store.Remove(localstore.KeyAuth); err != nil {
				log.ErrorErr("failed to clear auth identity", err)
			}
		} else {
			s.current = &student
		}
	}

	s.loading = false
	return s
}

// Login simulates the network round trip, then authenticates unconditionally:
// the demo account returns its fixed identity, any other email synthesizes a
// new student derived from it. Returns false only if ctx is cancelled while
// the simulated call is in flight.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	if !s.wait(ctx) {
		return false
	}

	var student models.Student
	if email == DemoEmail {
		student = demoStudent
	} else {
		student = newStudent(localPart(email), email)
	}

	s.setCurrent(&student)
	return true
}

// Register simulates the network round trip, then creates a new student from
// the supplied name and email.
func (s *Store) Register(ctx context.Context, name, email, password string) bool {
	if !s.wait(ctx) {
		return false
	}

	student := newStudent(name, email)
	s.setCurrent(&student)
	return true
}

// Logout transitions to anonymous unconditionally.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.store.Remove(localstore.KeyAuth); err != nil {
		s.log.ErrorErr("failed to remove auth identity", err)
	}
}

// Current returns a copy of the authenticated student, or nil when anonymous.
func (s *Store) Current() *models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	student := *s.current
	return &student
}

func (s *Store) IsAuthenticated() bool {
	return s.Current() != nil
}

// IsLoading reports whether the initial storage read is still pending. It is
// permanently false once New returns; kept for the loading-state contract.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store) wait(ctx context.Context) bool {
	if s.delay <= 0 {
		return true
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (s *Store) setCurrent(student *models.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = student

	raw, err := json.Marshal(student)
	if err != nil {
		s.log.ErrorErr("failed to marshal auth identity", err)
		return
	}
	if err := s.store.Set(localstore.KeyAuth, raw); err != nil {
		s.log.ErrorErr("failed to persist auth identity", err)
	}
}

func newStudent(name, email string) models.Student {
	return models.Student{
		ID:          "student-" + uuid.NewString(),
		Name:        name,
		Email:       email,
		Avatar:      "https://api.dicebear.com/7.x/avataaars/svg?seed=" + email,
		Enrollments: []string{},
		Favorites:   []string{},
	}
}

func localPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}
