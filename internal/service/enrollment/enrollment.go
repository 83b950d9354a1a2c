// Package enrollment holds the enrollment records of the device and the
// lesson-completion progress derived from them. Operations are scoped to the
// current authenticated student and silently no-op when anonymous.
package enrollment

import (
	"encoding/json"
	"math"
	"sync"
	"time"

	"github.com/Dhaneyl/course-platform/internal/models"
	"github.com/Dhaneyl/course-platform/internal/storage/localstore"
	"github.com/Dhaneyl/course-platform/pkg/logger"

	"github.com/google/uuid"
)

type courseResolver interface {
	ByID(id string) (*models.Course, error)
}

type sessionStore interface {
	Current() *models.Student
}

type Store struct {
	log     logger.Log
	store   *localstore.Store
	catalog courseResolver
	session sessionStore

	mu          sync.Mutex
	enrollments []models.Enrollment
}

// New loads the persisted enrollment collection. A corrupt stored value is
// cleared and the collection starts empty.
func New(log logger.Log, store *localstore.Store, catalog courseResolver, session sessionStore) *Store {
	s := &Store{
		log:         log,
		store:       store,
		catalog:     catalog,
		session:     session,
		enrollments: []models.Enrollment{},
	}

	if raw, ok := store.Get(localstore.KeyEnrollments); ok {
		var enrollments []models.Enrollment
		if err := json.Unmarshal(raw, &enrollments); err != nil {
			log.Warn("discarding corrupt enrollments")
			if err := store.Remove(localstore.KeyEnrollments); err != nil {
				log.ErrorErr("failed to clear enrollments", err)
			}
		} else {
			s.enrollments = enrollments
		}
	}

	return s
}

// Enroll creates an enrollment for the current student. Enrolling twice in
// the same course, anonymously, or in an unknown course is a no-op.
func (s *Store) Enroll(courseID string) error {
	student := s.session.Current()
	if student == nil {
		return nil
	}
	if _, err := s.catalog.ByID(courseID); err != nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(courseID, student.ID) != nil {
		return nil
	}

	s.enrollments = append(s.enrollments, models.Enrollment{
		ID:               "enrollment-" + uuid.NewString(),
		CourseID:         courseID,
		StudentID:        student.ID,
		Progress:         0,
		CompletedLessons: []string{},
		EnrolledAt:       time.Now().UTC(),
		CompletedAt:      nil,
	})
	return s.persist()
}

func (s *Store) IsEnrolled(courseID string) bool {
	_, ok := s.Get(courseID)
	return ok
}

// Get returns a copy of the current student's enrollment for the course.
func (s *Store) Get(courseID string) (*models.Enrollment, bool) {
	student := s.session.Current()
	if student == nil {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.find(courseID, student.ID)
	if e == nil {
		return nil, false
	}
	out := *e
	out.CompletedLessons = append([]string(nil), e.CompletedLessons...)
	return &out, true
}

// CompleteLesson records a completed lesson and recomputes progress. No-op
// when anonymous, not enrolled, the lesson is already completed, or the
// course cannot be resolved.
func (s *Store) CompleteLesson(courseID, lessonID string) error {
	student := s.session.Current()
	if student == nil {
		return nil
	}
	course, err := s.catalog.ByID(courseID)
	if err != nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.find(courseID, student.ID)
	if e == nil {
		return nil
	}
	if e.HasCompleted(lessonID) {
		return nil
	}

	e.CompletedLessons = append(e.CompletedLessons, lessonID)
	e.Progress = progressOf(len(e.CompletedLessons), course.LessonsCount)
	if e.Progress == 100 {
		now := time.Now().UTC()
		e.CompletedAt = &now
	} else {
		e.CompletedAt = nil
	}

	return s.persist()
}

// Progress returns the current student's progress for the course, 0 when not
// enrolled.
func (s *Store) Progress(courseID string) int {
	e, ok := s.Get(courseID)
	if !ok {
		return 0
	}
	return e.Progress
}

// ForStudent lists the current student's enrollments in creation order.
func (s *Store) ForStudent() []models.Enrollment {
	student := s.session.Current()
	if student == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Enrollment
	for i := range s.enrollments {
		if s.enrollments[i].StudentID == student.ID {
			e := s.enrollments[i]
			e.CompletedLessons = append([]string(nil), s.enrollments[i].CompletedLessons...)
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) find(courseID, studentID string) *models.Enrollment {
	for i := range s.enrollments {
		if s.enrollments[i].CourseID == courseID && s.enrollments[i].StudentID == studentID {
			return &s.enrollments[i]
		}
	}
	return nil
}

func (s *Store) persist() error {
	raw, err := json.Marshal(s.enrollments)
	if err != nil {
		return err
	}
	return s.store.Set(localstore.KeyEnrollments, raw)
}

func progressOf(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
