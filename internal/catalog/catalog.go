// Package catalog holds the seeded course catalog. It is populated once at
// startup from the embedded templates and read-only for the lifetime of the
// process.
package catalog

import (
	"math/rand"
	"time"

	"github.com/Dhaneyl/course-platform/internal/app_errors"
	"github.com/Dhaneyl/course-platform/internal/models"
	"github.com/Dhaneyl/course-platform/pkg/logger"
)

type Service struct {
	log     logger.Log
	courses []models.Course
	byID    map[string]*models.Course
	bySlug  map[string]*models.Course
	reviews map[string][]models.Review
}

// New seeds the catalog. A zero seed falls back to the current time, so
// catalog numbers vary per run; tests pass a fixed seed for reproducibility.
func New(log logger.Log, seed int64) (*Service, error) {
	sf, err := loadSeedFile()
	if err != nil {
		return nil, err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	courses, reviews := generate(sf, rng, time.Now().UTC())

	s := &Service{
		log:     log,
		courses: courses,
		byID:    make(map[string]*models.Course, len(courses)),
		bySlug:  make(map[string]*models.Course, len(courses)),
		reviews: reviews,
	}
	for i := range s.courses {
		c := &s.courses[i]
		s.byID[c.ID] = c
		s.bySlug[c.Slug] = c
	}

	log.Info("catalog seeded", "courses", len(courses))
	return s, nil
}

// All returns every course in seed order. Callers must not mutate the result.
func (s *Service) All() []models.Course {
	return s.courses
}

func (s *Service) ByID(id string) (*models.Course, error) {
	c, ok := s.byID[id]
	if !ok {
		return nil, app_errors.ErrCourseNotFound
	}
	return c, nil
}

func (s *Service) BySlug(slug string) (*models.Course, error) {
	c, ok := s.bySlug[slug]
	if !ok {
		return nil, app_errors.ErrCourseNotFound
	}
	return c, nil
}

func (s *Service) ReviewsForCourse(id string) []models.Review {
	return s.reviews[id]
}

// Lesson resolves a lesson within a course.
func (s *Service) Lesson(courseID, lessonID string) (*models.Lesson, error) {
	c, err := s.ByID(courseID)
	if err != nil {
		return nil, err
	}
	for mi := range c.Modules {
		for li := range c.Modules[mi].Lessons {
			if c.Modules[mi].Lessons[li].ID == lessonID {
				return &c.Modules[mi].Lessons[li], nil
			}
		}
	}
	return nil, app_errors.ErrLessonNotFound
}
