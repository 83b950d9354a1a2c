package course

import (
	"errors"
	"net/http"

	"github.com/Dhaneyl/course-platform/internal/app_errors"
	"github.com/Dhaneyl/course-platform/internal/models"
	"github.com/Dhaneyl/course-platform/pkg/logger"

	"github.com/gin-gonic/gin"
)

type courseResolver interface {
	ByID(id string) (*models.Course, error)
	BySlug(slug string) (*models.Course, error)
	Lesson(courseID, lessonID string) (*models.Lesson, error)
}

type EnrollmentService interface {
	Enroll(courseID string) error
	IsEnrolled(courseID string) bool
	Get(courseID string) (*models.Enrollment, bool)
	CompleteLesson(courseID, lessonID string) error
	Progress(courseID string) int
	ForStudent() []models.Enrollment
}

type sessionReader interface {
	IsAuthenticated() bool
}

type EnrollmentHandler struct {
	log         logger.Log
	catalog     courseResolver
	enrollments EnrollmentService
	session     sessionReader
}

func NewEnrollmentHandler(log logger.Log, catalog courseResolver, e EnrollmentService, s sessionReader) *EnrollmentHandler {
	return &EnrollmentHandler{
		log:         log,
		catalog:     catalog,
		enrollments: e,
		session:     s,
	}
}

func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	course, ok := h.resolveCourse(c)
	if !ok {
		return
	}

	if err := h.enrollments.Enroll(course.ID); err != nil {
		h.log.ErrorErr("failed to enroll", err, "course_id", course.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not enroll"})
		return
	}

	enrollment, _ := h.enrollments.Get(course.ID)
	c.JSON(http.StatusOK, gin.H{"status": "enrolled", "enrollment": enrollment})
}

func (h *EnrollmentHandler) Progress(c *gin.Context) {
	course, ok := h.resolveCourse(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": h.enrollments.Progress(course.ID)})
}

func (h *EnrollmentHandler) CompleteLesson(c *gin.Context) {
	course, ok := h.resolveCourse(c)
	if !ok {
		return
	}

	lessonID := c.Param("lesson_id")
	if _, err := h.catalog.Lesson(course.ID, lessonID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": app_errors.ErrLessonNotFound.Error()})
		return
	}

	if !h.enrollments.IsEnrolled(course.ID) {
		c.JSON(http.StatusForbidden, gin.H{"error": app_errors.ErrNotEnrolled.Error()})
		return
	}

	if err := h.enrollments.CompleteLesson(course.ID, lessonID); err != nil {
		h.log.ErrorErr("failed to complete lesson", err, "course_id", course.ID, "lesson_id", lessonID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record completion"})
		return
	}

	enrollment, _ := h.enrollments.Get(course.ID)
	c.JSON(http.StatusOK, gin.H{"progress": h.enrollments.Progress(course.ID), "enrollment": enrollment})
}

// LessonDetail serves the lesson viewer. Preview lessons are open to anyone;
// the rest require an enrollment of the current student.
func (h *EnrollmentHandler) LessonDetail(c *gin.Context) {
	course, ok := h.resolveCourse(c)
	if !ok {
		return
	}

	lesson, err := h.catalog.Lesson(course.ID, c.Param("lesson_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": app_errors.ErrLessonNotFound.Error()})
		return
	}

	if !lesson.IsPreview {
		if !h.session.IsAuthenticated() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": app_errors.ErrNotAuthenticated.Error()})
			return
		}
		if !h.enrollments.IsEnrolled(course.ID) {
			c.JSON(http.StatusForbidden, gin.H{"error": app_errors.ErrLessonLocked.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"course_id": course.ID, "lesson": lesson})
}

type learningItem struct {
	Enrollment models.Enrollment    `json:"enrollment"`
	Course     models.CoursePreview `json:"course"`
}

func (h *EnrollmentHandler) MyLearning(c *gin.Context) {
	items := []learningItem{}
	for _, e := range h.enrollments.ForStudent() {
		course, err := h.catalog.ByID(e.CourseID)
		if err != nil {
			h.log.Warn("enrollment references unknown course", "course_id", e.CourseID)
			continue
		}
		items = append(items, learningItem{Enrollment: e, Course: course.Preview()})
	}
	c.JSON(http.StatusOK, gin.H{"courses": items})
}

func (h *EnrollmentHandler) resolveCourse(c *gin.Context) (*models.Course, bool) {
	course, err := h.catalog.BySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, app_errors.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return course, true
}
