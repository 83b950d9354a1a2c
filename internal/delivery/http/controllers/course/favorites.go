package course

import (
	"errors"
	"net/http"

	"github.com/Dhaneyl/course-platform/internal/app_errors"
	"github.com/Dhaneyl/course-platform/internal/models"
	"github.com/Dhaneyl/course-platform/pkg/logger"

	"github.com/gin-gonic/gin"
)

type favoritesResolver interface {
	ByID(id string) (*models.Course, error)
	BySlug(slug string) (*models.Course, error)
}

type FavoritesService interface {
	List() []string
	Add(courseID string) error
	Remove(courseID string) error
	Toggle(courseID string) (bool, error)
	IsFavorite(courseID string) bool
}

type FavoritesHandler struct {
	log       logger.Log
	catalog   favoritesResolver
	favorites FavoritesService
}

func NewFavoritesHandler(log logger.Log, catalog favoritesResolver, f FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{
		log:       log,
		catalog:   catalog,
		favorites: f,
	}
}

func (h *FavoritesHandler) List(c *gin.Context) {
	previews := []models.CoursePreview{}
	for _, id := range h.favorites.List() {
		course, err := h.catalog.ByID(id)
		if err != nil {
			h.log.Warn("favorite references unknown course", "course_id", id)
			continue
		}
		previews = append(previews, course.Preview())
	}
	c.JSON(http.StatusOK, gin.H{"courses": previews})
}

func (h *FavoritesHandler) Add(c *gin.Context) {
	course, ok := h.resolve(c)
	if !ok {
		return
	}
	if err := h.favorites.Add(course.ID); err != nil {
		h.log.ErrorErr("failed to add favorite", err, "course_id", course.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorite": true})
}

func (h *FavoritesHandler) Remove(c *gin.Context) {
	course, ok := h.resolve(c)
	if !ok {
		return
	}
	if err := h.favorites.Remove(course.ID); err != nil {
		h.log.ErrorErr("failed to remove favorite", err, "course_id", course.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorite": false})
}

func (h *FavoritesHandler) Toggle(c *gin.Context) {
	course, ok := h.resolve(c)
	if !ok {
		return
	}
	favorite, err := h.favorites.Toggle(course.ID)
	if err != nil {
		h.log.ErrorErr("failed to toggle favorite", err, "course_id", course.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorite": favorite})
}

func (h *FavoritesHandler) resolve(c *gin.Context) (*models.Course, bool) {
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
