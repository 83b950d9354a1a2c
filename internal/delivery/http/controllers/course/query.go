package course

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Dhaneyl/course-platform/internal/app_errors"
	"github.com/Dhaneyl/course-platform/internal/filter"
	"github.com/Dhaneyl/course-platform/internal/models"
	"github.com/Dhaneyl/course-platform/internal/pagination"
	"github.com/Dhaneyl/course-platform/pkg/debounce"
	"github.com/Dhaneyl/course-platform/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CatalogService interface {
	All() []models.Course
	BySlug(slug string) (*models.Course, error)
	ReviewsForCourse(id string) []models.Review
}

type QueryHandler struct {
	log      logger.Log
	catalog  CatalogService
	pageSize int

	// search coalesces the query terms of a typing burst: only the term that
	// survives the quiet period is reported.
	search *debounce.Debouncer[string]
}

func NewQueryHandler(log logger.Log, catalog CatalogService, pageSize int, searchDelay time.Duration) *QueryHandler {
	if pageSize < 1 {
		pageSize = 9
	}

	h := &QueryHandler{
		log:      log,
		catalog:  catalog,
		pageSize: pageSize,
	}
	if searchDelay > 0 {
		h.search = debounce.New(searchDelay, func(query string) {
			log.Info("search settled", "query", query)
		})
	}
	return h
}

func (h *QueryHandler) ListCourses(c *gin.Context) {
	opts := models.DefaultFilterOptions()
	opts.Search = c.Query("search")
	if opts.Search != "" && h.search != nil {
		h.search.Set(opts.Search)
	}
	if v := c.Query("category"); v != "" {
		opts.Category = v
	}
	if v := c.Query("level"); v != "" {
		opts.Level = v
	}
	if v := c.Query("price"); v != "" {
		opts.Price = v
	}
	if s := c.Query("rating"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be a non-negative number"})
			return
		}
		opts.MinRating = v
	}

	page := 1
	if s := c.Query("page"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a positive integer"})
			return
		}
		page = v
	}

	pageSize := h.pageSize
	if s := c.Query("page_size"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page_size must be a positive integer"})
			return
		}
		pageSize = v
	}

	filtered := filter.Apply(h.catalog.All(), opts)

	pager := pagination.New(filtered, pageSize)
	pager.GoToPage(page)

	pageItems := pager.Page()
	previews := make([]models.CoursePreview, 0, len(pageItems))
	for i := range pageItems {
		previews = append(previews, pageItems[i].Preview())
	}

	c.JSON(http.StatusOK, gin.H{
		"total":       len(filtered),
		"total_pages": pager.TotalPages(),
		"page":        pager.CurrentPage(),
		"courses":     previews,
	})
}

func (h *QueryHandler) CourseBySlug(c *gin.Context) {
	course, err := h.catalog.BySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, app_errors.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *QueryHandler) CourseReviews(c *gin.Context) {
	course, err := h.catalog.BySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, app_errors.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	reviews := h.catalog.ReviewsForCourse(course.ID)
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
