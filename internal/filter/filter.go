// Package filter implements the course list predicate. Apply is a pure
// function: it never mutates its input and preserves the original order.
package filter

import (
	"strings"

	"github.com/Dhaneyl/course-platform/internal/models"
)

// Apply returns the courses matching every clause of opts. Empty search and
// "all" selectors match everything; a zero MinRating places no constraint.
func Apply(courses []models.Course, opts models.FilterOptions) []models.Course {
	out := make([]models.Course, 0, len(courses))
	for i := range courses {
		if Matches(&courses[i], opts) {
			out = append(out, courses[i])
		}
	}
	return out
}

func Matches(c *models.Course, opts models.FilterOptions) bool {
	return matchesSearch(c, opts.Search) &&
		matchesCategory(c, opts.Category) &&
		matchesLevel(c, opts.Level) &&
		matchesPrice(c, opts.Price) &&
		c.Rating >= opts.MinRating
}

func matchesSearch(c *models.Course, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(c.Title), needle) ||
		strings.Contains(strings.ToLower(c.Description), needle)
}

func matchesCategory(c *models.Course, category string) bool {
	if category == "" || category == models.FilterAll {
		return true
	}
	return string(c.Category) == category
}

func matchesLevel(c *models.Course, level string) bool {
	if level == "" || level == models.FilterAll {
		return true
	}
	return string(c.Level) == level
}

func matchesPrice(c *models.Course, price string) bool {
	switch price {
	case models.PriceFree:
		return c.Price == 0
	case models.PricePaid:
		return c.Price > 0
	default:
		return true
	}
}
