package service

import (
	"time"

	"github.com/Dhaneyl/course-platform/internal/catalog"
	"github.com/Dhaneyl/course-platform/internal/service/enrollment"
	"github.com/Dhaneyl/course-platform/internal/service/favorites"
	"github.com/Dhaneyl/course-platform/internal/service/session"
)

type Collection struct {
	Catalog        *catalog.Service
	Session        *session.Store
	Favorites      *favorites.Store
	Enrollments    *enrollment.Store
	Tokens         *session.TokenManager
	PageSize       int
	SearchDebounce time.Duration
}
