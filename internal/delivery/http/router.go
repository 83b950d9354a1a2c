package http

import (
	"time"

	"github.com/Dhaneyl/course-platform/internal/delivery/http/controllers"
	authctl "github.com/Dhaneyl/course-platform/internal/delivery/http/controllers/auth"
	coursectl "github.com/Dhaneyl/course-platform/internal/delivery/http/controllers/course"
	"github.com/Dhaneyl/course-platform/internal/delivery/http/controllers/middleware"
	"github.com/Dhaneyl/course-platform/internal/service"
	"github.com/Dhaneyl/course-platform/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitRoutes(l logger.Log, u service.Collection) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	config := cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	r.Use(cors.New(config))

	statusController := controllers.NewStatusHandler()
	authProvider := middleware.NewAuthProvider(l, u.Tokens, u.Session)
	authController := authctl.NewAuthHandler(l, u.Session, u.Tokens)
	queryController := coursectl.NewQueryHandler(l, u.Catalog, u.PageSize, u.SearchDebounce)
	enrollmentController := coursectl.NewEnrollmentHandler(l, u.Catalog, u.Enrollments, u.Session)
	favoritesController := coursectl.NewFavoritesHandler(l, u.Catalog, u.Favorites)

	v1 := r.Group("/v1", controllers.LoggingMiddleware(l))
	{
		v1.GET("/status", statusController.Status)

		v1.GET("/me", authProvider.AuthMiddleware, authController.Me)

		auth := v1.Group("/auth")
		{
			auth.POST("/login", authController.Login)
			auth.POST("/register", authController.Register)
			auth.POST("/logout", authProvider.AuthMiddleware, authController.Logout)
		}

		courses := v1.Group("/courses")
		{
			courses.GET("", queryController.ListCourses)
			courses.GET("/:slug", queryController.CourseBySlug)
			courses.GET("/:slug/reviews", queryController.CourseReviews)
			courses.GET("/:slug/lessons/:lesson_id", enrollmentController.LessonDetail)

			student := courses.Group("", authProvider.AuthMiddleware)
			{
				student.POST("/:slug/enroll", enrollmentController.Enroll)
				student.GET("/:slug/progress", enrollmentController.Progress)
				student.POST("/:slug/lessons/:lesson_id/complete", enrollmentController.CompleteLesson)
				student.POST("/:slug/favorite", favoritesController.Add)
				student.DELETE("/:slug/favorite", favoritesController.Remove)
				student.POST("/:slug/favorite/toggle", favoritesController.Toggle)
			}
		}

		authed := v1.Group("", authProvider.AuthMiddleware)
		{
			authed.GET("/my-learning", enrollmentController.MyLearning)
			authed.GET("/favorites", favoritesController.List)
		}
	}
	return r
}
