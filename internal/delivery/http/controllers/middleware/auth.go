package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Dhaneyl/course-platform/internal/app_errors"
	"github.com/Dhaneyl/course-platform/internal/models"
	"github.com/Dhaneyl/course-platform/internal/service/session"
	"github.com/Dhaneyl/course-platform/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ClientIDCtx carries the authenticated student id through the request.
const ClientIDCtx = "client_id"

type tokenParser interface {
	ParseClaims(token string) (*session.Claims, error)
}

type sessionStore interface {
	Current() *models.Student
}

type AuthProvider struct {
	log     logger.Log
	tokens  tokenParser
	session sessionStore
}

func NewAuthProvider(log logger.Log, tokens tokenParser, s sessionStore) *AuthProvider {
	return &AuthProvider{
		log:     log,
		tokens:  tokens,
		session: s,
	}
}

// AuthMiddleware guards authenticated-only routes: it requires a Bearer token
// minted at login and a matching current session identity.
func (h *AuthProvider) AuthMiddleware(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	var token string
	if parts := strings.Split(authHeader, "Bearer "); len(parts) == 2 {
		token = parts[1]
	}
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": app_errors.ErrNotAuthenticated.Error()})
		return
	}

	claims, err := h.tokens.ParseClaims(token)
	if err != nil {
		if errors.Is(err, app_errors.ErrTokenExpired) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": app_errors.ErrTokenExpired.Error()})
			return
		}
		h.log.Debug("failed to parse token", logger.Err(err))
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": app_errors.ErrInvalidToken.Error()})
		return
	}

	student := h.session.Current()
	if student == nil || student.ID != claims.StudentID {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": app_errors.ErrNotAuthenticated.Error()})
		return
	}

	c.Set(ClientIDCtx, student.ID)
	c.Next()
}
