package auth

import (
	"context"
	"net/http"

	"github.com/Dhaneyl/course-platform/internal/models"
	"github.com/Dhaneyl/course-platform/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SessionService interface {
	Login(ctx context.Context, email, password string) bool
	Register(ctx context.Context, name, email, password string) bool
	Logout()
	Current() *models.Student
	IsLoading() bool
}

type TokenService interface {
	Generate(studentID string) (string, error)
}

type AuthHandler struct {
	log     logger.Log
	session SessionService
	tokens  TokenService
}

func NewAuthHandler(l logger.Log, s SessionService, t TokenService) *AuthHandler {
	return &AuthHandler{
		log:     l,
		session: s,
		tokens:  t,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	Token   string          `json:"token"`
	Student *models.Student `json:"student"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input loginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.session.Login(c.Request.Context(), input.Email, input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login failed"})
		return
	}

	h.respondWithToken(c, http.StatusOK)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input registerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.session.Register(c.Request.Context(), input.Name, input.Email, input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "registration failed"})
		return
	}

	h.respondWithToken(c, http.StatusCreated)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.session.Logout()
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	student := h.session.Current()
	if student == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}
	c.JSON(http.StatusOK, student)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int) {
	student := h.session.Current()
	if student == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session not established"})
		return
	}

	token, err := h.tokens.Generate(student.ID)
	if err != nil {
		h.log.ErrorErr("failed to generate token", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}

	c.JSON(status, authResponse{Token: token, Student: student})
}
