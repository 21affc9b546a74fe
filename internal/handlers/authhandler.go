package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/auth"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/dtos"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/models"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/services"
)

type AuthHandler struct {
	UserService *services.UserService
	Tokens      *auth.TokenIssuer
}

// NewAuthHandler creates the handler with dependencies
func NewAuthHandler(users *services.UserService, tokens *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{UserService: users, Tokens: tokens}
}

// Register is the POST /api/auth/register endpoint
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide name, email, password and role"})
		return
	}

	user, err := h.UserService.Register(&req)
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondWithToken(c, http.StatusCreated, user)
}

// Login is the POST /api/auth/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide email and password"})
		return
	}

	user, err := h.UserService.Login(&req)
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondWithToken(c, http.StatusOK, user)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, user *models.User) {
	token, err := h.Tokens.Issue(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(status, dtos.AuthResponse{
		Token: token,
		Role:  string(user.Role),
		Name:  user.Name,
	})
}
