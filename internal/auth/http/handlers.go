package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/InternFinder-SIH/internfinder-backend/internal/auth/service"
	"github.com/InternFinder-SIH/internfinder-backend/internal/users"
)

// RegisterUser handles POST /auth/register.
func (h *Handler) RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email and password are required."})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{"message": "User already exists."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "message": "User registered successfully."})
}

// Login handles POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required."})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token, "message": "Login successful."})
}

// GoogleLogin handles POST /auth/google.
func (h *Handler) GoogleLogin(c *gin.Context) {
	var req googleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Token is required."})
		return
	}

	user, token, err := h.authService.GoogleLogin(c.Request.Context(), req.Token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidIDToken):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid Google token."})
		case errors.Is(err, service.ErrNoEmail):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Google account must have an email address."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token, "message": "Google login successful."})
}

// Logout handles GET /auth/logout. Session tokens are stateless, so this only
// confirms; the client drops its copy.
func (h *Handler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful."})
}
