package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/authd/internal/common"
	"github.com/dmitrijs2005/authd/internal/logging"
	"github.com/dmitrijs2005/authd/internal/server/auth"
	"github.com/dmitrijs2005/authd/internal/server/services"
	"github.com/gin-gonic/gin"
)

type handlers struct {
	authService *services.AuthService
	userService *services.UserService
	logger      logging.Logger
}

type signupRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *handlers) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed"})
		return
	}
	if !passwordAcceptable(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "password must contain at least 1 letter, 1 number and 1 special character",
		})
		return
	}

	token, user, err := h.authService.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrEmailExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})
			return
		}
		h.logger.Error(c.Request.Context(), "signup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"access_token": token, "user": user})
}

func (h *handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed"})
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		h.logger.Error(c.Request.Context(), "login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "user": user})
}

func (h *handlers) logout(c *gin.Context) {
	token, ok := auth.GetBearerToken(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, unauthorizedBody)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusUnauthorized, unauthorizedBody)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *handlers) blacklistedTokens(c *gin.Context) {
	tokens := h.authService.RevokedTokens()
	c.JSON(http.StatusOK, gin.H{"blacklisted_tokens": tokens})
}

func (h *handlers) profile(c *gin.Context) {
	claims, ok := auth.GetClaims(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, unauthorizedBody)
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), claims.UserID())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logger.Error(c.Request.Context(), "profile lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// passwordAcceptable enforces the password policy beyond length: at least
// one letter, one digit, and one special character.
func passwordAcceptable(password string) bool {
	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune("@$!%*#?&", r):
			hasSpecial = true
		}
	}
	return hasLetter && hasDigit && hasSpecial
}
