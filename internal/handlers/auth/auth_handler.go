// internal/handlers/auth/auth_handler.go
package auth

import (
	"errors"
	"net/http"
	"time"

	"gymflow-service/internal/domain/auth"
	"gymflow-service/internal/middleware"
	xerrors "gymflow-service/internal/pkg/errors"
	"gymflow-service/internal/pkg/response"
	service "gymflow-service/internal/service/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a staff user. Admin only.
func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrConflict) {
			response.Error(c, http.StatusConflict, "email already registered", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to register user", err)
		return
	}

	user.PasswordHash = ""
	response.Success(c, http.StatusCreated, "user registered", user)
}

// Login verifies credentials and issues an access token
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), c.ClientIP(), &req)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrRateLimited):
			response.Error(c, http.StatusTooManyRequests, "too many login attempts", nil)
		case errors.Is(err, xerrors.ErrUnauthorized):
			response.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "failed to log in", err)
		}
		return
	}

	response.Success(c, http.StatusOK, "logged in", result)
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	user, err := h.authService.Me(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "user not found", err)
		return
	}

	response.Success(c, http.StatusOK, "profile retrieved", user)
}

// Logout revokes the presented token
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := middleware.MustGetJTI(c)

	expiresAt, ok := middleware.GetTokenExpiry(c)
	if !ok {
		expiresAt = time.Now().Add(24 * time.Hour)
	}

	if err := h.authService.Logout(c.Request.Context(), jti, expiresAt); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to log out", err)
		return
	}

	response.Success(c, http.StatusOK, "logged out", nil)
}
