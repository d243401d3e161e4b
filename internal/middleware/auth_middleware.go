// internal/middleware/auth_middleware.go
package middleware

import (
	"net/http"
	"strings"
	"time"

	"gymflow-service/internal/pkg/jwt"
	"gymflow-service/internal/pkg/response"
	"gymflow-service/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	verifier   *jwt.Verifier
	revocation *session.RevocationList
}

func NewAuthMiddleware(verifier *jwt.Verifier, revocation *session.RevocationList) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:   verifier,
		revocation: revocation,
	}
}

// Auth validates the bearer token and loads its claims into the request context
func (m *AuthMiddleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "missing authorization token", nil)
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "invalid or expired token", err)
			return
		}

		revoked, err := m.revocation.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "failed to validate session", err)
			return
		}
		if revoked {
			response.Error(c, http.StatusUnauthorized, "token has been revoked", nil)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("jti", claims.ID)
		c.Set("role", claims.Role)
		c.Set("email", claims.Email)
		if claims.ExpiresAt != nil {
			c.Set("token_expires_at", claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// RequireAdmin requires the admin role.
// MUST be used after Auth() middleware.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			response.Error(c, http.StatusForbidden, "insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

// AdminOnly returns middlewares for admin-only routes (Auth + RequireAdmin)
func (m *AuthMiddleware) AdminOnly() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		m.Auth(),
		m.RequireAdmin(),
	}
}

// extractToken extracts a bearer token from the Authorization header, falling
// back to the token query param for websocket upgrades.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
	}

	return c.Query("token")
}

// GetUserID gets the authenticated user's ID from context
func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}

	id, ok := userID.(int64)
	return id, ok
}

// GetJTI gets the token's JTI from context
func GetJTI(c *gin.Context) (string, bool) {
	jti, exists := c.Get("jti")
	if !exists {
		return "", false
	}

	jtiStr, ok := jti.(string)
	return jtiStr, ok
}

// GetTokenExpiry gets the token's expiry from context
func GetTokenExpiry(c *gin.Context) (time.Time, bool) {
	exp, exists := c.Get("token_expires_at")
	if !exists {
		return time.Time{}, false
	}

	t, ok := exp.(time.Time)
	return t, ok
}

// HasRole checks if the authenticated user carries the given role
func HasRole(c *gin.Context, role string) bool {
	r, exists := c.Get("role")
	if !exists {
		return false
	}

	roleStr, ok := r.(string)
	return ok && roleStr == role
}
