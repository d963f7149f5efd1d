package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"cuponera-backend/internal/pkg/cookie"
	"cuponera-backend/internal/pkg/jwt"
	"cuponera-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
	ctxUserKindKey = "user_kind"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortJSON(c, http.StatusUnauthorized, "Access token required")
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			abortJSON(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxUserRoleKey, claims.Role)
		c.Set(ctxUserKindKey, claims.Kind)
		c.Set("jwt_claims", map[string]any{
			"user_id": claims.UserID.String(),
			"role":    claims.Role,
			"kind":    claims.Kind,
		})
		c.Next()
	}
}

// OptionalAuth sets the subject when a valid token is present and never aborts.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}
		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}
		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxUserRoleKey, claims.Role)
		c.Set(ctxUserKindKey, claims.Kind)
		c.Next()
	}
}

// RequireRole must run after RequireAuth. Client tokens never pass it.
func (m *AuthMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, _ := GetUserKind(c)
		role, ok := GetUserRole(c)
		if !ok {
			abortJSON(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		if kind != jwt.KindActor || !slices.Contains(roles, role) {
			abortJSON(c, http.StatusForbidden, "Insufficient permissions")
			return
		}
		c.Next()
	}
}

func (m *AuthMiddleware) RequireKind(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := GetUserKind(c)
		if !ok {
			abortJSON(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		if got != kind {
			abortJSON(c, http.StatusForbidden, "Insufficient permissions")
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func abortJSON(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": gin.H{"message": msg}})
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (string, bool) {
	return getString(c, ctxUserRoleKey)
}

func GetUserKind(c *gin.Context) (string, bool) {
	return getString(c, ctxUserKindKey)
}

func getString(c *gin.Context, key string) (string, bool) {
	v, exists := c.Get(key)
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
