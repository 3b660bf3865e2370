package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mustafayildiz-m/iw-project/pkg/jwt"
	"github.com/mustafayildiz-m/iw-project/pkg/response"
)

// Context keys set by the auth middleware.
const (
	ContextUserID   = "user_id"
	ContextEmail    = "email"
	ContextUsername = "username"
	ContextRole     = "role"
)

const msgInvalidToken = "Geçersiz veya süresi dolmuş token"

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func setIdentity(c *gin.Context, claims *jwt.Claims) {
	c.Set(ContextUserID, claims.UserID())
	c.Set(ContextEmail, claims.Email)
	c.Set(ContextUsername, claims.Username)
	c.Set(ContextRole, claims.Role)
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, msgInvalidToken)
			c.Abort()
			return
		}

		claims, err := manager.Validate(token)
		if err != nil {
			response.Unauthorized(c, msgInvalidToken)
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth populates the identity when a valid token is present but lets
// anonymous requests through. Used by search so results can carry
// requester-relative annotations.
func OptionalAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if claims, err := manager.Validate(token); err == nil {
				setIdentity(c, claims)
			}
		}
		c.Next()
	}
}

// RequireRole gates a route to the given roles. Must run after RequireAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		response.Forbidden(c, "Bu işlem için yetkiniz yok")
		c.Abort()
	}
}

// GetUserID returns the authenticated user id, zero when anonymous.
func GetUserID(c *gin.Context) uint {
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// GetEmail returns the authenticated email, empty when anonymous.
func GetEmail(c *gin.Context) string {
	return c.GetString(ContextEmail)
}

// GetRole returns the authenticated role, empty when anonymous.
func GetRole(c *gin.Context) string {
	return c.GetString(ContextRole)
}
