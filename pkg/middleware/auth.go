package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/supportly-beer/supportly-backend/pkg/jwt"
)

const (
	UserIDKey     = "user_id"
	EmailKey      = "email"
	RoleKey       = "role"
	TokenKey      = "token"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// RoleResolver looks up the role name of a user by email. The token itself
// does not carry the role so that role changes take effect immediately.
type RoleResolver interface {
	ResolveRole(email string) (string, error)
}

// AuthMiddleware validates bearer tokens against the local JWT manager.
type AuthMiddleware struct {
	manager *jwt.Manager
	roles   RoleResolver
}

// NewAuthMiddleware creates a new auth middleware.
func NewAuthMiddleware(manager *jwt.Manager, roles RoleResolver) *AuthMiddleware {
	return &AuthMiddleware{manager: manager, roles: roles}
}

// RequireAuth returns a Gin middleware that validates access tokens.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing or malformed authorization header",
			})
			return
		}

		claims, err := m.manager.ValidateTokenOfType(token, jwt.TypeAccess)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": err.Error(),
			})
			return
		}

		role, err := m.roles.ResolveRole(claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unknown user",
			})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(EmailKey, claims.Subject)
		c.Set(RoleKey, role)
		c.Set(TokenKey, token)

		c.Next()
	}
}

// RequireRoles returns a Gin middleware that requires one of the given roles.
// Must run after RequireAuth.
func (m *AuthMiddleware) RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetRole(c)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "insufficient permissions",
		})
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader(AuthHeaderKey)
	if header == "" || !strings.HasPrefix(header, BearerPrefix) {
		return "", false
	}
	return strings.TrimPrefix(header, BearerPrefix), true
}

// GetUserID extracts the user ID from Gin context.
func GetUserID(c *gin.Context) int64 {
	if id, exists := c.Get(UserIDKey); exists {
		return id.(int64)
	}
	return 0
}

// GetEmail extracts the email from Gin context.
func GetEmail(c *gin.Context) string {
	if email, exists := c.Get(EmailKey); exists {
		return email.(string)
	}
	return ""
}

// GetRole extracts the role name from Gin context.
func GetRole(c *gin.Context) string {
	if role, exists := c.Get(RoleKey); exists {
		return role.(string)
	}
	return ""
}

// GetToken extracts the raw bearer token from Gin context.
func GetToken(c *gin.Context) string {
	if token, exists := c.Get(TokenKey); exists {
		return token.(string)
	}
	return ""
}
