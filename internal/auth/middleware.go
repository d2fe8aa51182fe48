package auth

import (
	"net/http"
	"strings"

	"github.com/campushire/jobboard-api/internal/models"
	"github.com/campushire/jobboard-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ContextUserKey is where the middleware stores the resolved user.
const ContextUserKey = "currentUser"

// RequireUser resolves the bearer token from the Authorization header into a
// user and aborts with 401 otherwise. The token is always passed explicitly
// in the request; nothing downstream reads ambient auth state.
func RequireUser(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		user, err := authService.UserByToken(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RequireAdmin gates admin routes. Must run after RequireUser.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user set by RequireUser, or nil.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}
