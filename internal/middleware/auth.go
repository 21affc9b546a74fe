package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/auth"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/models"
	"github.com/tusharpatel777/JobBoard-codSoft-task/internal/services"
)

const userKey = "currentUser"

// RequireAuth extracts the bearer token, verifies it, resolves the embedded
// user id against the store and attaches the user to the request context.
// A token for a deleted account fails the same way as a bad token.
func RequireAuth(issuer *auth.TokenIssuer, users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
			return
		}

		claims, err := issuer.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			return
		}

		user, err := users.GetByID(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, user not found"})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireRole composes after RequireAuth and rejects identities whose role
// does not match.
func RequireRole(role models.Role) gin.HandlerFunc {
	message := "Access denied. Candidate role required."
	if role == models.RoleEmployer {
		message = "Access denied. Employer role required."
	}
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": message})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the identity attached by RequireAuth, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
