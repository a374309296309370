package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Danskers/Finances-API/internal/auth"
)

const (
	userIDKey = "userID"
	userKey   = "user"
)

// SessionRequired resolves the request to an authenticated user via
// the session token (bearer header or access_token cookie) and stores
// the identity on the context. Requests without a resolvable identity
// are redirected to the login page; token failures never surface as
// errors.
func SessionRequired(users auth.UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.ResolveUser(c.Request, users)
		if user == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(userIDKey, user.ID)
		c.Set(userKey, user)
		c.Next()
	}
}
