package middlewares

import (
	"strings"
	"time"

	"github.com/blogicum/blogicum/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// identityKey is the gin context key the resolved user is stored under.
const identityKey = "identity"

// Identity resolves the acting identity for every request. The client
// presents the session token from login either as "Authorization: Bearer
// <token>" or as a "token" query parameter. An absent, unknown or expired
// token resolves to the anonymous identity; enforcement is left to the
// handlers, which redirect anonymous mutation attempts to the login flow.
func Identity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		var session model.Session
		queryResult := db.Preload("User").Where("token = ?", token).First(&session)
		if queryResult.RowsAffected != 1 || session.User == nil {
			c.Next()
			return
		}
		if time.Now().After(session.ExpiresAt) {
			// Expired sessions are dropped lazily on their next use.
			db.Delete(&session)
			c.Next()
			return
		}

		c.Set(identityKey, session.User)
		c.Next()
	}
}

// CurrentUser returns the user resolved by the Identity middleware, or nil
// for an anonymous request.
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	user, ok := v.(*model.User)
	if !ok {
		return nil
	}
	return user
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Query("token")
}
