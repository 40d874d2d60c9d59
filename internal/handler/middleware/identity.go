package middleware

import (
	"github.com/gin-gonic/gin"
)

const ctxUserIDKey = "user_id"

// IdentityMiddleware resolves the acting user from the X-User-ID header.
// Authentication is out of scope; requests without the header act as the
// configured default user, matching the source app's single local user.
type IdentityMiddleware struct {
	defaultUserID string
}

func NewIdentityMiddleware(defaultUserID string) *IdentityMiddleware {
	return &IdentityMiddleware{defaultUserID: defaultUserID}
}

func (m *IdentityMiddleware) ResolveUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			userID = m.defaultUserID
		}
		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok && id != ""
}
