package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Adarshkumar111/Maintenance/pkg/jwt"
)

// SessionCookieName is the cookie carrying the demo session token
const SessionCookieName = "maintenance_session"

// SessionContextKey is the key used to store the session in Gin context
const SessionContextKey = "session"

// SessionContext is the signed-in user as shown in dashboard headers
type SessionContext struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// Session reads the session cookie into the context. Missing or invalid
// cookies are ignored: every page stays reachable without logging in.
func Session(jwtService *jwt.Service, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		claims, err := jwtService.ValidateSessionToken(token)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			}).Debug("Ignoring invalid session cookie")
			c.Next()
			return
		}

		c.Set(SessionContextKey, &SessionContext{
			UserID: claims.UserID,
			Role:   claims.Role,
		})
		c.Next()
	}
}

// GetSessionContext retrieves the session from Gin context
func GetSessionContext(c *gin.Context) (*SessionContext, bool) {
	value, exists := c.Get(SessionContextKey)
	if !exists {
		return nil, false
	}

	session, ok := value.(*SessionContext)
	return session, ok
}
