package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beststore/beststore/internal/database/service"
)

// AuthMiddleware handles session validation
type AuthMiddleware struct {
	service service.AuthService
	logger  *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware instance
func NewAuthMiddleware(service service.AuthService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		service: service,
		logger:  logger,
	}
}

// RequireSession validates the session cookie and sets userID in context;
// requests without an established session are sent to the login entry point
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(service.SessionCookieName)
		if err != nil || cookie == "" {
			m.logger.Debug("🔒 [Middleware] No session cookie, redirecting to login", "path", c.Request.URL.Path)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		userID, err := m.service.ValidateSessionToken(cookie)
		if err != nil {
			m.logger.Warn("⚠️ [Middleware] Invalid session", "error", err)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("userID", userID)
		m.logger.Debug("✅ [Middleware] Session validated", "user_id", userID)

		c.Next()
	}
}
