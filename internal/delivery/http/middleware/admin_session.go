package middleware

import (
	"net/http"

	"github.com/creadoresuy/directorio-backend/internal/delivery/http/handler"
	"github.com/creadoresuy/directorio-backend/internal/usecase/auth"
	"github.com/gin-gonic/gin"
)

// AdminSessionMiddleware gates moderation endpoints behind the admin session
// cookie. With no configured secret the gate admits everything (fail open),
// matching the panel this service replaces.
type AdminSessionMiddleware struct {
	authUseCase *auth.AdminAuthUseCase
}

func NewAdminSessionMiddleware(authUseCase *auth.AdminAuthUseCase) *AdminSessionMiddleware {
	return &AdminSessionMiddleware{
		authUseCase: authUseCase,
	}
}

// RequireAdmin rejects the request before it reaches any moderation handler
// unless the session cookie carries the configured secret.
func (m *AdminSessionMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(handler.SessionCookieName)
		if err != nil {
			value = ""
		}
		if !m.authUseCase.ValidSession(value) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "No autorizado",
			})
			return
		}
		c.Next()
	}
}
