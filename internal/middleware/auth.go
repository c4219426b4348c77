package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"merval-chat-service/internal/model"
	"merval-chat-service/pkg/response"
)

const (
	scopeKey       = "scope"
	bearerTokenKey = "bearer_token"
)

// Auth verifies the Bearer token and stores the resulting scope plus the
// raw token (forwarded to the backend later) on the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims, err := m.jwtManager.Verify(raw)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: token rejected: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{
			UserID: claims.UserIdentifier(),
			Name:   claims.Name,
			Email:  claims.Email,
		})
		c.Set(bearerTokenKey, raw)
		c.Next()
	}
}

// GetScope returns the authenticated scope stored by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}

// GetBearerToken returns the raw token stored by Auth.
func GetBearerToken(c *gin.Context) string {
	return c.GetString(bearerTokenKey)
}
