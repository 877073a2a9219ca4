package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	pkgErrors "item-service/pkg/errors"
	"item-service/pkg/response"
	"item-service/pkg/scope"
)

const bearerPrefix = "Bearer "

// Auth requires a valid bearer token and stores the caller's scope on the
// request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.jwtManager == nil {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Error(c, pkgErrors.ErrUnauthorized)
			return
		}

		payload, err := m.jwtManager.Verify(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Error(c, pkgErrors.ErrUnauthorized)
			return
		}

		ctx := scope.SetScopeToContext(c.Request.Context(), scope.Scope{
			Subject: payload.Subject,
			Role:    payload.Role,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
