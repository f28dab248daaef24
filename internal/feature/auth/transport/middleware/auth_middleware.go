// Package middleware provides the bearer-token authentication middleware.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktrack_backend/internal/feature/auth/domain/entity"
	"tasktrack_backend/internal/feature/auth/usecase"
	"tasktrack_backend/internal/platform/token"
)

// contextUserKey is the gin context key the authenticated user is stored under.
const contextUserKey = "authUser"

// Authenticator resolves the caller behind an Authorization header value.
// Following Go convention: interfaces are defined by the consumer (middleware),
// not the provider (usecase).
type Authenticator interface {
	Authenticate(ctx context.Context, authorizationHeader string) (*usecase.AuthContext, error)
}

// AuthRequired returns a Gin middleware that restricts access to requests
// carrying a valid bearer token. A missing token secret is a server fault
// (500); every other failure is the client's (401, generic body).
func AuthRequired(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authCtx, err := auth.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			if errors.Is(err, token.ErrMissingSecret) {
				slog.Error("auth middleware misconfigured", "error", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
				return
			}
			slog.Warn("request authentication failed", "error", err, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(contextUserKey, authCtx.User)
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by AuthRequired.
// The second return value is false on routes outside the auth group.
func CurrentUser(c *gin.Context) (entity.PublicUser, bool) {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return entity.PublicUser{}, false
	}
	user, ok := v.(entity.PublicUser)
	return user, ok
}
