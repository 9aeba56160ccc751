package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mbarbosa/recado-server/internal/api/http/httpctx"
	"github.com/mbarbosa/recado-server/internal/logger"
	"github.com/mbarbosa/recado-server/internal/model"
)

// AuthService resolves bearer access tokens to identities.
type AuthService interface {
	Authenticate(ctx context.Context, accessToken string) (model.Identity, error)
}

// Authenticate validates bearer tokens on protected routes and injects
// the identity into the request context. It runs fully before the
// wrapped handler; there is no partial-authentication state.
type Authenticate struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authService AuthService, logger *logger.Logger) *Authenticate {
	return &Authenticate{authService: authService, logger: logger}
}

// Handle parses the Authorization header, validates the token and stores
// the identity. Every failure aborts with the same unauthorized shape.
func (m *Authenticate) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c)
			return
		}

		identity, err := m.authService.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		httpctx.SetIdentity(c, identity)
		c.Next()
	}
}

// RequirePolicy enforces a declared route policy. With no identity in
// context the request is rejected; with one it passes. Per-policy
// membership is an extension point, not yet enforced.
func RequirePolicy(policy model.RoutePolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if policy == "" {
			c.Next()
			return
		}

		if _, ok := httpctx.Identity(c); !ok {
			abortUnauthorized(c)
			return
		}

		c.Next()
	}
}

func extractBearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}

	return token, true
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    "unauthorized",
		"message": "authentication required",
	})
}
