// Package httpctx carries the request-scoped identity between the
// authentication middleware and the handlers.
package httpctx

import (
	"github.com/gin-gonic/gin"

	"github.com/mbarbosa/recado-server/internal/model"
)

// identityKey is the gin context key under which the identity is stored.
const identityKey = "auth.identity"

// SetIdentity attaches the resolved identity to the request context.
func SetIdentity(c *gin.Context, identity model.Identity) {
	c.Set(identityKey, identity)
}

// Identity retrieves the identity set by the authentication middleware.
// The boolean is false on routes that did not run the middleware.
func Identity(c *gin.Context) (model.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return model.Identity{}, false
	}

	identity, ok := v.(model.Identity)
	if !ok {
		return model.Identity{}, false
	}

	return identity, true
}
