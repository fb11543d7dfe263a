// internal/middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/appdevg6/boost-web/internal/models"
	"github.com/appdevg6/boost-web/internal/session"
)

// Context keys the guards populate for downstream handlers.
const (
	ContextIdentity = "identity"
)

// Route guards are a UX convenience only; the backend re-enforces
// authorization on every call.

// AuthRequired redirects anonymous visitors to the login page.
func AuthRequired(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := store.Read(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(ContextIdentity, identity)
		c.Next()
	}
}

// AdminRequired sends non-admins back to the home page.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok || identity.Role != models.RoleAdmin {
			c.Redirect(http.StatusFound, "/home")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SellerRequired sends non-sellers to the application page. Admins pass.
func SellerRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok || (identity.Role != models.RoleSeller && identity.Role != models.RoleAdmin) {
			c.Redirect(http.StatusFound, "/seller-application")
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalAuth attaches the identity when a session exists, without gating.
func OptionalAuth(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity, ok := store.Read(c); ok {
			c.Set(ContextIdentity, identity)
		}
		c.Next()
	}
}

// IdentityFromContext returns the identity a guard attached, if any.
func IdentityFromContext(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextIdentity)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*models.User)
	return identity, ok
}
