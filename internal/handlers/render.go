// internal/handlers/render.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/appdevg6/boost-web/internal/middleware"
	"github.com/appdevg6/boost-web/internal/session"
)

// Renderer merges the per-page data with the ambient view state every
// template expects: the current identity (or nil) and any queued flashes.
type Renderer struct {
	flashes *session.FlashStore
}

func NewRenderer(flashes *session.FlashStore) *Renderer {
	return &Renderer{flashes: flashes}
}

func (r *Renderer) HTML(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["User"]; !ok {
		identity, _ := middleware.IdentityFromContext(c)
		data["User"] = identity
	}
	data["Flashes"] = r.flashes.Pop(c)
	c.HTML(status, name, data)
}

// confirmed reports whether a destructive form post carried the explicit
// confirmation field. Without it, no backend call may fire.
func confirmed(c *gin.Context) bool {
	return c.PostForm("confirm") == "yes"
}
