// internal/handlers/applications.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/appdevg6/boost-web/internal/backend"
	"github.com/appdevg6/boost-web/internal/middleware"
	"github.com/appdevg6/boost-web/internal/models"
	"github.com/appdevg6/boost-web/internal/session"
)

type ApplicationHandler struct {
	applications *backend.ApplicationClient
	users        *backend.UserClient
	sessions     *session.Store
	flashes      FlashSetter
	render       *Renderer
	log          *logrus.Logger
}

func NewApplicationHandler(applications *backend.ApplicationClient, users *backend.UserClient, sessions *session.Store, flashes FlashSetter, render *Renderer, log *logrus.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		applications: applications,
		users:        users,
		sessions:     sessions,
		flashes:      flashes,
		render:       render,
		log:          log,
	}
}

// GET /seller-application
//
// The stored identity can be stale after an admin approves the application,
// so the page re-fetches the user and refreshes the session when the role
// changed.
func (h *ApplicationHandler) ApplicationPage(c *gin.Context) {
	identity := mustIdentity(c)

	if identity.Role == models.RoleStudent {
		if fresh, err := h.users.GetUserByEmail(c.Request.Context(), identity.Email); err == nil && fresh.Role != identity.Role {
			if err := h.sessions.Save(c, fresh); err != nil {
				h.log.WithError(err).WithField("user_id", fresh.UserID).Warn("Failed to refresh session after role change")
			}
			identity = fresh
			c.Set(middleware.ContextIdentity, fresh)
		}
	}

	h.render.HTML(c, http.StatusOK, "seller_application.html", gin.H{
		"User":          identity,
		"AlreadySeller": identity.Role == models.RoleSeller || identity.Role == models.RoleAdmin,
	})
}

// POST /seller-application
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	identity := mustIdentity(c)

	if identity.Role == models.RoleSeller {
		h.render.HTML(c, http.StatusBadRequest, "seller_application.html", gin.H{
			"User":          identity,
			"AlreadySeller": true,
			"Error":         "You are already a seller!",
		})
		return
	}

	payload := &models.ApplicationPayload{
		ApplicationStatus: models.ApplicationStatusPending,
		ApplicationDate:   time.Now().Format(models.DateLayout),
		User:              &models.UserRef{UserID: identity.UserID},
	}

	if _, err := h.applications.CreateSellerApplication(c.Request.Context(), payload); err != nil {
		h.render.HTML(c, http.StatusBadGateway, "seller_application.html", gin.H{
			"User":  identity,
			"Error": err.Error(),
		})
		return
	}

	h.flashes.Set(c, "success", "Application submitted. An admin will review it shortly.")
	c.Redirect(http.StatusFound, "/home")
}
