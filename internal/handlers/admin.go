// internal/handlers/admin.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/appdevg6/boost-web/internal/backend"
	"github.com/appdevg6/boost-web/internal/models"
	"github.com/appdevg6/boost-web/internal/viewstate"
)

type AdminHandler struct {
	applications *backend.ApplicationClient
	list         *viewstate.RemoteList[models.SellerApplication]
	flashes      FlashSetter
	render       *Renderer
}

func NewAdminHandler(applications *backend.ApplicationClient, flashes FlashSetter, render *Renderer) *AdminHandler {
	return &AdminHandler{
		applications: applications,
		list:         viewstate.NewRemoteList(applications.GetAllApplications),
		flashes:      flashes,
		render:       render,
	}
}

// GET /admin — seller applications with a status tab filter, Pending default.
func (h *AdminHandler) Panel(c *gin.Context) {
	h.list.Load(c.Request.Context())

	errMsg := ""
	if h.list.Err() != "" {
		errMsg = "Failed to fetch applications"
	}

	status := c.DefaultQuery("status", string(models.ApplicationStatusPending))
	filtered := viewstate.ByField(h.list.Items(), status, func(a models.SellerApplication) string {
		return string(a.ApplicationStatus)
	})

	h.render.HTML(c, http.StatusOK, "admin.html", gin.H{
		"Applications": filtered,
		"Status":       status,
		"Tabs":         []string{"Pending", "Approved", "Rejected", "All"},
		"Error":        errMsg,
	})
}

// POST /admin/applications/:id/approve
func (h *AdminHandler) Approve(c *gin.Context) {
	h.decide(c, "approve")
}

// POST /admin/applications/:id/reject
func (h *AdminHandler) Reject(c *gin.Context) {
	h.decide(c, "reject")
}

func (h *AdminHandler) decide(c *gin.Context, action string) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	if !confirmed(c) {
		h.flashes.Set(c, "error", "This action requires confirmation.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	ctx := c.Request.Context()
	if action == "approve" {
		err = h.applications.Approve(ctx, id)
	} else {
		err = h.applications.Reject(ctx, id)
	}

	if err != nil {
		h.flashes.Set(c, "error", err.Error())
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	// Resync so the panel reflects the new status.
	h.list.Refresh(ctx)

	if action == "approve" {
		h.flashes.Set(c, "success", "Application approved! User is now a seller.")
	} else {
		h.flashes.Set(c, "success", "Application rejected.")
	}
	c.Redirect(http.StatusFound, "/admin")
}
