// internal/handlers/api.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/appdevg6/boost-web/internal/backend"
	"github.com/appdevg6/boost-web/internal/models"
	"github.com/appdevg6/boost-web/internal/ratings"
	"github.com/appdevg6/boost-web/internal/utils"
	"github.com/appdevg6/boost-web/internal/viewstate"
)

// APIHandler serves the JSON endpoints page scripts poll for live search and
// rating refresh without a full page reload.
type APIHandler struct {
	products        *backend.ProductClient
	recommendations *backend.RecommendationClient
}

func NewAPIHandler(products *backend.ProductClient, recommendations *backend.RecommendationClient) *APIHandler {
	return &APIHandler{
		products:        products,
		recommendations: recommendations,
	}
}

// GET /api/products?q=&category=&limit=
func (h *APIHandler) Products(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			utils.BadRequestResponse(c, "limit must be a positive integer", nil)
			return
		}
		limit = n
	}

	products, err := h.products.GetAllProducts(c.Request.Context())
	if err != nil {
		utils.BadGatewayResponse(c, err.Error())
		return
	}

	filtered := viewstate.ByField(products, c.DefaultQuery("category", "All Categories"), func(p models.Product) string {
		return p.ProductCategory
	})
	filtered = viewstate.Search(filtered, c.Query("q"), func(p models.Product) []string {
		return []string{p.ProductName, p.ProductDescription}
	})
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}

	utils.SuccessResponse(c, gin.H{
		"products": filtered,
		"count":    len(filtered),
	})
}

// GET /api/ratings
func (h *APIHandler) Ratings(c *gin.Context) {
	reviews, err := h.recommendations.GetAll(c.Request.Context())
	if err != nil {
		utils.BadGatewayResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"ratings": ratings.Aggregate(reviews),
	})
}
