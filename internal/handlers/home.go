// internal/handlers/home.go
package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/appdevg6/boost-web/internal/backend"
	"github.com/appdevg6/boost-web/internal/middleware"
	"github.com/appdevg6/boost-web/internal/models"
	"github.com/appdevg6/boost-web/internal/ratings"
	"github.com/appdevg6/boost-web/internal/viewstate"
)

// productCard is the home page's projection of a product joined with its
// aggregate rating and seller contact details.
type productCard struct {
	models.Product
	Rating      float64
	Seller      string
	SellerEmail string
	SellerPhone string
}

type HomeHandler struct {
	render          *Renderer
	products        *viewstate.RemoteList[models.Product]
	recommendations *viewstate.RemoteList[models.Recommendation]
}

func NewHomeHandler(products *backend.ProductClient, recommendations *backend.RecommendationClient, render *Renderer) *HomeHandler {
	return &HomeHandler{
		render:          render,
		products:        viewstate.NewRemoteList(products.GetAllProducts),
		recommendations: viewstate.NewRemoteList(recommendations.GetAll),
	}
}

// GET / — the anonymous landing page.
func (h *HomeHandler) Welcome(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "welcome.html", gin.H{})
}

// GET /home
func (h *HomeHandler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	h.products.Load(ctx)
	// Ratings degrade to the zero sentinel when the review fetch fails; the
	// product list still renders.
	h.recommendations.Load(ctx)

	errMsg := ""
	if h.products.Err() != "" {
		errMsg = "Failed to fetch products"
	}

	products := h.products.Items()
	averages := ratings.Aggregate(h.recommendations.Items())

	category := c.DefaultQuery("category", "All Categories")
	query := c.Query("q")

	filtered := viewstate.ByField(products, category, func(p models.Product) string {
		return p.ProductCategory
	})
	filtered = viewstate.Search(filtered, query, func(p models.Product) []string {
		return []string{p.ProductName, p.ProductDescription}
	})

	cards := make([]productCard, 0, len(filtered))
	for _, p := range filtered {
		card := productCard{
			Product: p,
			Rating:  ratings.For(averages, p.ProductID),
			Seller:  "Unknown Seller",
		}
		if p.User != nil {
			card.Seller = p.User.FullName()
			card.SellerEmail = p.User.Email
			card.SellerPhone = p.User.Phone
		}
		cards = append(cards, card)
	}

	h.render.HTML(c, http.StatusOK, "home.html", gin.H{
		"Products":   cards,
		"Categories": categoriesOf(products),
		"Category":   category,
		"Query":      query,
		"Error":      errMsg,
		"Count":      len(cards),
	})
}

// categoriesOf builds the dynamic category dropdown from the fetched list,
// "All Categories" first.
func categoriesOf(products []models.Product) []string {
	seen := make(map[string]struct{})
	for _, p := range products {
		if p.ProductCategory != "" {
			seen[p.ProductCategory] = struct{}{}
		}
	}
	categories := make([]string, 0, len(seen)+1)
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return append([]string{"All Categories"}, categories...)
}

// mustIdentity is a convenience for handlers behind AuthRequired.
func mustIdentity(c *gin.Context) *models.User {
	identity, _ := middleware.IdentityFromContext(c)
	return identity
}
