// internal/handlers/reviews.go
package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/appdevg6/boost-web/internal/backend"
	"github.com/appdevg6/boost-web/internal/models"
)

// FlashSetter is the slice of the flash store mutation handlers need.
type FlashSetter interface {
	Set(c *gin.Context, kind, message string)
}

type ReviewHandler struct {
	products        *backend.ProductClient
	recommendations *backend.RecommendationClient
	flashes         FlashSetter
	render          *Renderer
}

func NewReviewHandler(products *backend.ProductClient, recommendations *backend.RecommendationClient, flashes FlashSetter, render *Renderer) *ReviewHandler {
	return &ReviewHandler{
		products:        products,
		recommendations: recommendations,
		flashes:         flashes,
		render:          render,
	}
}

// GET /home/products/:id/reviews
func (h *ReviewHandler) ReviewsPage(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/home")
		return
	}

	ctx := c.Request.Context()
	product, err := h.products.GetProductByID(ctx, productID)
	if err != nil {
		if backend.IsNotFound(err) {
			c.Redirect(http.StatusFound, "/home")
			return
		}
		h.render.HTML(c, http.StatusBadGateway, "reviews.html", gin.H{
			"Error": err.Error(),
		})
		return
	}

	reviews, err := h.recommendations.GetByProduct(ctx, productID)
	errMsg := ""
	if err != nil {
		errMsg = "Failed to load reviews"
		reviews = nil
	}

	identity := mustIdentity(c)
	h.render.HTML(c, http.StatusOK, "reviews.html", gin.H{
		"Product":         product,
		"Reviews":         reviews,
		"Error":           errMsg,
		"AlreadyReviewed": identity != nil && hasReviewBy(reviews, identity.UserID),
	})
}

// POST /home/products/:id/reviews
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/home")
		return
	}
	identity := mustIdentity(c)
	ctx := c.Request.Context()

	message := strings.TrimSpace(c.PostForm("message"))
	rating, ratingErr := strconv.Atoi(c.PostForm("rating"))

	reviewsPath := "/home/products/" + strconv.Itoa(productID) + "/reviews"

	if message == "" {
		h.flashes.Set(c, "error", "Please enter a review message.")
		c.Redirect(http.StatusFound, reviewsPath)
		return
	}
	if ratingErr != nil || rating < 1 || rating > 5 {
		h.flashes.Set(c, "error", "Rating must be between 1 and 5.")
		c.Redirect(http.StatusFound, reviewsPath)
		return
	}

	// One review per (author, product): checked against the current review
	// list before the create call fires.
	existing, err := h.recommendations.GetByProduct(ctx, productID)
	if err != nil {
		h.flashes.Set(c, "error", "Failed to load reviews")
		c.Redirect(http.StatusFound, reviewsPath)
		return
	}
	if hasReviewBy(existing, identity.UserID) {
		h.flashes.Set(c, "error", "You have already submitted a review for this product.")
		c.Redirect(http.StatusFound, reviewsPath)
		return
	}

	payload := &models.RecommendationPayload{
		UserID:        identity.UserID,
		ProductID:     productID,
		Message:       message,
		Rating:        rating,
		DateGenerated: time.Now().Format(models.DateLayout),
	}
	if _, err := h.recommendations.Create(ctx, payload); err != nil {
		h.flashes.Set(c, "error", err.Error())
	} else {
		h.flashes.Set(c, "success", "Review submitted.")
	}
	c.Redirect(http.StatusFound, reviewsPath)
}

// POST /home/products/:id/reviews/:rid/delete
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/home")
		return
	}
	reviewID, err := strconv.Atoi(c.Param("rid"))
	reviewsPath := "/home/products/" + strconv.Itoa(productID) + "/reviews"
	if err != nil {
		c.Redirect(http.StatusFound, reviewsPath)
		return
	}

	if !confirmed(c) {
		h.flashes.Set(c, "error", "Deletion requires confirmation.")
		c.Redirect(http.StatusFound, reviewsPath)
		return
	}

	identity := mustIdentity(c)
	ctx := c.Request.Context()

	// Author-only: verify ownership against the fetched list before deleting.
	reviews, err := h.recommendations.GetByProduct(ctx, productID)
	if err != nil {
		h.flashes.Set(c, "error", "Failed to load reviews")
		c.Redirect(http.StatusFound, reviewsPath)
		return
	}
	if !ownsReview(reviews, reviewID, identity.UserID) {
		h.flashes.Set(c, "error", "You can only delete your own review.")
		c.Redirect(http.StatusFound, reviewsPath)
		return
	}

	if err := h.recommendations.Delete(ctx, reviewID); err != nil {
		h.flashes.Set(c, "error", err.Error())
	} else {
		h.flashes.Set(c, "success", "Review deleted.")
	}
	c.Redirect(http.StatusFound, reviewsPath)
}

func hasReviewBy(reviews []models.Recommendation, userID int) bool {
	for _, r := range reviews {
		if r.AuthorID() == userID {
			return true
		}
	}
	return false
}

func ownsReview(reviews []models.Recommendation, reviewID, userID int) bool {
	for _, r := range reviews {
		if r.RecommendationID == reviewID {
			return r.AuthorID() == userID
		}
	}
	return false
}
