// internal/backend/recommendations.go
package backend

import (
	"context"
	"net/http"
	"strconv"

	"github.com/appdevg6/boost-web/internal/models"
)

// RecommendationClient talks to /recommendations.
type RecommendationClient struct {
	core *Client
}

func NewRecommendationClient(core *Client) *RecommendationClient {
	return &RecommendationClient{core: core}
}

func (c *RecommendationClient) GetAll(ctx context.Context) ([]models.Recommendation, error) {
	var recs []models.Recommendation
	if err := c.core.do(ctx, http.MethodGet, "/recommendations", nil, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (c *RecommendationClient) GetByProduct(ctx context.Context, productID int) ([]models.Recommendation, error) {
	var recs []models.Recommendation
	if err := c.core.do(ctx, http.MethodGet, "/recommendations/product/"+strconv.Itoa(productID), nil, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (c *RecommendationClient) Create(ctx context.Context, payload *models.RecommendationPayload) (*models.Recommendation, error) {
	var created models.Recommendation
	if err := c.core.do(ctx, http.MethodPost, "/recommendations/create", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *RecommendationClient) Delete(ctx context.Context, id int) error {
	return c.core.do(ctx, http.MethodDelete, "/recommendations/"+strconv.Itoa(id), nil, nil)
}
