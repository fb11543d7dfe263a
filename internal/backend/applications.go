// internal/backend/applications.go
package backend

import (
	"context"
	"net/http"
	"strconv"

	"github.com/appdevg6/boost-web/internal/models"
)

// ApplicationClient talks to /seller-applications.
type ApplicationClient struct {
	core *Client
}

func NewApplicationClient(core *Client) *ApplicationClient {
	return &ApplicationClient{core: core}
}

func (c *ApplicationClient) CreateSellerApplication(ctx context.Context, payload *models.ApplicationPayload) (*models.SellerApplication, error) {
	var created models.SellerApplication
	if err := c.core.do(ctx, http.MethodPost, "/seller-applications/createSellerApplication", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *ApplicationClient) GetAllApplications(ctx context.Context) ([]models.SellerApplication, error) {
	var apps []models.SellerApplication
	if err := c.core.do(ctx, http.MethodGet, "/seller-applications/getAllApplications", nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// Approve transitions a pending application to Approved; the backend also
// promotes the applicant's role to SELLER as a side effect.
func (c *ApplicationClient) Approve(ctx context.Context, id int) error {
	return c.core.do(ctx, http.MethodPut, "/seller-applications/approve/"+strconv.Itoa(id), nil, nil)
}

func (c *ApplicationClient) Reject(ctx context.Context, id int) error {
	return c.core.do(ctx, http.MethodPut, "/seller-applications/reject/"+strconv.Itoa(id), nil, nil)
}
