// internal/backend/products.go
package backend

import (
	"context"
	"net/http"
	"strconv"

	"github.com/appdevg6/boost-web/internal/models"
)

// ProductClient talks to /products.
type ProductClient struct {
	core *Client
}

func NewProductClient(core *Client) *ProductClient {
	return &ProductClient{core: core}
}

func (c *ProductClient) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.core.do(ctx, http.MethodGet, "/products/getAllProducts", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *ProductClient) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := c.core.do(ctx, http.MethodGet, "/products/getProductById/"+strconv.Itoa(id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *ProductClient) GetProductsByUser(ctx context.Context, userID int) ([]models.Product, error) {
	var products []models.Product
	if err := c.core.do(ctx, http.MethodGet, "/products/getProductsByUser/"+strconv.Itoa(userID), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *ProductClient) CreateProduct(ctx context.Context, payload *models.ProductPayload) (*models.Product, error) {
	var created models.Product
	if err := c.core.do(ctx, http.MethodPost, "/products/createProduct", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *ProductClient) UpdateProduct(ctx context.Context, id int, payload *models.ProductPayload) (*models.Product, error) {
	var updated models.Product
	if err := c.core.do(ctx, http.MethodPut, "/products/updateProduct/"+strconv.Itoa(id), payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *ProductClient) DeleteProduct(ctx context.Context, id int) error {
	return c.core.do(ctx, http.MethodDelete, "/products/deleteProduct/"+strconv.Itoa(id), nil, nil)
}
