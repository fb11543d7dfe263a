// internal/backend/users.go
package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/appdevg6/boost-web/internal/models"
)

// UserClient talks to /api/users.
type UserClient struct {
	core *Client
}

func NewUserClient(core *Client) *UserClient {
	return &UserClient{core: core}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
	Error   string       `json:"error,omitempty"`
}

// Login exchanges credentials for the identity record. A 401 surfaces as an
// *APIError carrying the backend's "Invalid email or password" message.
func (c *UserClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	var resp loginResponse
	if err := c.core.do(ctx, http.MethodPost, "/api/users/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, &APIError{Code: KindHTTP, Message: "Request failed"}
	}
	return resp.User, nil
}

// Register creates a new account. The backend echoes the created entity.
func (c *UserClient) Register(ctx context.Context, payload *models.User) (*models.User, error) {
	var created models.User
	if err := c.core.do(ctx, http.MethodPost, "/api/users/register", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetUserByEmail re-fetches an identity, used to pick up role promotions
// after a seller application is approved.
func (c *UserClient) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := c.core.do(ctx, http.MethodGet, "/api/users/getUserByEmail/"+url.PathEscape(email), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
