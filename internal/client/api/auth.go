package api

import (
	"context"
	"net/http"

	"github.com/orwel/orwel-cli/internal/client/models"
	"github.com/orwel/orwel-cli/internal/shared"
)

// Login authenticates against /auth/login. The username field accepts either
// a username or an email address. A 401 reply surfaces as
// shared.ErrUnauthorized; on success the returned token is installed on the
// client for subsequent requests.
func (c *Client) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login", models.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var resp models.AuthResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, shared.ErrUnauthorized
	}

	c.SetAuthToken(resp.BearerToken())
	return &resp, nil
}

// Register creates an account via /auth/register and installs the returned
// token on success.
func (c *Client) Register(ctx context.Context, user *models.User) (*models.AuthResponse, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/register", user)
	if err != nil {
		return nil, err
	}

	var resp models.AuthResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, shared.ErrUnauthorized
	}

	c.SetAuthToken(resp.BearerToken())
	return &resp, nil
}
