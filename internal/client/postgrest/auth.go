package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/orwel/orwel-cli/internal/client/models"
	"github.com/orwel/orwel-cli/internal/shared"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates with the password grant of the auth endpoint. A 4xx
// reply maps to shared.ErrUnauthorized; on success the access token is
// installed for subsequent reads.
func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	resp, err := c.postAuth(ctx, "/auth/v1/token?grant_type=password", credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	c.SetAuthToken(resp.AccessToken)
	return resp, nil
}

// Register creates an account via the signup endpoint.
func (c *Client) Register(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	resp, err := c.postAuth(ctx, "/auth/v1/signup", credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if resp.AccessToken != "" {
		c.SetAuthToken(resp.AccessToken)
	}
	return resp, nil
}

func (c *Client) postAuth(ctx context.Context, path string, creds credentials) (*models.AuthResponse, error) {
	if !c.Configured() {
		return nil, shared.ErrNotConfigured
	}

	body, err := json.Marshal(creds)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, shared.ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("auth endpoint returned %s", resp.Status)
	}

	var out models.AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode auth response: %w", err)
	}
	out.Success = true
	return &out, nil
}
