package api

import (
	"context"
	"net/http"

	"github.com/orwel/orwel-cli/internal/client/models"
)

// FetchCurrentUser returns the authenticated user's profile from /users/me.
func (c *Client) FetchCurrentUser(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.getJSON(ctx, "/users/me", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUser saves the profile via PUT /users/me and returns the updated
// server-side view.
func (c *Client) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	req, err := c.newRequest(ctx, http.MethodPut, "/users/me", user)
	if err != nil {
		return nil, err
	}

	var u models.User
	if err := c.do(req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UserTags returns the authenticated user's interest tags.
func (c *Client) UserTags(ctx context.Context) ([]string, error) {
	var tags []string
	if err := c.getJSON(ctx, "/user/tags", &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// SaveUserTags replaces the authenticated user's interest tags wholesale.
func (c *Client) SaveUserTags(ctx context.Context, tags []string) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/user/tags", tags)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
