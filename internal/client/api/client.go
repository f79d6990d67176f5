// Package api implements the primary backend client: JSON over HTTP against
// the resource-oriented Orwel REST API (/auth/*, /users/me, /{kind}/by-tags,
// /countries*, /news/*).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/orwel/orwel-cli/internal/httpx"
	"github.com/orwel/orwel-cli/internal/logging"
	"github.com/orwel/orwel-cli/internal/shared"
)

// Client talks to the primary REST backend. It is safe for concurrent use
// by independent per-action workers.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger

	mu      sync.RWMutex
	token   string
	newsKey string
}

// New returns a Client for the backend at baseURL (including the API
// prefix, e.g. "http://localhost:8080/api").
func New(baseURL string, connectTimeout, requestTimeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    httpx.NewClient(connectTimeout, requestTimeout),
		log:     log.With("component", "api"),
	}
}

// SetAuthToken installs the bearer token attached to subsequent requests.
// An empty string clears it.
func (c *Client) SetAuthToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) authToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetNewsAPIKey installs the upstream news-provider key the backend expects
// on /news/* requests. Optional; unset means the backend uses its own key.
func (c *Client) SetNewsAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.newsKey = key
}

func (c *Client) newsAPIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.newsKey
}

// newRequest builds a JSON request against path (which must start with "/").
// Every request carries a fresh X-Request-Id for log correlation.
func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.authToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if key := c.newsAPIKey(); key != "" && strings.HasPrefix(path, "/news") {
		req.Header.Set("X-News-Api-Key", key)
	}
	return req, nil
}

// do executes req and decodes the JSON reply into out (skipped when out is
// nil). Transport failures map to shared.ErrUnavailable so the caller can
// fail over to the next tier; HTTP 401 maps to shared.ErrUnauthorized,
// which is terminal for the attempt.
func (c *Client) do(req *http.Request, out any) error {
	c.log.Debug(req.Context(), "backend request", "method", req.Method, "url", req.URL.String())
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		_, _ = io.Copy(io.Discard, resp.Body)
		return shared.ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("backend returned %s", resp.Status)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode backend response: %w", err)
	}
	return nil
}

// getJSON is the common GET helper.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// Ping checks backend reachability with a cheap unauthenticated read.
func (c *Client) Ping(ctx context.Context) error {
	return c.getJSON(ctx, "/countries", nil)
}
