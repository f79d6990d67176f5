// Package postgrest implements the direct data-source client: reads against
// a PostgREST/Supabase REST surface (/rest/v1/{table}) plus the GoTrue auth
// endpoints (/auth/v1/*). It is the first tier consulted for content queries.
package postgrest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/orwel/orwel-cli/internal/httpx"
	"github.com/orwel/orwel-cli/internal/logging"
	"github.com/orwel/orwel-cli/internal/shared"
)

// Client queries a PostgREST endpoint. The zero base URL / API key pair marks
// the source as not configured; every call then fails fast with
// shared.ErrNotConfigured so callers move on to the next tier immediately.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     logging.Logger

	mu    sync.RWMutex
	token string
}

// New returns a Client for the PostgREST deployment at baseURL
// (e.g. "https://xyz.supabase.co").
func New(baseURL, apiKey string, connectTimeout, requestTimeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    httpx.NewClient(connectTimeout, requestTimeout),
		log:     log.With("component", "postgrest"),
	}
}

// Configured reports whether both the base URL and the API key are set.
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.apiKey != ""
}

// SetAuthToken installs a user token obtained from the auth endpoints. When
// unset, the API key doubles as the bearer token (anonymous access).
func (c *Client) SetAuthToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.token != "" {
		return c.token
	}
	return c.apiKey
}

// get queries /rest/v1/{table} with the given filter params and decodes the
// JSON array reply into out.
func (c *Client) get(ctx context.Context, table string, params url.Values, out any) error {
	if !c.Configured() {
		return shared.ErrNotConfigured
	}

	u := c.baseURL + "/rest/v1/" + table
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	c.log.Debug(ctx, "direct source query", "url", u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.bearer())
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("direct source returned %s for %s", resp.Status, table)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", table, err)
	}
	return nil
}

// inStrings renders a PostgREST in-list filter over quoted string values,
// e.g. in.("oil","gold").
func inStrings(vals []string) string {
	quoted := make([]string, len(vals))
	for i, v := range vals {
		quoted[i] = `"` + strings.ReplaceAll(v, `"`, ``) + `"`
	}
	return "in.(" + strings.Join(quoted, ",") + ")"
}

// inInts renders a PostgREST in-list filter over numeric values, e.g. in.(1,2).
func inInts(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return "in.(" + strings.Join(parts, ",") + ")"
}
