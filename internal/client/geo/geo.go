// Package geo resolves free-text addresses to coordinates via a
// Nominatim-compatible geocoding service. It enriches profiles only; the
// client works fully without it.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/orwel/orwel-cli/internal/client/models"
	"github.com/orwel/orwel-cli/internal/httpx"
	"github.com/orwel/orwel-cli/internal/logging"
	"github.com/orwel/orwel-cli/internal/shared"
)

// Client calls the geocoding service. An empty base URL disables it.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     logging.Logger
}

func New(baseURL, apiKey string, connectTimeout, requestTimeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    httpx.NewClient(connectTimeout, requestTimeout),
		log:     log.With("component", "geo"),
	}
}

// Configured reports whether a service endpoint is set.
func (c *Client) Configured() bool {
	return c.baseURL != ""
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		CountryCode string `json:"country_code"`
		State       string `json:"state"`
		City        string `json:"city"`
	} `json:"address"`
}

// Locate geocodes a free-text address. It returns shared.ErrNotFound when
// the service yields no match.
func (c *Client) Locate(ctx context.Context, address string) (*models.LocationInfo, error) {
	if !c.Configured() {
		return nil, shared.ErrNotConfigured
	}

	params := url.Values{}
	params.Set("q", address)
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("limit", "1")
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("geocoding service returned %s", resp.Status)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode geocoding response: %w", err)
	}
	if len(results) == 0 {
		return nil, shared.ErrNotFound
	}

	r := results[0]
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parse latitude %q: %w", r.Lat, err)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parse longitude %q: %w", r.Lon, err)
	}

	return &models.LocationInfo{
		Latitude:         lat,
		Longitude:        lon,
		FormattedAddress: r.DisplayName,
		CountryCode:      strings.ToUpper(r.Address.CountryCode),
		Region:           r.Address.State,
		City:             r.Address.City,
	}, nil
}
