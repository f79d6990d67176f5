package api

import (
	"context"
	"net/url"

	"github.com/orwel/orwel-cli/internal/client/models"
)

// Countries returns every tracked jurisdiction.
func (c *Client) Countries(ctx context.Context) ([]models.Country, error) {
	var out []models.Country
	if err := c.getJSON(ctx, "/countries", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountryByCode returns a single jurisdiction by ISO code.
func (c *Client) CountryByCode(ctx context.Context, code string) (*models.Country, error) {
	var country models.Country
	if err := c.getJSON(ctx, "/countries/"+url.PathEscape(code), &country); err != nil {
		return nil, err
	}
	return &country, nil
}

// WarningsForCountry returns the advisories active for a jurisdiction.
func (c *Client) WarningsForCountry(ctx context.Context, code string) ([]models.Warning, error) {
	var out []models.Warning
	if err := c.getJSON(ctx, "/countries/"+url.PathEscape(code)+"/warnings", &out); err != nil {
		return nil, err
	}
	return out, nil
}
