package api

import (
	"context"
	"net/url"

	"github.com/orwel/orwel-cli/internal/client/models"
)

// PersonalizedNews returns news ranked against the authenticated user's
// profile and tags.
func (c *Client) PersonalizedNews(ctx context.Context) ([]models.NewsArticle, error) {
	var out []models.NewsArticle
	if err := c.getJSON(ctx, "/news/personalized", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GeneralNews returns the unpersonalized headline feed.
func (c *Client) GeneralNews(ctx context.Context) ([]models.NewsArticle, error) {
	var out []models.NewsArticle
	if err := c.getJSON(ctx, "/news/general", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// NewsByCountry returns news scoped to a jurisdiction.
func (c *Client) NewsByCountry(ctx context.Context, code string) ([]models.NewsArticle, error) {
	var out []models.NewsArticle
	if err := c.getJSON(ctx, "/news/country/"+url.PathEscape(code), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// NewsByRegion returns news scoped to a region.
func (c *Client) NewsByRegion(ctx context.Context, region string) ([]models.NewsArticle, error) {
	var out []models.NewsArticle
	if err := c.getJSON(ctx, "/news/region/"+url.PathEscape(region), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchNews runs a free-text query, optionally narrowed by country and
// region.
func (c *Client) SearchNews(ctx context.Context, query, country, region string) ([]models.NewsArticle, error) {
	params := url.Values{}
	params.Set("q", query)
	if country != "" {
		params.Set("country", country)
	}
	if region != "" {
		params.Set("region", region)
	}

	var out []models.NewsArticle
	if err := c.getJSON(ctx, "/news/search?"+params.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}
