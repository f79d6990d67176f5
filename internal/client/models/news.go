package models

import "time"

// NewsArticle is a news item fetched from the primary backend.
type NewsArticle struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	Content            string    `json:"content,omitempty"`
	Summary            string    `json:"summary,omitempty"`
	Source             string    `json:"source,omitempty"`
	Author             string    `json:"author,omitempty"`
	PublishedAt        time.Time `json:"publishedAt,omitempty"`
	URL                string    `json:"url,omitempty"`
	ImageURL           string    `json:"imageUrl,omitempty"`
	Tags               []string  `json:"tags,omitempty"`
	CountryCode        string    `json:"countryCode,omitempty"`
	Region             string    `json:"region,omitempty"`
	RelatedPoliticians []string  `json:"relatedPoliticians,omitempty"`
	Category           string    `json:"category,omitempty"` // personalized, general, politics, ...
	RelevanceScore     float64   `json:"relevanceScore,omitempty"`
}
