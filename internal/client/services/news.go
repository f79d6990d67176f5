package services

import (
	"context"

	"github.com/orwel/orwel-cli/internal/client/api"
	"github.com/orwel/orwel-cli/internal/client/models"
	"github.com/orwel/orwel-cli/internal/logging"
)

// NewsService serves the news feeds. News is backend-only: there is no
// direct-source or cached representation, so an unreachable backend yields
// an empty feed.
type NewsService struct {
	backend *api.Client
	log     logging.Logger
}

func NewNewsService(backend *api.Client, log logging.Logger) *NewsService {
	return &NewsService{backend: backend, log: log.With("component", "news")}
}

func (s *NewsService) emptyOnError(ctx context.Context, what string, articles []models.NewsArticle, err error) []models.NewsArticle {
	if err != nil {
		s.log.Warn(ctx, "news unavailable", "what", what, "error", err)
		return []models.NewsArticle{}
	}
	if articles == nil {
		return []models.NewsArticle{}
	}
	return articles
}

// Personalized returns news ranked against the user's profile and tags.
func (s *NewsService) Personalized(ctx context.Context) []models.NewsArticle {
	out, err := s.backend.PersonalizedNews(ctx)
	return s.emptyOnError(ctx, "personalized", out, err)
}

// General returns the unpersonalized headline feed.
func (s *NewsService) General(ctx context.Context) []models.NewsArticle {
	out, err := s.backend.GeneralNews(ctx)
	return s.emptyOnError(ctx, "general", out, err)
}

// ByCountry returns news scoped to a jurisdiction.
func (s *NewsService) ByCountry(ctx context.Context, code string) []models.NewsArticle {
	out, err := s.backend.NewsByCountry(ctx, code)
	return s.emptyOnError(ctx, "country", out, err)
}

// ByRegion returns news scoped to a region.
func (s *NewsService) ByRegion(ctx context.Context, region string) []models.NewsArticle {
	out, err := s.backend.NewsByRegion(ctx, region)
	return s.emptyOnError(ctx, "region", out, err)
}

// Search runs a free-text query, optionally narrowed by country and region.
func (s *NewsService) Search(ctx context.Context, query, country, region string) []models.NewsArticle {
	out, err := s.backend.SearchNews(ctx, query, country, region)
	return s.emptyOnError(ctx, "search", out, err)
}
