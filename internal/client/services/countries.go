package services

import (
	"context"

	"github.com/orwel/orwel-cli/internal/client/api"
	"github.com/orwel/orwel-cli/internal/client/models"
	"github.com/orwel/orwel-cli/internal/logging"
)

// CountryService serves the jurisdiction views from the primary backend.
type CountryService struct {
	backend *api.Client
	log     logging.Logger
}

func NewCountryService(backend *api.Client, log logging.Logger) *CountryService {
	return &CountryService{backend: backend, log: log.With("component", "countries")}
}

// All returns every tracked jurisdiction, empty when unreachable.
func (s *CountryService) All(ctx context.Context) []models.Country {
	out, err := s.backend.Countries(ctx)
	if err != nil {
		s.log.Warn(ctx, "countries unavailable", "error", err)
		return []models.Country{}
	}
	if out == nil {
		return []models.Country{}
	}
	return out
}

// ByCode returns one jurisdiction; errors surface because the caller asked
// for a specific record.
func (s *CountryService) ByCode(ctx context.Context, code string) (*models.Country, error) {
	return s.backend.CountryByCode(ctx, code)
}

// Warnings returns the advisories for a jurisdiction, empty when unreachable.
func (s *CountryService) Warnings(ctx context.Context, code string) []models.Warning {
	out, err := s.backend.WarningsForCountry(ctx, code)
	if err != nil {
		s.log.Warn(ctx, "warnings unavailable", "country", code, "error", err)
		return []models.Warning{}
	}
	if out == nil {
		return []models.Warning{}
	}
	return out
}
