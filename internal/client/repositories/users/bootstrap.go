package users

import (
	"context"
	"errors"

	"github.com/orwel/orwel-cli/internal/client/models"
	"github.com/orwel/orwel-cli/internal/shared"
)

// Fixed demo account so the offline login path is always exercisable
// without a prior registration.
const (
	DemoEmail    = "demo@orwel.com"
	DemoPassword = "demo123"
)

var demoTags = []string{"oil", "gold", "technology", "agriculture"}

// EnsureDemoUser creates the demo account on first run. It is a no-op when
// the account already exists, so repeated startups never reset a modified
// demo profile.
func EnsureDemoUser(ctx context.Context, repo Repository) error {
	_, err := repo.UserByEmail(ctx, DemoEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	demo := &models.User{
		Username:   "demo",
		Email:      DemoEmail,
		Password:   DemoPassword,
		FirstName:  "Demo",
		LastName:   "User",
		Occupation: "Trader",
		HasStocks:  true,
	}
	if err := repo.SaveUser(ctx, demo); err != nil {
		return err
	}
	return repo.SaveTags(ctx, DemoEmail, demoTags)
}
