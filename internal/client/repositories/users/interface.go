package users

import (
	"context"

	"github.com/orwel/orwel-cli/internal/client/models"
)

// Repository describes the local cache operations used by the auth fallback
// path and the write-through side effects of successful remote calls.
type Repository interface {
	// SaveUser upserts a user row by email, overwriting all mutable fields.
	// It never touches the user's tag rows.
	SaveUser(ctx context.Context, user *models.User) error

	// SaveTags replaces the user's entire tag set with the given one.
	// Blank tags are dropped; the rest are trimmed.
	SaveTags(ctx context.Context, email string, tags []string) error

	// UserByEmail and UserByUsername are point lookups that also hydrate
	// the user's tag set. They return shared.ErrNotFound when no row
	// matches.
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByUsername(ctx context.Context, username string) (*models.User, error)

	// SaveToken stores the last bearer token for the user, best effort.
	SaveToken(ctx context.Context, email, token string) error

	// VerifySecret checks the given secret against the stored one.
	VerifySecret(ctx context.Context, email, secret string) (bool, error)
}
