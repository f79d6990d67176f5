package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/orwel/orwel-cli/internal/client/api"
	"github.com/orwel/orwel-cli/internal/client/models"
	"github.com/orwel/orwel-cli/internal/client/postgrest"
	"github.com/orwel/orwel-cli/internal/client/repositories/users"
	"github.com/orwel/orwel-cli/internal/logging"
	"github.com/orwel/orwel-cli/internal/shared"
)

// AuthService owns login, registration and profile persistence across the
// three tiers. Authentication order differs from reads: the primary backend
// is authoritative for credentials, the direct source is only consulted when
// the backend is unreachable, and the local cache is the last resort for
// fully offline sessions.
type AuthService struct {
	backend *api.Client
	direct  *postgrest.Client
	users   users.Repository
	session *Session
	log     logging.Logger
}

func NewAuthService(backend *api.Client, direct *postgrest.Client, repo users.Repository, session *Session, log logging.Logger) *AuthService {
	return &AuthService{
		backend: backend,
		direct:  direct,
		users:   repo,
		session: session,
		log:     log.With("component", "auth"),
	}
}

// Session exposes the session state for presentation code.
func (s *AuthService) Session() *Session {
	return s.session
}

// CurrentUser returns the logged-in user or shared.ErrNotLoggedIn.
func (s *AuthService) CurrentUser() (*models.User, error) {
	user := s.session.User()
	if user == nil {
		return nil, shared.ErrNotLoggedIn
	}
	return user, nil
}

// Login authenticates with identifier (username or email) and password.
//
// A definitive credential rejection by the primary backend is terminal: the
// local cache is NOT consulted, so a wrong password cannot be laundered into
// an offline session. Only when the backend is unreachable does the attempt
// degrade, first to the direct source (email logins only), then to the
// cached account.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*models.User, error) {
	resp, err := s.backend.Login(ctx, identifier, password)
	if err == nil {
		return s.completeRemoteLogin(ctx, resp, password, false)
	}
	if errors.Is(err, shared.ErrUnauthorized) {
		return nil, err
	}
	s.log.Warn(ctx, "backend login unavailable, degrading", "error", err)

	if strings.Contains(identifier, "@") {
		if resp, derr := s.direct.Login(ctx, identifier, password); derr == nil {
			return s.completeDirectLogin(ctx, identifier, resp)
		} else if !errors.Is(derr, shared.ErrNotConfigured) {
			s.log.Warn(ctx, "direct source login failed", "error", derr)
		}
	}

	return s.loginFromCache(ctx, identifier, password)
}

// completeRemoteLogin installs the session and writes the account through to
// the local cache so a later offline login can succeed.
func (s *AuthService) completeRemoteLogin(ctx context.Context, resp *models.AuthResponse, password string, offline bool) (*models.User, error) {
	user := resp.User
	if user == nil {
		fetched, err := s.backend.FetchCurrentUser(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch profile after login: %w", err)
		}
		user = fetched
	}

	s.cacheAccount(ctx, user, password, resp.BearerToken())
	s.session.Set(user, resp.BearerToken(), offline)
	s.direct.SetAuthToken("")
	s.log.Info(ctx, "login succeeded", "email", user.Email, "offline", offline)
	return user, nil
}

// completeDirectLogin builds a session from a direct-source token, hydrating
// the profile from the cache when one exists.
func (s *AuthService) completeDirectLogin(ctx context.Context, email string, resp *models.AuthResponse) (*models.User, error) {
	user, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			s.log.Warn(ctx, "cache lookup after direct login failed", "error", err)
		}
		user = &models.User{Email: email, Username: email}
	}

	s.session.Set(user, resp.BearerToken(), false)
	s.log.Info(ctx, "direct source login succeeded", "email", email)
	return user, nil
}

// loginFromCache is the offline path: verify the secret against the cached
// account and start a token-less session.
func (s *AuthService) loginFromCache(ctx context.Context, identifier, password string) (*models.User, error) {
	var (
		user *models.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.users.UserByEmail(ctx, identifier)
	} else {
		user, err = s.users.UserByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, fmt.Errorf("%w: no remote source reachable and no cached account", shared.ErrUnavailable)
		}
		return nil, err
	}

	ok, err := s.users.VerifySecret(ctx, user.Email, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, shared.ErrUnauthorized
	}

	s.session.Set(user, "", true)
	s.log.Info(ctx, "offline login from cache", "email", user.Email)
	return user, nil
}

// Register creates an account. When the backend is unreachable, the account
// is created locally so the user can keep working; it will exist remotely
// only after a later online registration.
func (s *AuthService) Register(ctx context.Context, user *models.User) (*models.User, error) {
	password := user.Password
	resp, err := s.backend.Register(ctx, user)
	if err == nil {
		return s.completeRemoteLogin(ctx, resp, password, false)
	}
	if !errors.Is(err, shared.ErrUnavailable) {
		return nil, err
	}
	s.log.Warn(ctx, "backend registration unavailable, creating cached account", "error", err)

	if err := s.users.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	if len(user.CommodityTags) > 0 {
		if err := s.users.SaveTags(ctx, user.Email, user.CommodityTags); err != nil {
			return nil, err
		}
	}
	s.session.Set(user, "", true)
	return user, nil
}

// UpdateUser persists profile changes. Online sessions save to the backend
// first and mirror the result to the cache; offline sessions save locally
// only.
func (s *AuthService) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if !s.session.LoggedIn() {
		return nil, shared.ErrNotLoggedIn
	}

	if s.session.Offline() {
		if err := s.users.SaveUser(ctx, user); err != nil {
			return nil, err
		}
		s.session.Set(user, "", true)
		return user, nil
	}

	updated, err := s.backend.UpdateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	s.cacheAccount(ctx, updated, "", s.session.Token())
	s.session.Set(updated, s.session.Token(), false)
	return updated, nil
}

// Logout drops the session and clears the tokens on both remote clients.
func (s *AuthService) Logout(ctx context.Context) {
	s.session.Clear()
	s.backend.SetAuthToken("")
	s.direct.SetAuthToken("")
	s.log.Info(ctx, "logged out")
}

// cacheAccount writes an account through to the local store. Cache failures
// are logged, never surfaced: a broken cache must not break an online login.
func (s *AuthService) cacheAccount(ctx context.Context, user *models.User, password, token string) {
	cached := *user
	cached.Password = password
	if err := s.users.SaveUser(ctx, &cached); err != nil {
		s.log.Warn(ctx, "caching account failed", "error", err)
		return
	}
	if len(user.CommodityTags) > 0 {
		if err := s.users.SaveTags(ctx, user.Email, user.CommodityTags); err != nil {
			s.log.Warn(ctx, "caching tags failed", "error", err)
		}
	}
	if token != "" {
		if err := s.users.SaveToken(ctx, user.Email, token); err != nil {
			s.log.Warn(ctx, "caching token failed", "error", err)
		}
	}
}
