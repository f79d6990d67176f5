package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orwel/orwel-cli/internal/client/api"
	"github.com/orwel/orwel-cli/internal/client/models"
	"github.com/orwel/orwel-cli/internal/client/postgrest"
	"github.com/orwel/orwel-cli/internal/client/repositories/users"
	"github.com/orwel/orwel-cli/internal/logging"
	"github.com/orwel/orwel-cli/internal/shared"
)

// memRepo is an in-memory users.Repository for wiring the services without
// a database.
type memRepo struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
	secrets map[string]string
	tokens  map[string]string
}

var _ users.Repository = (*memRepo)(nil)

func newMemRepo() *memRepo {
	return &memRepo{
		byEmail: map[string]*models.User{},
		secrets: map[string]string{},
		tokens:  map[string]string{},
	}
}

func (m *memRepo) SaveUser(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *u
	if prev, ok := m.byEmail[u.Email]; ok {
		cp.CommodityTags = prev.CommodityTags
		if cp.Password == "" {
			// keep stored secret
		} else {
			m.secrets[u.Email] = cp.Password
		}
	} else if cp.Password != "" {
		m.secrets[u.Email] = cp.Password
	}
	cp.Password = ""
	m.byEmail[u.Email] = &cp
	return nil
}

func (m *memRepo) SaveTags(_ context.Context, email string, tags []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byEmail[email]
	if !ok {
		return shared.ErrNotFound
	}
	cp := append([]string(nil), tags...)
	sort.Strings(cp)
	u.CommodityTags = cp
	return nil
}

func (m *memRepo) UserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byEmail[email]
	if !ok {
		return nil, shared.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memRepo) UserByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byEmail {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *memRepo) SaveToken(_ context.Context, email, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEmail[email]; !ok {
		return shared.ErrNotFound
	}
	m.tokens[email] = token
	return nil
}

func (m *memRepo) VerifySecret(_ context.Context, email, secret string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEmail[email]; !ok {
		return false, shared.ErrNotFound
	}
	return m.secrets[email] == secret, nil
}

func deadBackend(t *testing.T) *api.Client {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	return api.New(srv.URL+"/api", time.Second, time.Second, logging.Discard())
}

func unconfiguredDirect() *postgrest.Client {
	return postgrest.New("", "", time.Second, time.Second, logging.Discard())
}

func liveBackend(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.New(srv.URL+"/api", time.Second, 5*time.Second, logging.Discard())
}

func liveDirect(t *testing.T, handler http.Handler) *postgrest.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return postgrest.New(srv.URL, "anon-key", time.Second, 5*time.Second, logging.Discard())
}

func TestContent_DirectTierWins(t *testing.T) {
	backendCalled := false
	backend := liveBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendCalled = true
		_, _ = w.Write([]byte(`[]`))
	}))
	direct := liveDirect(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/tag"):
			_, _ = w.Write([]byte(`[{"tag_id":1}]`))
		default:
			_, _ = w.Write([]byte(`[{"leg_id":3,"title":"Direct Act"}]`))
		}
	}))

	svc := NewContentService(direct, backend, &Session{}, newMemRepo(), logging.Discard())
	got := svc.LegislationByTags(context.Background(), []string{"oil"})

	require.Len(t, got, 1)
	assert.Equal(t, "Direct Act", got[0].Title)
	assert.False(t, backendCalled, "backend must not be consulted when the direct tier succeeds")
}

func TestContent_EmptyDirectResultIsAuthoritative(t *testing.T) {
	backendCalled := false
	backend := liveBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendCalled = true
		_, _ = w.Write([]byte(`[{"legId":99,"title":"Backend Act"}]`))
	}))
	direct := liveDirect(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`)) // no tags match
	}))

	svc := NewContentService(direct, backend, &Session{}, newMemRepo(), logging.Discard())
	got := svc.LegislationByTags(context.Background(), []string{"nosuchtag"})

	assert.Empty(t, got)
	assert.False(t, backendCalled, "an authoritative empty result must not fall through")
}

func TestContent_FallsBackToBackend(t *testing.T) {
	backend := liveBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/nominations/by-tags", r.URL.Path)
		_, _ = w.Write([]byte(`[{"nomId":5,"positionTitle":"Secretary"}]`))
	}))

	svc := NewContentService(unconfiguredDirect(), backend, &Session{}, newMemRepo(), logging.Discard())
	got := svc.NominationsByTags(context.Background(), []string{"gold"})

	require.Len(t, got, 1)
	assert.Equal(t, "Secretary", got[0].PositionTitle)
}

func TestContent_AllTiersDownYieldsEmpty(t *testing.T) {
	svc := NewContentService(unconfiguredDirect(), deadBackend(t), &Session{}, newMemRepo(), logging.Discard())

	got := svc.HearingsByTags(context.Background(), []string{"oil"})
	assert.NotNil(t, got)
	assert.Empty(t, got)

	items := svc.ByTags(context.Background(), models.KindTreaties, []string{"oil"})
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestContent_ByTagsBuildsItems(t *testing.T) {
	backend := liveBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/committees/by-tags", r.URL.Path)
		_, _ = w.Write([]byte(`[{"comId":1,"name":"Banking"}]`))
	}))

	svc := NewContentService(unconfiguredDirect(), backend, &Session{}, newMemRepo(), logging.Discard())
	items := svc.ByTags(context.Background(), models.KindCommittees, []string{"oil"})

	require.Len(t, items, 1)
	assert.Equal(t, models.KindCommittees, items[0].Kind)
	assert.Equal(t, "Banking", items[0].Title())
}

func authBackend(t *testing.T, password string) *api.Client {
	return liveBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != password {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			Success: true,
			Token:   "jwt-1",
			User: &models.User{
				Username:      "alice",
				Email:         "alice@example.com",
				CommodityTags: []string{"oil", "gold"},
			},
		})
	}))
}

func TestLogin_OnlineWritesThrough(t *testing.T) {
	repo := newMemRepo()
	session := &Session{}
	svc := NewAuthService(authBackend(t, "s3cret"), unconfiguredDirect(), repo, session, logging.Discard())

	user, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.True(t, session.LoggedIn())
	assert.False(t, session.Offline())
	assert.Equal(t, "jwt-1", session.Token())

	cached, err := repo.UserByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"gold", "oil"}, cached.CommodityTags)

	ok, err := repo.VerifySecret(context.Background(), "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.True(t, ok, "online login must cache the secret for later offline use")
}

func TestLogin_RejectionIsTerminal(t *testing.T) {
	repo := newMemRepo()
	// A cached account with the attempted password exists; it must not be
	// consulted after a definitive rejection.
	require.NoError(t, repo.SaveUser(context.Background(), &models.User{
		Username: "alice", Email: "alice@example.com", Password: "wrong",
	}))

	session := &Session{}
	svc := NewAuthService(authBackend(t, "s3cret"), unconfiguredDirect(), repo, session, logging.Discard())

	_, err := svc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, shared.ErrUnauthorized)
	assert.False(t, session.LoggedIn())
}

func TestLogin_OutageFallsBackToCache(t *testing.T) {
	repo := newMemRepo()
	require.NoError(t, users.EnsureDemoUser(context.Background(), repo))

	session := &Session{}
	svc := NewAuthService(deadBackend(t), unconfiguredDirect(), repo, session, logging.Discard())

	user, err := svc.Login(context.Background(), users.DemoEmail, users.DemoPassword)
	require.NoError(t, err)
	assert.Equal(t, users.DemoEmail, user.Email)
	assert.True(t, session.Offline())
	assert.Empty(t, session.Token())

	svc.Logout(context.Background())
	assert.False(t, session.LoggedIn())
}

func TestLogin_OutageByUsername(t *testing.T) {
	repo := newMemRepo()
	require.NoError(t, users.EnsureDemoUser(context.Background(), repo))

	svc := NewAuthService(deadBackend(t), unconfiguredDirect(), repo, &Session{}, logging.Discard())

	user, err := svc.Login(context.Background(), "demo", users.DemoPassword)
	require.NoError(t, err)
	assert.Equal(t, users.DemoEmail, user.Email)
}

func TestLogin_OutageWrongCachedSecret(t *testing.T) {
	repo := newMemRepo()
	require.NoError(t, users.EnsureDemoUser(context.Background(), repo))

	svc := NewAuthService(deadBackend(t), unconfiguredDirect(), repo, &Session{}, logging.Discard())

	_, err := svc.Login(context.Background(), users.DemoEmail, "nope")
	assert.ErrorIs(t, err, shared.ErrUnauthorized)
}

func TestLogin_OutageNoCachedAccount(t *testing.T) {
	svc := NewAuthService(deadBackend(t), unconfiguredDirect(), newMemRepo(), &Session{}, logging.Discard())

	_, err := svc.Login(context.Background(), "ghost@example.com", "pw")
	assert.ErrorIs(t, err, shared.ErrUnavailable)
}

func TestLogin_DirectSourceTier(t *testing.T) {
	direct := liveDirect(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/token", r.URL.Path)
		_, _ = w.Write([]byte(`{"access_token":"sb-token"}`))
	}))

	session := &Session{}
	svc := NewAuthService(deadBackend(t), direct, newMemRepo(), session, logging.Discard())

	user, err := svc.Login(context.Background(), "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.False(t, session.Offline())
	assert.Equal(t, "sb-token", session.Token())
}

func TestRegister_OutageCreatesCachedAccount(t *testing.T) {
	repo := newMemRepo()
	session := &Session{}
	svc := NewAuthService(deadBackend(t), unconfiguredDirect(), repo, session, logging.Discard())

	user := &models.User{
		Username: "bob", Email: "bob@example.com", Password: "pw",
		CommodityTags: []string{"wheat"},
	}
	got, err := svc.Register(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", got.Email)
	assert.True(t, session.Offline())

	cached, err := repo.UserByEmail(context.Background(), "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"wheat"}, cached.CommodityTags)
}

func TestUserTags_OfflineUsesCache(t *testing.T) {
	repo := newMemRepo()
	require.NoError(t, users.EnsureDemoUser(context.Background(), repo))
	demo, err := repo.UserByEmail(context.Background(), users.DemoEmail)
	require.NoError(t, err)

	session := &Session{}
	session.Set(demo, "", true)
	svc := NewContentService(unconfiguredDirect(), deadBackend(t), session, repo, logging.Discard())

	tags, err := svc.UserTags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"agriculture", "gold", "oil", "technology"}, tags)
}

func TestUserTags_NotLoggedIn(t *testing.T) {
	svc := NewContentService(unconfiguredDirect(), deadBackend(t), &Session{}, newMemRepo(), logging.Discard())

	_, err := svc.UserTags(context.Background())
	assert.ErrorIs(t, err, shared.ErrNotLoggedIn)
}

func TestSessionTokenExpired(t *testing.T) {
	session := &Session{}
	assert.False(t, session.TokenExpired(), "empty session never expires")

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()}).SignedString([]byte("k"))
	require.NoError(t, err)
	session.Set(&models.User{Email: "a@b.c"}, expired, false)
	assert.True(t, session.TokenExpired())

	valid, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}).SignedString([]byte("k"))
	require.NoError(t, err)
	session.Set(&models.User{Email: "a@b.c"}, valid, false)
	assert.False(t, session.TokenExpired())
}
