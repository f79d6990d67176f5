// Package services holds the data-access facade: it owns the session state
// and resolves every read and write across the tiered sources (direct
// PostgREST source, primary backend, local cache) in a fixed order.
package services

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/orwel/orwel-cli/internal/client/models"
)

// Session is the in-memory authentication state. All fields change together
// on login, logout and profile updates, so access goes through one mutex.
type Session struct {
	mu      sync.RWMutex
	user    *models.User
	token   string
	offline bool
}

// Set replaces the whole session wholesale.
func (s *Session) Set(user *models.User, token string, offline bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.token = token
	s.offline = offline
}

// Clear drops the session.
func (s *Session) Clear() {
	s.Set(nil, "", false)
}

// User returns the logged-in user, or nil.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Token returns the current bearer token, empty for offline sessions.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Offline reports whether the session was established against the local
// cache rather than a remote backend.
func (s *Session) Offline() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.offline
}

// LoggedIn reports whether a user is set.
func (s *Session) LoggedIn() bool {
	return s.User() != nil
}

// TokenExpired inspects the JWT expiry claim without verifying the
// signature; verification is the server's job, the client only needs to know
// when a re-login is due. Tokens without a parseable expiry never expire
// client-side. Offline sessions carry no token and report false.
func (s *Session) TokenExpired() bool {
	token := s.Token()
	if token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
