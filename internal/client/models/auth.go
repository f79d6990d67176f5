package models

// LoginRequest carries the credentials for /auth/login. Username may hold
// either a username or an email address.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is the reply of both auth backends. The primary backend sets
// Token; the direct PostgREST source sets AccessToken.
type AuthResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message,omitempty"`
	Token       string `json:"token,omitempty"`
	AccessToken string `json:"access_token,omitempty"`
	User        *User  `json:"user,omitempty"`
}

// BearerToken returns whichever token field the answering backend populated.
func (r *AuthResponse) BearerToken() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}
