package jellyfin

import "sync"

// AuthUser is the authenticated identity used to scope requests.
type AuthUser struct {
	ID       string `json:"id" mapstructure:"user_id"`
	Name     string `json:"name" mapstructure:"user_name"`
	ServerID string `json:"server_id" mapstructure:"server_id"`
	DeviceID string `json:"device_id" mapstructure:"device_id"`
	Token    string `json:"token" mapstructure:"token"`
}

// Session holds the current AuthUser of a client. Reads and writes are
// serialized, but two Authorize calls racing on the same session still
// resolve as last writer wins.
type Session struct {
	mu   sync.RWMutex
	user *AuthUser
}

// NewSession returns a session seeded with user, which may be nil.
func NewSession(user *AuthUser) *Session {
	s := &Session{}
	if user != nil {
		u := *user
		s.user = &u
	}
	return s
}

// Get returns a copy of the current user, or nil when unauthenticated.
func (s *Session) Get() *AuthUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Set replaces the current user.
func (s *Session) Set(user AuthUser) {
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
}

// Clear drops the current user.
func (s *Session) Clear() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// UserID returns the current user id, or "" when unauthenticated.
func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.ID
}

// Token returns the current access token, or "" when unauthenticated.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.Token
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}
