package models

// Session is the locally cached token/email pair identifying the current user. Either half may be
// absent; the home screen reads it but never writes it.
type Session struct {
	// Token is the opaque session token handed out at sign-in, or nil.
	Token *string `json:"-"`
	// Email is the signed-in user's email address, or nil.
	Email *string `json:"email,omitempty"`
}

// EmailOrEmpty returns the session email, or "" when it is absent.
func (s *Session) EmailOrEmpty() string {
	if s == nil || s.Email == nil {
		return ""
	}
	return *s.Email
}

// HasToken reports whether a non-empty session token is present.
func (s *Session) HasToken() bool {
	return s != nil && s.Token != nil && *s.Token != ""
}

// CreateSessionRequest is the body of a sign-in that caches a session locally.
type CreateSessionRequest struct {
	Token string `json:"token"`
	Email string `json:"email"`
}
