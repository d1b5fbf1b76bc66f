// Package models defines the client-side view of the activities service:
// the session's auth state and the activity catalog.
package models

// AuthState mirrors the last /auth/status (or login/logout) answer.
// The zero value is the signed-out state.
type AuthState struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username"`
}

// SignedOut is what the client falls back to whenever the session cannot
// be determined.
var SignedOut = AuthState{}

// DisplayName is the username, or "" when the session is not privileged.
func (a AuthState) DisplayName() string {
	if !a.Authenticated {
		return ""
	}
	return a.Username
}
