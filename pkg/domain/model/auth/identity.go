package auth

import "strings"

// Identity represents the authenticated user returned by a session
// confirmation call against the SDK.
type Identity struct {
	UserName string `json:"user_name"`
	Email    string `json:"email,omitempty"`
	Subject  string `json:"subject,omitempty"`
}

// IsValid reports whether the identity counts as an authenticated session.
// A session confirmation that yields a nil identity or an empty user name
// is treated as "not yet authenticated".
func (x *Identity) IsValid() bool {
	return x != nil && strings.TrimSpace(x.UserName) != ""
}
