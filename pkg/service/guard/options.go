package guard

import "time"

const (
	// PollInterval is the fixed cadence of session confirmation probes
	// while the login window is open.
	PollInterval = 500 * time.Millisecond

	// DefaultTimeout bounds how long the popup flow waits for the user to
	// complete authentication.
	DefaultTimeout = 2 * time.Minute

	// DefaultLoginURL is the base login URL. The URL-encoded current page
	// address is appended to it.
	DefaultLoginURL = "/api/auth/login?redirect_to="
)

type options struct {
	usePopup   bool
	timeout    time.Duration
	loginURL   string
	currentURL string
}

// Option configures a single EnsureAuth invocation
type Option func(*options)

// WithPopup enables or disables the popup re-authentication flow. When
// disabled, an invalid session fails immediately with kind auth_failed.
func WithPopup(enable bool) Option {
	return func(o *options) {
		o.usePopup = enable
	}
}

// WithTimeout sets how long the popup flow may wait for authentication
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithLoginURL sets the base login URL for the popup flow
func WithLoginURL(u string) Option {
	return func(o *options) {
		o.loginURL = u
	}
}

// WithCurrentURL sets the page address appended (URL-encoded) to the login
// URL so the user returns to where they started
func WithCurrentURL(u string) Option {
	return func(o *options) {
		o.currentURL = u
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		usePopup: true,
		timeout:  DefaultTimeout,
		loginURL: DefaultLoginURL,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
