package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/komainu/pkg/adapters/jwtauth"
	"github.com/m-mizutani/komainu/pkg/service/guard"
	"github.com/urfave/cli/v3"
)

// Auth holds the configuration for session authentication and the guard
type Auth struct {
	secret   string
	loginURL string
	timeout  time.Duration
	noPopup  bool
}

// Flags returns CLI flags for auth configuration
func (x *Auth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "jwt-secret",
			Category:    "auth",
			Sources:     cli.EnvVars("KOMAINU_JWT_SECRET"),
			Usage:       "Shared secret for session token verification",
			Destination: &x.secret,
		},
		&cli.StringFlag{
			Name:        "login-url",
			Category:    "auth",
			Sources:     cli.EnvVars("KOMAINU_LOGIN_URL"),
			Usage:       "Base login URL; the URL-encoded return address is appended",
			Value:       guard.DefaultLoginURL,
			Destination: &x.loginURL,
		},
		&cli.DurationFlag{
			Name:        "auth-timeout",
			Category:    "auth",
			Sources:     cli.EnvVars("KOMAINU_AUTH_TIMEOUT"),
			Usage:       "How long the popup flow waits for authentication",
			Value:       guard.DefaultTimeout,
			Destination: &x.timeout,
		},
		&cli.BoolFlag{
			Name:        "no-popup",
			Category:    "auth",
			Sources:     cli.EnvVars("KOMAINU_NO_POPUP"),
			Usage:       "Disable popup re-authentication; invalid sessions fail immediately",
			Destination: &x.noPopup,
		},
	}
}

// LogValue returns the auth configuration as a slog.Value for logging. The
// secret is reported only by presence.
func (x Auth) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("secret_configured", x.secret != ""),
		slog.String("login_url", x.loginURL),
		slog.Duration("timeout", x.timeout),
		slog.Bool("no_popup", x.noPopup),
	)
}

// ApplyFile overrides flag values with those set in the config file
func (x *Auth) ApplyFile(f *ServerFile) {
	if f.LoginURL != "" {
		x.loginURL = f.LoginURL
	}
	if f.AuthTimeout > 0 {
		x.timeout = f.AuthTimeout
	}
}

// Verifier builds the session token verifier
func (x *Auth) Verifier() (*jwtauth.Verifier, error) {
	if x.secret == "" {
		return nil, goerr.New("jwt-secret is required")
	}
	return jwtauth.NewVerifier([]byte(x.secret)), nil
}

// GuardOptions returns per-call guard options derived from the config
func (x *Auth) GuardOptions() []guard.Option {
	return []guard.Option{
		guard.WithPopup(!x.noPopup),
		guard.WithTimeout(x.timeout),
		guard.WithLoginURL(x.loginURL),
	}
}
