package jwtauth

import (
	"context"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/komainu/pkg/domain/model/auth"
	"github.com/m-mizutani/komainu/pkg/domain/types/apperr"
)

// Claims is the session token payload. Name carries the display name used
// as the confirmed identity.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Verifier validates session tokens signed with a shared HMAC secret
type Verifier struct {
	secret []byte
}

func NewVerifier(secret []byte) *Verifier {
	return &Verifier{secret: secret}
}

// Client builds an SDK handle bound to one session token, typically the
// bearer token of a single request
func (v *Verifier) Client(token string) *Client {
	return &Client{verifier: v, token: token}
}

// Client is an SDKClient whose session confirmation validates a JWT
// session token locally. It also exposes the SignedInChecker and
// TokenResetter capabilities.
type Client struct {
	verifier *Verifier

	mu    sync.Mutex
	token string
}

func (c *Client) ConfirmSession(ctx context.Context) (*auth.Identity, error) {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()

	if token == "" {
		return nil, goerr.Wrap(apperr.ErrAuthRequired, "no session token")
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return c.verifier.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, goerr.Wrap(err, "invalid session token", goerr.T(apperr.ErrTagAuthFailed))
	}
	if !parsed.Valid {
		return nil, goerr.Wrap(apperr.ErrAuthRequired, "session token rejected")
	}

	name := claims.Name
	if name == "" {
		name = claims.Subject
	}
	return &auth.Identity{
		UserName: name,
		Email:    claims.Email,
		Subject:  claims.Subject,
	}, nil
}

// IsSignedIn is the cheap local check: a client without a token cannot
// have a valid session, so the guard skips the confirmation call.
func (c *Client) IsSignedIn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token != ""
}

// ResetAuthToken clears the held token
func (c *Client) ResetAuthToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

// SetToken installs a new session token, e.g. after re-authentication
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}
