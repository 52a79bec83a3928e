package guard

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/komainu/pkg/adapters/wallclock"
	"github.com/m-mizutani/komainu/pkg/domain/interfaces"
	"github.com/m-mizutani/komainu/pkg/domain/types/apperr"
	"golang.org/x/sync/singleflight"
)

// Guard verifies that the current session is authenticated before a caller
// invokes a guarded SDK operation, driving a popup-based re-authentication
// flow when it is not. The SDK handle is an injected capability; optional
// capabilities (SignedInChecker, TokenResetter, SignInClient) are
// feature-detected by interface assertion, so a single implementation
// covers SDKs with differing surfaces.
type Guard struct {
	sdk    interfaces.SDKClient
	opener interfaces.WindowOpener
	clock  interfaces.Clock
	flight *singleflight.Group
}

// GuardOption configures a Guard at construction time
type GuardOption func(*Guard)

// WithWindowOpener sets the opener used by the popup flow. Without one,
// the popup flow cannot run and invalid sessions fail with kind
// auth_failed.
func WithWindowOpener(opener interfaces.WindowOpener) GuardOption {
	return func(g *Guard) {
		g.opener = opener
	}
}

// WithClock replaces the wall clock, mainly for tests
func WithClock(clock interfaces.Clock) GuardOption {
	return func(g *Guard) {
		g.clock = clock
	}
}

// WithCoalesce collapses concurrent EnsureAuth calls into a single
// in-flight authentication, so at most one popup is open at a time. Off by
// default: without it, concurrent calls may open duplicate popups.
func WithCoalesce() GuardOption {
	return func(g *Guard) {
		g.flight = &singleflight.Group{}
	}
}

// New creates a new Guard for the given SDK handle
func New(sdk interfaces.SDKClient, opts ...GuardOption) *Guard {
	g := &Guard{
		sdk:   sdk,
		clock: wallclock.New(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// EnsureAuth returns nil when the caller may safely invoke the guarded SDK
// operation. Otherwise it returns an error tagged with one of the auth
// kinds (see apperr.KindOf): sdk_not_available, auth_failed,
// popup_blocked, timeout or user_cancelled. The guard never retries a
// terminal failure; retry is the caller's responsibility.
func (g *Guard) EnsureAuth(ctx context.Context, opts ...Option) error {
	if g.flight == nil {
		return g.ensureAuth(ctx, opts)
	}

	_, err, _ := g.flight.Do("ensure_auth", func() (any, error) {
		return nil, g.ensureAuth(ctx, opts)
	})
	return err
}

func (g *Guard) ensureAuth(ctx context.Context, opts []Option) error {
	opt := newOptions(opts)

	if g.sdk == nil {
		return goerr.Wrap(apperr.ErrSDKNotAvailable, "no SDK handle injected")
	}

	if g.sessionValid(ctx) {
		return nil
	}

	// The session is invalid. Clear stale local auth state before
	// re-authenticating; failure here is irrelevant.
	if resetter, ok := g.sdk.(interfaces.TokenResetter); ok {
		resetter.ResetAuthToken()
	}

	if !opt.usePopup {
		return goerr.Wrap(apperr.ErrAuthRequired, "session invalid and popup authentication disabled")
	}

	// Prefer the SDK's own sign-in flow when it exposes one.
	if signer, ok := g.sdk.(interfaces.SignInClient); ok {
		return g.delegatedSignIn(ctx, signer)
	}

	if err := g.popupFlow(ctx, opt); err != nil {
		if apperr.IsAuthError(err) {
			return err
		}
		return goerr.Wrap(err, "popup authentication failed", goerr.T(apperr.ErrTagAuthFailed))
	}
	return nil
}

func (g *Guard) delegatedSignIn(ctx context.Context, signer interfaces.SignInClient) error {
	if err := signer.SignIn(ctx); err != nil {
		if apperr.IsAuthError(err) {
			return err
		}
		return goerr.Wrap(err, "SDK sign-in failed", goerr.T(apperr.ErrTagAuthFailed))
	}
	if g.sessionValid(ctx) {
		return nil
	}
	return goerr.Wrap(apperr.ErrAuthRequired, "session still invalid after SDK sign-in")
}

// sessionValid confirms the current session against the SDK. A failed
// probe is not an error, just "not yet authenticated".
func (g *Guard) sessionValid(ctx context.Context) bool {
	if checker, ok := g.sdk.(interfaces.SignedInChecker); ok && !checker.IsSignedIn() {
		return false
	}

	identity, err := g.sdk.ConfirmSession(ctx)
	if err != nil {
		ctxlog.From(ctx).Debug("session confirmation failed", "error", err)
		return false
	}
	return identity.IsValid()
}
