package interfaces

import (
	"context"

	"github.com/m-mizutani/komainu/pkg/domain/model/auth"
)

// SDKClient is the minimum capability surface the auth guard requires from
// an AI SDK handle. ConfirmSession must return an error or an invalid
// identity when the current session is not authenticated.
type SDKClient interface {
	ConfirmSession(ctx context.Context) (*auth.Identity, error)
}

// SignedInChecker is an optional capability: a cheap local check that does
// not hit the network. When it returns false the guard treats the session
// as invalid without calling ConfirmSession.
type SignedInChecker interface {
	IsSignedIn() bool
}

// TokenResetter is an optional capability that clears stale local auth
// state. The guard invokes it best-effort before re-authentication.
type TokenResetter interface {
	ResetAuthToken()
}

// SignInClient is an optional capability: an SDK-driven sign-in flow used
// in lieu of manual popup management when the SDK exposes one.
type SignInClient interface {
	SignIn(ctx context.Context) error
}
