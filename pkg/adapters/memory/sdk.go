package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/komainu/pkg/domain/model/auth"
)

// SDKClient is a scriptable in-memory SDK handle for tests. Each call to
// ConfirmSession returns whatever identity/error was last configured.
type SDKClient struct {
	mu           sync.Mutex
	identity     *auth.Identity
	err          error
	confirmCalls int
}

func NewSDKClient() *SDKClient {
	return &SDKClient{}
}

func (c *SDKClient) ConfirmSession(ctx context.Context) (*auth.Identity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.confirmCalls++
	if c.err != nil {
		return nil, c.err
	}
	return c.identity, nil
}

// SetIdentity sets the identity returned by subsequent confirmations
func (c *SDKClient) SetIdentity(id *auth.Identity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.identity = id
	c.err = nil
}

// SetError makes subsequent confirmations fail with err
func (c *SDKClient) SetError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
}

// ConfirmCalls returns how many times ConfirmSession was invoked
func (c *SDKClient) ConfirmCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.confirmCalls
}

// ResettableSDKClient adds the TokenResetter capability
type ResettableSDKClient struct {
	*SDKClient
	mu     sync.Mutex
	resets int
}

func NewResettableSDKClient() *ResettableSDKClient {
	return &ResettableSDKClient{SDKClient: NewSDKClient()}
}

func (c *ResettableSDKClient) ResetAuthToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resets++
}

func (c *ResettableSDKClient) Resets() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resets
}

// LocalCheckSDKClient adds the SignedInChecker capability
type LocalCheckSDKClient struct {
	*SDKClient
	mu       sync.Mutex
	signedIn bool
}

func NewLocalCheckSDKClient() *LocalCheckSDKClient {
	return &LocalCheckSDKClient{SDKClient: NewSDKClient()}
}

func (c *LocalCheckSDKClient) IsSignedIn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.signedIn
}

func (c *LocalCheckSDKClient) SetSignedIn(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.signedIn = v
}

// SignInSDKClient adds the SignInClient capability. On successful SignIn
// it installs afterSignIn as the confirmed identity.
type SignInSDKClient struct {
	*SDKClient
	mu          sync.Mutex
	signInErr   error
	afterSignIn *auth.Identity
	signInCalls int
}

func NewSignInSDKClient() *SignInSDKClient {
	return &SignInSDKClient{SDKClient: NewSDKClient()}
}

func (c *SignInSDKClient) SignIn(ctx context.Context) error {
	c.mu.Lock()
	signInErr := c.signInErr
	afterSignIn := c.afterSignIn
	c.signInCalls++
	c.mu.Unlock()

	if signInErr != nil {
		return signInErr
	}
	c.SetIdentity(afterSignIn)
	return nil
}

func (c *SignInSDKClient) SetSignInError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.signInErr = err
}

func (c *SignInSDKClient) SetSignInIdentity(id *auth.Identity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.afterSignIn = id
}

func (c *SignInSDKClient) SignInCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.signInCalls
}
