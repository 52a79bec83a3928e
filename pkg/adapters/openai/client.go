package openai

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/komainu/pkg/domain/model/auth"
	"github.com/m-mizutani/komainu/pkg/domain/types/apperr"
	"github.com/sashabaranov/go-openai"
)

// Client is an SDKClient backed by the OpenAI API. The API has no "who am
// I" call, so session confirmation is a cheap authenticated probe
// (ListModels): it succeeds only with valid credentials.
type Client struct {
	api     *openai.Client
	account string
}

// Option configures the client
type Option func(*Client)

// WithAccountName sets the display name reported as the confirmed
// identity. Defaults to "openai".
func WithAccountName(name string) Option {
	return func(c *Client) {
		c.account = name
	}
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		api:     openai.NewClient(apiKey),
		account: "openai",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ConfirmSession(ctx context.Context) (*auth.Identity, error) {
	if _, err := c.api.ListModels(ctx); err != nil {
		return nil, goerr.Wrap(err, "OpenAI session probe failed", goerr.T(apperr.ErrTagExternal))
	}
	return &auth.Identity{UserName: c.account}, nil
}
