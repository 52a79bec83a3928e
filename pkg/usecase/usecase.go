package usecase

import (
	"github.com/m-mizutani/komainu/pkg/domain/interfaces"
	"github.com/m-mizutani/komainu/pkg/service/guard"
)

// UseCases holds the message rendering use cases
type UseCases struct {
	guard     *guard.Guard
	guardOpts []guard.Option
	renderLog interfaces.RenderLogRepository
}

// Option is a functional option for UseCases
type Option func(*UseCases)

// WithGuard sets the auth guard that must pass before any rendering, along
// with the per-call options it runs with
func WithGuard(g *guard.Guard, opts ...guard.Option) Option {
	return func(uc *UseCases) {
		uc.guard = g
		uc.guardOpts = opts
	}
}

// WithRenderLog sets the render history repository
func WithRenderLog(repo interfaces.RenderLogRepository) Option {
	return func(uc *UseCases) {
		uc.renderLog = repo
	}
}

// New creates the use cases
func New(opts ...Option) *UseCases {
	uc := &UseCases{}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
