package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/komainu/pkg/adapters/jwtauth"
	"github.com/m-mizutani/komainu/pkg/domain/interfaces"
	"github.com/m-mizutani/komainu/pkg/utils/safe"
)

// Server represents the HTTP server
type Server struct {
	router   *chi.Mux
	uc       interfaces.MessageUseCases
	verifier *jwtauth.Verifier
}

// Options is a functional option for Server
type Options func(*Server)

// WithMessageUseCases sets the message rendering use cases
func WithMessageUseCases(uc interfaces.MessageUseCases) Options {
	return func(s *Server) {
		s.uc = uc
	}
}

// WithAuthVerifier enables session authentication on the API routes. The
// guard runs with the popup flow disabled, so an invalid session surfaces
// as 401 auth_failed instead of redirecting anywhere.
func WithAuthVerifier(verifier *jwtauth.Verifier) Options {
	return func(s *Server) {
		s.verifier = verifier
	}
}

// New creates a new HTTP server
func New(opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Apply middleware
	r.Use(loggingMiddleware)
	r.Use(panicRecoveryMiddleware)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		if s.verifier != nil {
			r.Use(sessionAuthMiddleware(s.verifier))
		}
		r.Post("/messages/render", renderMessageHandler(s.uc))
		r.Get("/messages", listRendersHandler(s.uc))
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		safe.Write(r.Context(), w, []byte("OK"))
	})

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
