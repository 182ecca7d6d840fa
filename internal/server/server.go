// Package server is the HTTP transport for the subscription core: routing,
// request decoding, and the mapping of service errors onto status codes.
package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/letterdrop/internal/newsletter"
)

// SubscriptionService is the lifecycle surface the transport exposes.
type SubscriptionService interface {
	Subscribe(ctx context.Context, name, email string) error
	Confirm(ctx context.Context, confirmationToken string) error
}

// NewsletterService publishes issues to confirmed subscribers.
type NewsletterService interface {
	Publish(ctx context.Context, creds newsletter.Credentials, issue newsletter.Issue) error
}

// Server wires handlers onto a chi router.
type Server struct {
	subscriptions SubscriptionService
	newsletters   NewsletterService
	healthcheck   func(context.Context) error
	log           *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets a custom logger for request handling.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithHealthcheck registers a dependency probe for GET /health.
func WithHealthcheck(probe func(context.Context) error) Option {
	return func(s *Server) {
		if probe != nil {
			s.healthcheck = probe
		}
	}
}

// New creates the HTTP server wiring.
func New(subscriptions SubscriptionService, newsletters NewsletterService, opts ...Option) *Server {
	s := &Server{
		subscriptions: subscriptions,
		newsletters:   newsletters,
		healthcheck:   func(context.Context) error { return nil },
		log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the route table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Post("/subscriptions", s.handleSubscribe)
	r.Get("/subscriptions/confirm", s.handleConfirm)
	r.Post("/newsletters", s.handlePublish)

	return r
}
