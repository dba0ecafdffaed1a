package httprest

import (
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// Option is a http rest server functional parameter type.
type Option func(g *Server) error

// WithRouter allows adding a custom mux router to the server.
func WithRouter(r *mux.Router) Option {
	return func(g *Server) error {
		g.cfg.router = r
		return nil
	}
}

// WithHTTPAddr allows for custom host and port for the http server.
func WithHTTPAddr(addr string) Option {
	return func(g *Server) error {
		g.cfg.httpAddr = addr
		return nil
	}
}

// WithAllowedOrigins allows adding a set of allowed origins to the server.
func WithAllowedOrigins(origins []string) Option {
	return func(g *Server) error {
		g.cfg.allowedOrigins = origins
		return nil
	}
}

// WithTimeout allows changing the timeout value for API calls.
func WithTimeout(duration time.Duration) Option {
	return func(g *Server) error {
		if duration <= 0 {
			return errors.Errorf("timeout must be positive, got %s", duration)
		}
		g.cfg.timeout = duration
		return nil
	}
}
