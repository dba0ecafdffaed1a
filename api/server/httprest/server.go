// Package httprest serves the beacon API routes over HTTP.
package httprest

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blockrewards/api/server"
	"github.com/prysmaticlabs/blockrewards/runtime"
)

var _ runtime.Service = (*Server)(nil)

const defaultTimeout = 30 * time.Second

// Config parameters for setting up the http-rest service.
type config struct {
	httpAddr       string
	allowedOrigins []string
	router         *mux.Router
	timeout        time.Duration
}

// Server serves HTTP JSON traffic.
type Server struct {
	cfg          *config
	server       *http.Server
	cancel       context.CancelFunc
	ctx          context.Context
	lock         sync.RWMutex
	addr         net.Addr
	startFailure error
}

// New returns a new instance of the Server.
func New(ctx context.Context, opts ...Option) (*Server, error) {
	g := &Server{
		ctx: ctx,
		cfg: &config{timeout: defaultTimeout},
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	if g.cfg.router == nil {
		return nil, errors.New("router option not configured")
	}

	handler := server.CorsHandler(g.cfg.allowedOrigins).Handler(server.NormalizeQueryValuesHandler(g.cfg.router))
	g.server = &http.Server{
		Addr:              g.cfg.httpAddr,
		Handler:           http.TimeoutHandler(handler, g.cfg.timeout, "request timed out"),
		ReadHeaderTimeout: time.Second,
	}
	return g, nil
}

// Start the http rest service.
func (g *Server) Start() {
	_, cancel := context.WithCancel(g.ctx)
	g.cancel = cancel

	listener, err := net.Listen("tcp", g.cfg.httpAddr)
	if err != nil {
		log.WithError(err).Error("Failed to start HTTP server")
		g.lock.Lock()
		g.startFailure = err
		g.lock.Unlock()
		return
	}
	g.lock.Lock()
	g.addr = listener.Addr()
	g.lock.Unlock()

	go func() {
		log.WithField("address", listener.Addr().String()).Info("Starting HTTP server")
		if err := g.server.Serve(listener); err != http.ErrServerClosed {
			log.WithError(err).Error("Failed to serve HTTP")
			g.lock.Lock()
			g.startFailure = err
			g.lock.Unlock()
		}
	}()
}

// Addr returns the address the server listens on, or nil before Start.
func (g *Server) Addr() net.Addr {
	g.lock.RLock()
	defer g.lock.RUnlock()
	return g.addr
}

// Status of the HTTP server. Returns an error if this service is unhealthy.
func (g *Server) Status() error {
	g.lock.RLock()
	defer g.lock.RUnlock()
	return g.startFailure
}

// Stop the HTTP server with a graceful shutdown.
func (g *Server) Stop() error {
	if g.server != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(g.ctx, 2*time.Second)
		defer shutdownCancel()
		if err := g.server.Shutdown(shutdownCtx); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				log.Warn("Existing connections terminated")
			} else {
				log.WithError(err).Error("Failed to gracefully shut down server")
			}
		}
	}
	if g.cancel != nil {
		g.cancel()
	}
	return nil
}
