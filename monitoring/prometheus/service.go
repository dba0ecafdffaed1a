// Package prometheus defines a service which is used for metrics collection
// and health of a node.
package prometheus

import (
	"context"
	"net"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prysmaticlabs/blockrewards/runtime"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "prometheus")

// Service provides Prometheus metrics via the /metrics route. This route will
// show all the metrics registered with the Prometheus DefaultRegisterer.
type Service struct {
	server      *http.Server
	svcRegistry *runtime.ServiceRegistry
	lock        sync.RWMutex
	addr        net.Addr
	failStatus  error
}

// Handler represents a path and handler func to serve on the same port as /metrics, /healthz.
type Handler struct {
	Path    string
	Handler func(http.ResponseWriter, *http.Request)
}

// NewService sets up a new instance for a given address host:port.
// An empty host will match with any IP so an address like ":2121" is perfectly acceptable.
func NewService(addr string, svcRegistry *runtime.ServiceRegistry, additionalHandlers ...Handler) *Service {
	s := &Service{svcRegistry: svcRegistry}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		MaxRequestsInFlight: 5,
		Timeout:             30 * time.Second,
	}))
	mux.HandleFunc("/healthz", s.healthzHandler)
	mux.HandleFunc("/goroutinez", s.goroutinezHandler)

	// Register additional handlers.
	for _, h := range additionalHandlers {
		mux.HandleFunc(h.Path, h.Handler)
	}

	s.server = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: time.Second}

	return s
}

func (s *Service) healthzHandler(w http.ResponseWriter, r *http.Request) {
	var statuses []runtime.ServiceStatus
	if s.svcRegistry != nil {
		statuses = s.svcRegistry.Statuses()
	}
	report := newHealthReport(statuses)
	code := http.StatusOK
	if !report.healthy() {
		code = http.StatusInternalServerError
	}
	if err := writeReport(w, r, code, report); err != nil {
		log.WithError(err).Error("Could not write health report")
	}
}

func (_ *Service) goroutinezHandler(w http.ResponseWriter, _ *http.Request) {
	stack := debug.Stack()
	if _, err := w.Write(stack); err != nil {
		log.WithError(err).Error("Failed to write goroutines stack")
	}
}

// Start the prometheus service.
func (s *Service) Start() {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		log.WithError(err).Errorf("Could not listen to host:port :%s", s.server.Addr)
		s.setFailStatus(err)
		return
	}
	s.lock.Lock()
	s.addr = listener.Addr()
	s.lock.Unlock()

	go func() {
		log.WithField("address", listener.Addr().String()).Debug("Starting prometheus service")
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Errorf("Could not serve metrics on %s: %v", listener.Addr(), err)
			s.setFailStatus(err)
		}
	}()
}

// Addr returns the address the service listens on, or nil before Start.
func (s *Service) Addr() net.Addr {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.addr
}

// Stop the service gracefully.
func (s *Service) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Status checks for any service failure conditions.
func (s *Service) Status() error {
	if s.svcRegistry == nil {
		return nil
	}
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.failStatus
}

func (s *Service) setFailStatus(err error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.failStatus = err
}
