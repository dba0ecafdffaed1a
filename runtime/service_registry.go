// Package runtime manages the lifecycle of the long running services started by the
// blockrewards server.
package runtime

import (
	"reflect"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "registry")

// Service is a struct that can be registered into a ServiceRegistry.
type Service interface {
	// Start spawns any goroutines required by the service.
	Start()
	// Stop terminates all goroutines belonging to the service,
	// blocking until they are all terminated.
	Stop() error
	// Status returns error if the service is not considered healthy.
	Status() error
}

// ServiceStatus is the health of one registered service.
type ServiceStatus struct {
	Name string
	Err  error
}

// ServiceRegistry starts services in registration order and stops them in reverse.
// At most one service of each concrete type may be registered.
type ServiceRegistry struct {
	lock     sync.RWMutex
	services []Service
	names    map[reflect.Type]struct{}
}

// NewServiceRegistry returns an empty registry.
func NewServiceRegistry() *ServiceRegistry {
	return &ServiceRegistry{
		names: make(map[reflect.Type]struct{}),
	}
}

// RegisterService appends service to the registry.
func (s *ServiceRegistry) RegisterService(service Service) error {
	if service == nil {
		return errors.New("cannot register nil service")
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	kind := reflect.TypeOf(service)
	if _, exists := s.names[kind]; exists {
		return errors.Errorf("service already exists: %v", kind)
	}
	s.names[kind] = struct{}{}
	s.services = append(s.services, service)
	return nil
}

// StartAll starts each service in its own goroutine, in order of registration.
func (s *ServiceRegistry) StartAll() {
	s.lock.RLock()
	defer s.lock.RUnlock()
	log.Debugf("Starting %d services", len(s.services))
	for _, service := range s.services {
		log.Debugf("Starting service type %T", service)
		go service.Start()
	}
}

// StopAll ends every service in reverse order of registration. Failures are logged and do not
// prevent the remaining services from stopping.
func (s *ServiceRegistry) StopAll() {
	s.lock.RLock()
	defer s.lock.RUnlock()
	for i := len(s.services) - 1; i >= 0; i-- {
		if err := s.services[i].Stop(); err != nil {
			log.WithError(err).Errorf("Could not stop the following service: %T", s.services[i])
		}
	}
}

// Statuses returns the status of every service in order of registration.
func (s *ServiceRegistry) Statuses() []ServiceStatus {
	s.lock.RLock()
	defer s.lock.RUnlock()
	statuses := make([]ServiceStatus, len(s.services))
	for i, service := range s.services {
		statuses[i] = ServiceStatus{
			Name: reflect.TypeOf(service).String(),
			Err:  service.Status(),
		}
	}
	return statuses
}
