package runtime

import (
	"errors"
	"testing"

	"github.com/prysmaticlabs/blockrewards/testing/assert"
	"github.com/prysmaticlabs/blockrewards/testing/require"
)

type mockService struct {
	status  error
	stopErr error
	started chan struct{}
	stopped *[]string
	name    string
}

func (m *mockService) Start() {
	if m.started != nil {
		close(m.started)
	}
}

func (m *mockService) Stop() error {
	if m.stopped != nil {
		*m.stopped = append(*m.stopped, m.name)
	}
	return m.stopErr
}

func (m *mockService) Status() error {
	return m.status
}

type secondMockService struct {
	mockService
}

func TestRegisterService_Twice(t *testing.T) {
	registry := NewServiceRegistry()
	m := &mockService{}
	require.NoError(t, registry.RegisterService(m), "Failed to register first service")
	require.Equal(t, 1, len(registry.services))
	assert.ErrorContains(t, "service already exists", registry.RegisterService(m))
	assert.ErrorContains(t, "service already exists", registry.RegisterService(&mockService{}))
	assert.ErrorContains(t, "cannot register nil service", registry.RegisterService(nil))
}

func TestServiceRegistry_StartStopOrder(t *testing.T) {
	registry := NewServiceRegistry()
	var stopped []string
	m := &mockService{name: "first", stopped: &stopped, started: make(chan struct{}), stopErr: errors.New("oops")}
	s := &secondMockService{mockService{name: "second", stopped: &stopped, started: make(chan struct{})}}
	require.NoError(t, registry.RegisterService(m))
	require.NoError(t, registry.RegisterService(s))

	registry.StartAll()
	<-m.started
	<-s.started

	registry.StopAll()
	assert.DeepEqual(t, []string{"second", "first"}, stopped)
}

func TestServiceStatus_OK(t *testing.T) {
	registry := NewServiceRegistry()
	m := &mockService{}
	s := &secondMockService{}
	require.NoError(t, registry.RegisterService(m))
	require.NoError(t, registry.RegisterService(s))

	m.status = errors.New("something bad has happened")

	statuses := registry.Statuses()
	require.Equal(t, 2, len(statuses))
	assert.Equal(t, "*runtime.mockService", statuses[0].Name)
	assert.ErrorContains(t, "something bad has happened", statuses[0].Err)
	assert.Equal(t, "*runtime.secondMockService", statuses[1].Name)
	assert.NoError(t, statuses[1].Err)
}
