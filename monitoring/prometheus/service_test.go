package prometheus

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prysmaticlabs/blockrewards/runtime"
	"github.com/prysmaticlabs/blockrewards/testing/assert"
	"github.com/prysmaticlabs/blockrewards/testing/require"
)

type mockService struct {
	status error
}

func (*mockService) Start() {}

func (*mockService) Stop() error {
	return nil
}

func (m *mockService) Status() error {
	return m.status
}

func TestLifecycle(t *testing.T) {
	prometheusService := NewService("127.0.0.1:0", nil)
	prometheusService.Start()
	require.NoError(t, prometheusService.Status())
	require.NotNil(t, prometheusService.Addr())

	resp, err := http.Get(fmt.Sprintf("http://%s/metrics", prometheusService.Addr().String()))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, strings.Contains(string(body), "go_goroutines"))

	require.NoError(t, prometheusService.Stop())
}

func TestHealthz(t *testing.T) {
	registry := runtime.NewServiceRegistry()
	m := &mockService{}
	require.NoError(t, registry.RegisterService(m))
	s := NewService("", registry)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	s.healthzHandler(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.StringContains(t, "*prometheus.mockService: OK", rr.Body.String())

	m.status = errors.New("something bad has happened")
	rr = httptest.NewRecorder()
	s.healthzHandler(rr, req)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.StringContains(t, "*prometheus.mockService: ERROR, something bad has happened", rr.Body.String())
}

func TestHealthz_JSON(t *testing.T) {
	registry := runtime.NewServiceRegistry()
	require.NoError(t, registry.RegisterService(&mockService{}))
	s := NewService("", registry)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Accept", contentTypeJSON)
	rr := httptest.NewRecorder()
	s.healthzHandler(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.StringContains(t, `"service":"*prometheus.mockService","status":true`, rr.Body.String())
}

func TestStatus(t *testing.T) {
	failedErr := errors.New("failed")
	s := &Service{svcRegistry: runtime.NewServiceRegistry()}
	assert.NoError(t, s.Status())
	s.setFailStatus(failedErr)
	assert.ErrorContains(t, "failed", s.Status())
}

func TestAdditionalHandlers(t *testing.T) {
	s := NewService("", nil, Handler{
		Path: "/extra",
		Handler: func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		},
	})
	rr := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/extra", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)
}
