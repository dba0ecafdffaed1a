package backup

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prysmaticlabs/blockrewards/testing/assert"
	"github.com/prysmaticlabs/blockrewards/testing/require"
)

type mockExporter struct {
	outputDir          string
	permissionOverride bool
	calls              int
	err                error
}

func (m *mockExporter) Backup(_ context.Context, outputDir string, permissionOverride bool) error {
	m.calls++
	m.outputDir = outputDir
	m.permissionOverride = permissionOverride
	return m.err
}

func TestHandler_OK(t *testing.T) {
	exporter := &mockExporter{}
	h := Handler(exporter, "/tmp/out")

	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodPost, "/db/backup?permissionOverride", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.StringContains(t, `"output_dir":"/tmp/out"`, rr.Body.String())
	assert.Equal(t, "/tmp/out", exporter.outputDir)
	assert.Equal(t, true, exporter.permissionOverride)
}

func TestHandler_Failure(t *testing.T) {
	exporter := &mockExporter{err: errors.New("disk full")}
	h := Handler(exporter, "/tmp/out")

	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodPost, "/db/backup", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.StringContains(t, "disk full", rr.Body.String())
	assert.Equal(t, false, exporter.permissionOverride)
}

func TestHandler_RejectsGet(t *testing.T) {
	exporter := &mockExporter{}
	h := Handler(exporter, "/tmp/out")

	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodGet, "/db/backup", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, 0, exporter.calls)
}
