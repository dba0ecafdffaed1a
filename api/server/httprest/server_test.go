package httprest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prysmaticlabs/blockrewards/testing/assert"
	"github.com/prysmaticlabs/blockrewards/testing/require"
	logTest "github.com/sirupsen/logrus/hooks/test"
)

func testRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/ids", func(w http.ResponseWriter, r *http.Request) {
		_, err := fmt.Fprint(w, r.URL.Query()["id"])
		if err != nil {
			panic(err)
		}
	}).Methods(http.MethodGet)
	return r
}

func TestServer_New_RequiresRouter(t *testing.T) {
	_, err := New(context.Background(), WithHTTPAddr("127.0.0.1:0"))
	assert.ErrorContains(t, "router option not configured", err)
}

func TestServer_Handler(t *testing.T) {
	g, err := New(context.Background(),
		WithRouter(testRouter()),
		WithAllowedOrigins([]string{"http://allowed"}),
		WithTimeout(time.Second),
	)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "http://example.com/ids?id=1,2", nil)
	req.Header.Set("Origin", "http://allowed")
	writer := httptest.NewRecorder()
	g.server.Handler.ServeHTTP(writer, req)
	assert.Equal(t, http.StatusOK, writer.Code)
	assert.Equal(t, "[1 2]", writer.Body.String())
	assert.Equal(t, "http://allowed", writer.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_StartStop(t *testing.T) {
	hook := logTest.NewGlobal()
	g, err := New(context.Background(), WithRouter(testRouter()), WithHTTPAddr("127.0.0.1:0"))
	require.NoError(t, err)

	g.Start()
	require.NoError(t, g.Status())
	require.NotNil(t, g.Addr())
	resp, err := http.Get(fmt.Sprintf("http://%s/ids?id=7", g.Addr().String()))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "[7]", string(body))

	require.NoError(t, g.Stop())
	assert.LogsContain(t, hook, "Starting HTTP server")
}

func TestServer_StartFailure(t *testing.T) {
	g, err := New(context.Background(), WithRouter(testRouter()), WithHTTPAddr("not-an-address"))
	require.NoError(t, err)
	g.Start()
	assert.NotNil(t, g.Status())
	require.NoError(t, g.Stop())
}

func TestServer_New_RejectsNonPositiveTimeout(t *testing.T) {
	_, err := New(context.Background(), WithRouter(testRouter()), WithTimeout(0))
	assert.ErrorContains(t, "timeout must be positive", err)
}
