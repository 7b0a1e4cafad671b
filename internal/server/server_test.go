package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolvmar/chestwarden/internal/domain"
	"github.com/tolvmar/chestwarden/internal/event"
	"github.com/tolvmar/chestwarden/internal/lookup"
)

type stubFinder struct {
	result lookup.Result
}

func (s stubFinder) Find(ctx context.Context, query string) (lookup.Result, error) {
	return s.result, nil
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	finder := stubFinder{result: lookup.Result{
		Candidates:  []domain.Identity{{XUID: "100", Name: "Steve", Online: true}},
		Unambiguous: true,
	}}
	srv := NewServer(0, "test-key", nil, nil, finder, event.NewMemoryBus())
	return srv.httpServer.Handler
}

func TestServerRouting(t *testing.T) {
	h := newTestServer(t)

	t.Run("Healthz Is Public", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/healthz", nil)
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Readyz Degraded Without Store", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"degraded"`)
	})

	t.Run("API Requires Key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/players?q=steve", nil)
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Player Search With Key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/players?q=steve", nil)
		req.Header.Set(HeaderAPIKey, "test-key")
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Steve"`)
	})

	t.Run("Container Read Without Store", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/players/100/containers/inventory", nil)
		req.Header.Set(HeaderAPIKey, "test-key")
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("Security Headers Present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/healthz", nil)
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, HeaderValueNoSniff, w.Header().Get(HeaderContentType))
	})
}
