package server

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBody(n int) io.Reader {
	return bytes.NewReader(make([]byte, n))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	const apiKey = "secret-key"

	newHandler := func() http.Handler {
		detector := NewSuspiciousActivityDetector()
		return AuthMiddleware(apiKey, nil, detector)(okHandler())
	}

	t.Run("Valid Key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/players?q=steve", nil)
		req.Header.Set(HeaderAPIKey, apiKey)
		w := httptest.NewRecorder()

		newHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Missing Key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/players?q=steve", nil)
		w := httptest.NewRecorder()

		newHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Wrong Key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/players?q=steve", nil)
		req.Header.Set(HeaderAPIKey, "wrong")
		w := httptest.NewRecorder()

		newHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Public Paths Bypass Auth", func(t *testing.T) {
		for _, path := range PublicPaths {
			req := httptest.NewRequest("GET", path, nil)
			w := httptest.NewRecorder()

			newHandler().ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code, "path %s should be public", path)
		}
	})
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(w, req)

	assert.Equal(t, HeaderValueNoSniff, w.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, w.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, w.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, w.Header().Get(HeaderReferrerPolicy))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var maxBytesErr *http.MaxBytesError
		if _, err := io.ReadAll(r.Body); errors.As(err, &maxBytesErr) {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Under Limit", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/sessions", newBody(8))
		w := httptest.NewRecorder()

		RequestSizeLimitMiddleware(16)(echo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Over Limit", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/sessions", newBody(32))
		w := httptest.NewRecorder()

		RequestSizeLimitMiddleware(16)(echo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestSuspiciousActivityDetectorRateLimit(t *testing.T) {
	detector := NewSuspiciousActivityDetector()

	for i := 0; i < requestRateLimit; i++ {
		assert.True(t, detector.RecordRequest("10.0.0.1"))
	}
	assert.False(t, detector.RecordRequest("10.0.0.1"), "request over the limit is blocked")
	assert.True(t, detector.RecordRequest("10.0.0.2"), "other IPs are unaffected")
}

func TestSecurityLoggingMiddlewareBlocksOverRate(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	for i := 0; i < requestRateLimit; i++ {
		detector.RecordRequest("192.0.2.1")
	}

	req := httptest.NewRequest("GET", "/api/v1/players", nil)
	req.RemoteAddr = "192.0.2.1:4242"
	w := httptest.NewRecorder()

	SecurityLoggingMiddleware(nil, detector)(okHandler()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestExtractIP(t *testing.T) {
	t.Run("Direct Connection", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "192.0.2.1:4242"

		assert.Equal(t, "192.0.2.1", extractIP(req, nil))
	})

	t.Run("Forwarded Header Ignored From Untrusted Source", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "192.0.2.1:4242"
		req.Header.Set(HeaderForwardedFor, "203.0.113.9")

		assert.Equal(t, "192.0.2.1", extractIP(req, nil))
	})

	t.Run("Forwarded Header Trusted From Proxy", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "192.0.2.1:4242"
		req.Header.Set(HeaderForwardedFor, "203.0.113.9, 198.51.100.7")

		assert.Equal(t, "198.51.100.7", extractIP(req, []string{"192.0.2.1"}))
	})
}
