package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/pagenav/internal/middleware"
)

// trivialHandler is a minimal http.Handler that always returns 200.
var trivialHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

const allowedOrigin = "http://localhost:5173"

// preflight builds an OPTIONS request asking permission for method.
func preflight(method string) *http.Request {
	req := httptest.NewRequest(http.MethodOptions, "/pagination", nil)
	req.Header.Set("Origin", allowedOrigin)
	req.Header.Set("Access-Control-Request-Method", method)
	// Browsers send Access-Control-Request-Headers in lowercase and rs/cors
	// compares verbatim.
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	return req
}

// TestCORSHandler_GET_AllowedOrigin verifies that a GET from an allowed origin
// receives the Access-Control-Allow-Origin header and can read X-Request-Id.
func TestCORSHandler_GET_AllowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{allowedOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/pagination", nil)
	req.Header.Set("Origin", allowedOrigin)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, allowedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "x-request-id", strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers")))
}

// TestCORSHandler_OPTIONS_PreflightGET verifies that a GET preflight returns
// a 2xx status and the necessary CORS headers.
func TestCORSHandler_OPTIONS_PreflightGET(t *testing.T) {
	h := middleware.NewCORSHandler([]string{allowedOrigin})(trivialHandler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, preflight(http.MethodGet))

	// rs/cors returns 204 for OPTIONS preflights.
	assert.True(t, rec.Code == http.StatusNoContent || rec.Code == http.StatusOK,
		"expected 2xx for OPTIONS preflight, got %d", rec.Code)
	assert.Equal(t, allowedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}

// TestCORSHandler_OPTIONS_PreflightWriteMethod verifies that the read-only
// API does not grant write methods.
func TestCORSHandler_OPTIONS_PreflightWriteMethod(t *testing.T) {
	h := middleware.NewCORSHandler([]string{allowedOrigin})(trivialHandler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, preflight(http.MethodDelete))

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

// TestCORSHandler_GET_DisallowedOrigin verifies that a request from a
// disallowed origin does NOT receive the Access-Control-Allow-Origin header.
// The response itself is still 200; the browser is what blocks it.
func TestCORSHandler_GET_DisallowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{allowedOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/pagination", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
