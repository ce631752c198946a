package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/pagenav/internal/middleware"
)

// captureReqID runs RequestID over req and returns the ID seen downstream.
func captureReqID(t *testing.T, req *http.Request) (string, *httptest.ResponseRecorder) {
	t.Helper()
	var seen string
	h := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = chimiddleware.GetReqID(r.Context())
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec
}

func TestRequestID_generatesUUID(t *testing.T) {
	seen, rec := captureReqID(t, httptest.NewRequest(http.MethodGet, "/pagination", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRequestID_reusesCallerID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/pagination", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")

	seen, rec := captureReqID(t, req)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(middleware.RequestIDHeader))
}

// TestRequestID_replacesOversizedID verifies that an over-long caller ID is
// swapped for a generated one.
func TestRequestID_replacesOversizedID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/pagination", nil)
	req.Header.Set(middleware.RequestIDHeader, strings.Repeat("a", 65))

	seen, _ := captureReqID(t, req)

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
}
