// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mcpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdiddy/grant-reporter/internal/tools"
)

func newTestServer(t *testing.T, authToken string) *Server {
	t.Helper()
	return NewServer(&tools.Service{}, "test", authToken, nil)
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, "")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "healthy", body["status"])
	require.Equal(t, "grant-reporter", body["service"])
}

func TestHealthEndpointRejectsPost(t *testing.T) {
	s := newTestServer(t, "")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestBearerGuard(t *testing.T) {
	s := newTestServer(t, "sesame")

	// Missing and wrong tokens are rejected before reaching the MCP
	// transport.
	for _, header := range []string{"", "Bearer wrong", "sesame"} {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}

	// The right token passes the guard; whatever the transport answers,
	// it is not a 401.
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer sesame")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.NotEqual(t, http.StatusUnauthorized, rec.Code)
}

func TestGuardDisabledWithoutToken(t *testing.T) {
	s := newTestServer(t, "")

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.NotEqual(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthBypassesGuard(t *testing.T) {
	s := newTestServer(t, "sesame")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}
