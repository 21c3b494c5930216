package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

func okPing(context.Context) error { return nil }

func failPing(context.Context) error { return errors.New("connection refused") }

func TestHealthHandler_CheckHealth(t *testing.T) {
	tests := []struct {
		name       string
		db, redis  PingFunc
		wantCode   int
		wantStatus string
	}{
		{"all healthy", okPing, okPing, http.StatusOK, "healthy"},
		{"no redis configured", okPing, nil, http.StatusOK, "healthy"},
		{"database down", failPing, okPing, http.StatusServiceUnavailable, "unhealthy"},
		{"redis down", okPing, failPing, http.StatusOK, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()
			e := newTestEcho(s)
			e.GET("/status", NewHealthHandler(s, tt.db, tt.redis).CheckHealth)

			rec := do(e, http.MethodGet, "/status", "")

			assert.Equal(t, tt.wantCode, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, tt.wantStatus, body["status"])
			assert.Equal(t, "test", body["environment"])

			checks := body["checks"].(map[string]any)
			assert.Contains(t, checks, "database")
			if tt.redis == nil {
				assert.NotContains(t, checks, "redis")
			}
		})
	}
}

func TestOpenAPIHandler_ServeOpenAPIUI(t *testing.T) {
	s := newTestServer()
	e := newTestEcho(s)
	assets := fstest.MapFS{"openapi.html": {Data: []byte("<html>docs</html>")}}
	e.GET("/docs", NewOpenAPIHandler(s, assets).ServeOpenAPIUI)

	rec := do(e, http.MethodGet, "/docs", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), "docs")
}

func TestOpenAPIHandler_MissingTemplate(t *testing.T) {
	s := newTestServer()
	e := newTestEcho(s)
	e.GET("/docs", NewOpenAPIHandler(s, fstest.MapFS{}).ServeOpenAPIUI)

	rec := do(e, http.MethodGet, "/docs", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
