package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHealth(checks map[string]Check) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHealthHandler("user-rest-service", checks)

	r := gin.New()
	r.GET("/health", h.Liveness)
	r.GET("/health/ready", h.Readiness)
	return r
}

func pass(context.Context) error { return nil }

func TestLiveness(t *testing.T) {
	r := setupHealth(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"user-rest-service"}`, w.Body.String())
}

func TestReadiness(t *testing.T) {
	t.Run("All dependencies up", func(t *testing.T) {
		r := setupHealth(map[string]Check{"database": pass, "redis": pass})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"status":"ok",
			"service":"user-rest-service",
			"dependencies":{"database":{"status":"ok"},"redis":{"status":"ok"}}
		}`, w.Body.String())
	})

	t.Run("Failing dependency", func(t *testing.T) {
		r := setupHealth(map[string]Check{
			"database": pass,
			"redis":    func(context.Context) error { return errors.New("connection refused") },
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp readinessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "degraded", resp.Status)
		assert.Equal(t, dependencyStatus{Status: "ok"}, resp.Dependencies["database"])
		assert.Equal(t, dependencyStatus{Status: "unhealthy", Error: "connection refused"}, resp.Dependencies["redis"])
	})

	t.Run("Checks receive a deadline", func(t *testing.T) {
		var hasDeadline bool
		r := setupHealth(map[string]Check{
			"database": func(ctx context.Context) error {
				_, hasDeadline = ctx.Deadline()
				return nil
			},
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, hasDeadline)
	})
}
