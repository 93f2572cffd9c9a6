package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/versioneditor/pkg/api"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

func TestHealthHandler_Health(t *testing.T) {
	logger := setupTestLogger()
	handler := NewHealthHandler(logger, pingerFunc(func(ctx context.Context) error { return nil }), "1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()

	handler.Health(w, req)

	resp := w.Result()
	defer func() {
		err := resp.Body.Close()
		assert.NoError(t, err)
	}()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var healthResp api.HealthResponse
	err := json.NewDecoder(resp.Body).Decode(&healthResp)
	require.NoError(t, err)

	assert.Equal(t, "ok", healthResp.Status)
	assert.Equal(t, "1.2.3", healthResp.Version)
}

func TestHealthHandler_StorageUnavailable(t *testing.T) {
	logger := setupTestLogger()
	handler := NewHealthHandler(logger, pingerFunc(func(ctx context.Context) error {
		return errors.New("database is closed")
	}), "dev")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()

	handler.Health(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var healthResp api.HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&healthResp))
	assert.Equal(t, "unavailable", healthResp.Status)
	assert.Equal(t, "database is closed", healthResp.Storage)
}

func TestHealthHandler_NoPinger(t *testing.T) {
	handler := NewHealthHandler(setupTestLogger(), nil, "dev")

	w := httptest.NewRecorder()
	handler.Health(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
