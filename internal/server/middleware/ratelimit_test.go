package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(t *testing.T, requests int, window time.Duration) *RateLimiter {
	t.Helper()
	rl := NewRateLimiter(requests, window, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(rl.Stop)
	return rl
}

func TestRateLimiter_Allow(t *testing.T) {
	rl := newTestLimiter(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("10.0.0.1"), "request %d must pass", i+1)
	}
	assert.False(t, rl.Allow("10.0.0.1"))

	// Другой клиент имеет свой bucket
	assert.True(t, rl.Allow("10.0.0.2"))
}

func TestRateLimiter_RemoveIdle(t *testing.T) {
	rl := newTestLimiter(t, 1, time.Minute)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))

	rl.removeIdle(time.Now().Add(time.Hour))

	rl.mu.Lock()
	assert.Empty(t, rl.clients)
	rl.mu.Unlock()

	assert.True(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := newTestLimiter(t, 1, time.Minute)
	assert.NotPanics(t, func() {
		rl.Stop()
		rl.Stop()
	})
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl := newTestLimiter(t, 2, time.Minute)

	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	do := func(method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		req.RemoteAddr = "192.0.2.10:51234"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusCreated, do(http.MethodPost, "/save-version").Code)
	assert.Equal(t, http.StatusCreated, do(http.MethodDelete, "/version/1").Code)

	limited := do(http.MethodPost, "/save-version")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "1", limited.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"message":"rate limit exceeded, please try again later"}`, limited.Body.String())

	// Чтение не ограничивается
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusCreated, do(http.MethodGet, "/versions").Code)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		headers    map[string]string
		name       string
		remoteAddr string
		want       string
	}{
		{
			name:       "remote addr",
			remoteAddr: "192.0.2.1:1234",
			want:       "192.0.2.1",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "192.0.2.1",
			want:       "192.0.2.1",
		},
		{
			name:       "x-forwarded-for chain",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"},
			want:       "203.0.113.7",
		},
		{
			name:       "x-real-ip",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Real-IP": "203.0.113.8"},
			want:       "203.0.113.8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, getClientIP(req))
		})
	}
}
