package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLogging(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		wantLevel string
		wantRoute string
		status    int
	}{
		{
			name:      "list versions",
			method:    http.MethodGet,
			path:      "/versions",
			status:    http.StatusOK,
			wantLevel: "INFO",
			wantRoute: "GET /versions",
		},
		{
			name:      "bad save request",
			method:    http.MethodPost,
			path:      "/save-version",
			status:    http.StatusBadRequest,
			wantLevel: "WARN",
			wantRoute: "POST /save-version",
		},
		{
			name:      "store failure",
			method:    http.MethodDelete,
			path:      "/version/abc",
			status:    http.StatusInternalServerError,
			wantLevel: "ERROR",
			wantRoute: "DELETE /version/{id}",
		},
		{
			name:      "unknown route",
			method:    http.MethodGet,
			path:      "/nope",
			status:    http.StatusNotFound,
			wantLevel: "WARN",
			wantRoute: "unmatched",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			mux := http.NewServeMux()
			handler := func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("ok"))
			}
			mux.HandleFunc("GET /versions", handler)
			mux.HandleFunc("POST /save-version", handler)
			mux.HandleFunc("DELETE /version/{id}", handler)

			h := RequestID(Logging(newJSONLogger(&buf))(mux))

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			entries := decodeLogLines(t, &buf)
			require.Len(t, entries, 1)
			entry := entries[0]

			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "HTTP request", entry["msg"])
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.path, entry["path"])
			assert.Equal(t, tt.wantRoute, entry["route"])
			assert.EqualValues(t, tt.status, entry["status"])
			assert.NotEmpty(t, entry["request_id"])
		})
	}
}

func TestLogging_CapturesBytesWritten(t *testing.T) {
	var buf bytes.Buffer

	h := Logging(newJSONLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/versions", nil))

	entries := decodeLogLines(t, &buf)
	require.Len(t, entries, 1)
	assert.EqualValues(t, len(`{"data":[]}`), entries[0]["bytes_written"])
	assert.EqualValues(t, http.StatusOK, entries[0]["status"])
}

func TestLogging_SkipPaths(t *testing.T) {
	var buf bytes.Buffer

	h := Logging(newJSONLogger(&buf), "/api/v1/health", "/metrics")(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	for _, path := range []string{"/api/v1/health", "/metrics"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Empty(t, buf.String())

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/versions", nil))
	assert.Contains(t, buf.String(), "/versions")
}

func TestRequestID(t *testing.T) {
	t.Run("generates id", func(t *testing.T) {
		var seen string
		h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := GetRequestID(r.Context())
			require.True(t, ok)
			seen = id
		}))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/versions", nil))

		assert.Len(t, seen, 36)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("keeps client id", func(t *testing.T) {
		h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, _ := GetRequestID(r.Context())
			assert.Equal(t, "req-42", id)
		}))

		req := httptest.NewRequest(http.MethodGet, "/versions", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
	})

	t.Run("missing in plain context", func(t *testing.T) {
		_, ok := GetRequestID(httptest.NewRequest(http.MethodGet, "/", nil).Context())
		assert.False(t, ok)
	})
}

func TestResponseWriter(t *testing.T) {
	t.Run("default status", func(t *testing.T) {
		rw := wrapResponseWriter(httptest.NewRecorder())
		assert.Equal(t, http.StatusOK, rw.statusCode)
	})

	t.Run("captures status and size", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rw := wrapResponseWriter(rec)

		rw.WriteHeader(http.StatusCreated)
		n, err := rw.Write([]byte("hello"))
		require.NoError(t, err)

		assert.Equal(t, 5, n)
		assert.Equal(t, http.StatusCreated, rw.statusCode)
		assert.EqualValues(t, 5, rw.written)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Same(t, rec, rw.Unwrap())
	})

	t.Run("does not double wrap", func(t *testing.T) {
		rw := wrapResponseWriter(httptest.NewRecorder())
		assert.Same(t, rw, wrapResponseWriter(rw))
	})
}
