package middleware

import (
	"net/http"
	"time"
)

// HTTPRecorder принимает измерения HTTP запросов (реализуется metrics.Metrics)
type HTTPRecorder interface {
	HTTPRequest(method, route string, status int, duration time.Duration)
	InFlight(delta float64)
}

// Metrics создает middleware, записывающее количество, длительность
// и число одновременно обрабатываемых запросов
func Metrics(recorder HTTPRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder.InFlight(1)
			defer recorder.InFlight(-1)

			wrapped := wrapResponseWriter(w)
			next.ServeHTTP(wrapped, r)

			recorder.HTTPRequest(r.Method, routeOf(r), wrapped.statusCode, time.Since(start))
		})
	}
}
