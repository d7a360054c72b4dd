package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Mahdi-Yadi/Date-Time-Service-Convertor/pkg/logger"
)

// RequestLogging tags every request with a generated request ID and logs it
// with method, path and duration.
func RequestLogging(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-Id")
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set("X-Request-Id", requestID)

			start := time.Now()
			next.ServeHTTP(w, r)

			log.WithRequestID(requestID).WithField("method", r.Method).
				WithField("path", r.URL.Path).
				WithField("duration_ms", time.Since(start).Milliseconds()).
				Info("HTTP request")
		})
	}
}

// CORS adds CORS headers to all responses
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
