package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// withRequestLog tags each request with an id and logs it on completion.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		w.Header().Set("X-Request-ID", reqID)
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug().
			Str("request_id", reqID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("http request")
	})
}

// allowMutation applies the shared token bucket to mutating requests.
func (s *Server) allowMutation(w http.ResponseWriter) bool {
	if !s.limiter.Allow() {
		writeError(w, http.StatusTooManyRequests, "too many requests")
		return false
	}
	return true
}
