package apiserver

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *APIServer) RequestID(next http.Handler) http.Handler {
	var fn http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()

		w.Header().Set("X-Request-Id", id)

		zap.L().Debug("incoming request",
			zap.String("id", id),
			zap.String("method", r.Method),
			zap.String("url", r.URL.String()),
			zap.String("client", r.RemoteAddr))

		next.ServeHTTP(w, r)
	}

	return fn
}

func (s *APIServer) Metrics(next http.Handler) http.Handler {
	var fn http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
		defer s.metrics.TrackHTTPRequest(time.Now(), r)

		next.ServeHTTP(w, r)
	}

	return fn
}
