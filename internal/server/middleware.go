package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/imxdigital/producao-tracker/internal/common"
)

// withMiddleware tags every request with an id and logs its outcome.
func (s *Server) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		ctx := common.WithRequestID(r.Context(), requestID)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))
		s.logger.Info("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", requestID,
			"duration", time.Since(start),
		)
	})
}
