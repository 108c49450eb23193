package restapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"churnboard.openbanklabs.org/internal/logging"
)

// statusRecorder captures the status code written by downstream handlers.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// requestLoggingMiddleware logs every request with a per-request ID and
// stores a request-scoped logger in the context.
func (api *RestAPI) requestLoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()

		requestLogger := api.Logger.With(slog.String("request_id", requestID))
		r = r.WithContext(logging.WithLogger(r.Context(), requestLogger))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logging.LogHTTPRequest(requestLogger, r.Method, r.URL.Path, rec.status,
			float64(time.Since(start).Microseconds())/1000.0)
	})
}
