package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/vanari-rv/caravan-configurator/pkg/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an identifier (inbound header or a
// fresh UUID), attaches it to the request-scoped logger, and echoes it
// back in the response headers.
func RequestID(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			ctx := log.WithRequestID(r.Context(), reqID)
			w.Header().Set(RequestIDHeader, reqID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
