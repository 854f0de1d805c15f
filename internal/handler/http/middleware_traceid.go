package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-diffsync/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID takes the trace id from the X-Trace-ID header or makes a new
// one. The id is echoed back, stored under [utils.TraceIDCtxKey] and added
// to the request logger.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), utils.TraceIDCtxKey, traceID)
		ctx = h.logger.WithTraceID(traceID).WithContext(ctx)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
