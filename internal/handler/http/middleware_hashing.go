package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/internal/utils"
)

// withHashing checks the HashSHA256 header of request bodies and signs
// response bodies. It is a no-op when the server runs without a hash key.
// Requests without a body or without the header are let through.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	if h.hasher == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if signature := r.Header.Get(utils.HashHeader); signature != "" && r.Body != nil {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to read request body")
				utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			if !h.hasher.Verify(body, signature) {
				log.Warn().Str("func", "*Handler.withHashing").
					Str("hash from request", signature).
					Msg("hashes are not equal")
				utils.WriteError(w, ErrInvalidBodyHash.Error(), http.StatusBadRequest)
				return
			}
		}

		sw := &signingResponseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		if sw.buf.Len() > 0 {
			w.Header().Set(utils.HashHeader, h.hasher.Sign(sw.buf.Bytes()))
		}
		w.WriteHeader(sw.status)
		_, _ = w.Write(sw.buf.Bytes())
	})
}

// signingResponseWriter holds the response back until the body is complete,
// so that its signature can go into the headers.
type signingResponseWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (w *signingResponseWriter) WriteHeader(statusCode int) {
	w.status = statusCode
}

func (w *signingResponseWriter) Write(b []byte) (int, error) {
	return w.buf.Write(b)
}
