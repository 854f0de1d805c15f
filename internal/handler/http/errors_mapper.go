package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/internal/patch"
	"github.com/MKhiriev/go-diffsync/internal/service"
	"github.com/MKhiriev/go-diffsync/internal/store"
	"github.com/MKhiriev/go-diffsync/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrUnknownResource:   http.StatusNotFound,
	service.ErrResourceNotFound:  http.StatusNotFound,
	service.ErrInvalidResourceID: http.StatusBadRequest,
	service.ErrPatchConflict:     http.StatusConflict,
	service.ErrShadowMissing:     http.StatusConflict,
	service.ErrInvalidEntity:     http.StatusBadRequest,

	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNodeRegistrationFailed:  http.StatusInternalServerError,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	ErrMalformedBody:          http.StatusBadRequest,
	ErrInvalidBodyHash:        http.StatusBadRequest,
	ErrUnsupportedContentType: http.StatusUnsupportedMediaType,
	ErrNoNodeInContext:        http.StatusUnauthorized,

	patch.ErrInvalidOperation: http.StatusBadRequest,
	patch.ErrUnknownOperation: http.StatusBadRequest,

	store.ErrNodeAlreadyExists: http.StatusConflict,
}

func statusFromError(err error) int {
	// conflicts wrap the patch error that caused them, so they go first
	for _, target := range []error{service.ErrPatchConflict, service.ErrShadowMissing} {
		if errors.Is(err, target) {
			return errorStatusMap[target]
		}
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its status. Server faults do not
// leak their message to the node.
func writeError(w http.ResponseWriter, log *logger.Logger, err error, msg string) {
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg(msg)
	utils.WriteError(w, err.Error(), status)
}
