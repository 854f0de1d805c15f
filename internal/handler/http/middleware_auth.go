package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based node authentication.
//
// It reads the bearer token from the "Authorization" header, validates it via
// [service.AuthService.ParseToken] and stores the node id of the token in the
// request context under [utils.NodeIDCtxKey]. Shadows on the server are kept
// per node id, so every sync route sits behind this middleware.
//
// A missing header, a header without a bearer token, and a token that does
// not validate are all answered with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			utils.WriteError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.NodeIDCtxKey, token.NodeID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
