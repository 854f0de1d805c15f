package http

import (
	"net/http"

	"github.com/MKhiriev/go-diffsync/internal/logger"
	"github.com/MKhiriev/go-diffsync/internal/utils"
)

func (h *Handler) registerNode(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	node, token, err := h.services.AuthService.RegisterNode(r.Context())
	if err != nil {
		writeError(w, log, err, "node registration failed")
		return
	}

	log.Info().Str("node_id", node.NodeID).Msg("node registered")

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	_, _ = utils.WriteJSON(w, node, http.StatusCreated)
}
