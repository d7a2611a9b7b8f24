package handlers

import (
	"net/http"

	"github.com/mark47B/iam-service/internal/infra/transport/rest/gen"
)

// GET /health
func (h *Handlers) GetHealth(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, gen.HealthResponse{Status: "ok"})
}
