package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/snack-api/internal/dto"
)

// HealthHandler answers liveness probes.
type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// HandleHealth pings the database: 200 {"status":"ok"}, or 503.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		h.logger.Error("health check failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}
