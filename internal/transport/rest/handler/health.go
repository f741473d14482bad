package handler

import (
	"net/http"

	"github.com/Maxime-Guy/twigane/internal/model"
	"github.com/Maxime-Guy/twigane/internal/service"
)

// HealthHandler reports service health and usage stats.
type HealthHandler struct {
	capabilities model.Capabilities
	analyticsSvc *service.AnalyticsService
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(capabilities model.Capabilities, analyticsSvc *service.AnalyticsService) *HealthHandler {
	return &HealthHandler{capabilities: capabilities, analyticsSvc: analyticsSvc}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if !h.capabilities.Retrieval.Loaded() {
		status = "degraded"
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":               status,
		"capabilities":         h.capabilities,
		"persistent_analytics": h.analyticsSvc.Persistent(),
	})
}

// Stats handles GET /stats
func (h *HealthHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats := h.analyticsSvc.Stats()
	stats["capabilities"] = h.capabilities
	writeJSON(w, http.StatusOK, stats)
}
