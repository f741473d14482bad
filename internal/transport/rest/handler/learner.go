package handler

import (
	"net/http"

	"github.com/Maxime-Guy/twigane/internal/service"
	"github.com/Maxime-Guy/twigane/internal/transport/rest/middleware"
)

// LearnerHandler handles the learner-facing dashboard endpoint.
type LearnerHandler struct {
	analyticsSvc *service.AnalyticsService
}

// NewLearnerHandler creates a new learner handler.
func NewLearnerHandler(analyticsSvc *service.AnalyticsService) *LearnerHandler {
	return &LearnerHandler{analyticsSvc: analyticsSvc}
}

// Dashboard handles GET /v1/learner/dashboard
func (h *LearnerHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	email := middleware.CallerEmail(r)
	if email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	dashboard, err := h.analyticsSvc.Dashboard(r.Context(), email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}
