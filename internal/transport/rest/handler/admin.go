package handler

import (
	"net/http"
	"strconv"

	"github.com/Maxime-Guy/twigane/internal/repository"
	"github.com/Maxime-Guy/twigane/internal/service"
	"github.com/Maxime-Guy/twigane/internal/transport/rest/middleware"
)

// AdminHandler handles the admin analytics endpoints. Routes using it sit
// behind the admin email middleware.
type AdminHandler struct {
	analyticsSvc *service.AnalyticsService
	feedbackRepo repository.FeedbackRepo
}

// NewAdminHandler creates a new admin handler. feedbackRepo may be nil when
// Mongo is unreachable.
func NewAdminHandler(analyticsSvc *service.AnalyticsService, feedbackRepo repository.FeedbackRepo) *AdminHandler {
	return &AdminHandler{analyticsSvc: analyticsSvc, feedbackRepo: feedbackRepo}
}

// Analytics handles GET /v1/admin/analytics
func (h *AdminHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	overview := h.analyticsSvc.AdminOverview(r.Context())
	overview["generated_by"] = middleware.GetUserEmail(r.Context())
	writeJSON(w, http.StatusOK, overview)
}

// Users handles GET /v1/admin/users
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.analyticsSvc.ListUsers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total": len(users),
		"users": users,
	})
}

// Feedback handles GET /v1/admin/feedback
func (h *AdminHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	if h.feedbackRepo == nil {
		writeError(w, http.StatusServiceUnavailable, "feedback storage is not available")
		return
	}

	limit := int64(100)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			limit = v
		}
	}

	feedback, err := h.feedbackRepo.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total":    len(feedback),
		"feedback": feedback,
	})
}
