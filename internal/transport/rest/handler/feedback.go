package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Maxime-Guy/twigane/internal/model"
	"github.com/Maxime-Guy/twigane/internal/repository"
	"github.com/Maxime-Guy/twigane/internal/transport/rest/middleware"
)

// FeedbackHandler handles learner feedback submission.
type FeedbackHandler struct {
	feedbackRepo repository.FeedbackRepo
}

// NewFeedbackHandler creates a new feedback handler. feedbackRepo may be nil
// when Mongo is unreachable.
func NewFeedbackHandler(feedbackRepo repository.FeedbackRepo) *FeedbackHandler {
	return &FeedbackHandler{feedbackRepo: feedbackRepo}
}

// FeedbackRequest is the request body for submitting feedback.
type FeedbackRequest struct {
	UserEmail string `json:"user_email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// Create handles POST /v1/feedback
func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h.feedbackRepo == nil {
		writeError(w, http.StatusServiceUnavailable, "feedback storage is not available")
		return
	}

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}
	if req.UserEmail == "" {
		req.UserEmail = middleware.CallerEmail(r)
	}

	id, err := h.feedbackRepo.Create(r.Context(), &model.Feedback{
		UserEmail: req.UserEmail,
		Subject:   req.Subject,
		Message:   req.Message,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"feedbackId": id})
}
