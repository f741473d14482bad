// Package handler holds the REST endpoint handlers.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Maxime-Guy/twigane/internal/service"
	"github.com/Maxime-Guy/twigane/internal/transport/rest/middleware"
)

// ChatHandler handles the chat and translation endpoints.
type ChatHandler struct {
	chatSvc       *service.ChatService
	translatorSvc *service.TranslatorService
	analyticsSvc  *service.AnalyticsService
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(chatSvc *service.ChatService, translatorSvc *service.TranslatorService, analyticsSvc *service.AnalyticsService) *ChatHandler {
	return &ChatHandler{
		chatSvc:       chatSvc,
		translatorSvc: translatorSvc,
		analyticsSvc:  analyticsSvc,
	}
}

// ChatRequest is the request body for asking a question.
type ChatRequest struct {
	Question  string `json:"question"`
	UserEmail string `json:"user_email"`
}

// TranslateRequest is the request body for the dedicated translate endpoint.
type TranslateRequest struct {
	Text      string `json:"text"`
	UserEmail string `json:"user_email"`
}

// Ask handles POST /v1/chat
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Question == "" {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}
	if req.UserEmail == "" {
		req.UserEmail = middleware.CallerEmail(r)
	}

	resp := h.chatSvc.Ask(r.Context(), req.UserEmail, req.Question)
	writeJSON(w, http.StatusOK, resp)
}

// Translate handles POST /v1/translate
func (h *ChatHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	if req.UserEmail == "" {
		req.UserEmail = middleware.CallerEmail(r)
	}

	result, err := h.translatorSvc.Translate(r.Context(), req.Text)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	if h.analyticsSvc != nil {
		h.analyticsSvc.Track(r.Context(), req.UserEmail, service.ActivityTranslation, map[string]string{
			"word_count": strconv.Itoa(result.WordCount),
		})
	}
	writeJSON(w, http.StatusOK, result)
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
