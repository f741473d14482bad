package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Maxime-Guy/twigane/internal/service"
	"github.com/Maxime-Guy/twigane/internal/transport/rest/middleware"
)

// QuizHandler handles quiz endpoints.
type QuizHandler struct {
	quizSvc *service.QuizService
}

// NewQuizHandler creates a new quiz handler.
func NewQuizHandler(quizSvc *service.QuizService) *QuizHandler {
	return &QuizHandler{quizSvc: quizSvc}
}

// GenerateQuizRequest is the request body for generating a quiz.
type GenerateQuizRequest struct {
	Category     string `json:"category"`
	Difficulty   string `json:"difficulty"`
	NumQuestions int    `json:"num_questions"`
}

// SubmitQuizRequest is the request body for scoring a quiz.
type SubmitQuizRequest struct {
	QuizID    string `json:"quiz_id"`
	Answers   []int  `json:"answers"`
	UserEmail string `json:"user_email"`
}

// Categories handles GET /v1/quiz/categories
func (h *QuizHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": h.quizSvc.Categories(),
	})
}

// Generate handles POST /v1/quiz/generate
func (h *QuizHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Category == "" {
		req.Category = "mixed"
	}
	if req.Difficulty == "" {
		req.Difficulty = "mixed"
	}

	generated, err := h.quizSvc.Generate(req.Category, req.Difficulty, req.NumQuestions)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, generated)
}

// Submit handles POST /v1/quiz/submit
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.QuizID == "" {
		writeError(w, http.StatusBadRequest, "quiz_id is required")
		return
	}
	if req.UserEmail == "" {
		req.UserEmail = middleware.CallerEmail(r)
	}

	result, err := h.quizSvc.Submit(r.Context(), req.UserEmail, req.QuizID, req.Answers)
	if err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			writeError(w, http.StatusNotFound, "quiz not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Random handles GET /v1/quiz/random
func (h *QuizHandler) Random(w http.ResponseWriter, r *http.Request) {
	question, err := h.quizSvc.Random()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Practice questions ship the answer so the client can self-check.
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":             question.ID,
		"question":       question.Question,
		"options":        question.Options,
		"correct_answer": question.CorrectAnswer,
		"explanation":    question.Explanation,
	})
}
