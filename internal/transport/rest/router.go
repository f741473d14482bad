// Package rest wires the HTTP API.
package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Maxime-Guy/twigane/internal/audio"
	"github.com/Maxime-Guy/twigane/internal/model"
	"github.com/Maxime-Guy/twigane/internal/repository"
	"github.com/Maxime-Guy/twigane/internal/service"
	"github.com/Maxime-Guy/twigane/internal/transport/rest/handler"
	"github.com/Maxime-Guy/twigane/internal/transport/rest/middleware"
	"github.com/Maxime-Guy/twigane/internal/transport/ws"
)

// Container holds all dependencies for the router.
type Container struct {
	ChatService       *service.ChatService
	TranslatorService *service.TranslatorService
	QuizService       *service.QuizService
	AnalyticsService  *service.AnalyticsService
	FeedbackRepo      repository.FeedbackRepo
	AudioIndex        *audio.Index
	ClipsDir          string
	Capabilities      model.Capabilities
	AdminEmail        string
	CORSOrigins       string
}

// NewRouter creates the API router with all endpoints.
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	chatHandler := handler.NewChatHandler(c.ChatService, c.TranslatorService, c.AnalyticsService)
	quizHandler := handler.NewQuizHandler(c.QuizService)
	audioHandler := handler.NewAudioHandler(c.AudioIndex, c.ClipsDir)
	adminHandler := handler.NewAdminHandler(c.AnalyticsService, c.FeedbackRepo)
	learnerHandler := handler.NewLearnerHandler(c.AnalyticsService)
	feedbackHandler := handler.NewFeedbackHandler(c.FeedbackRepo)
	healthHandler := handler.NewHealthHandler(c.Capabilities, c.AnalyticsService)
	wsHandler := ws.NewHandler(c.ChatService)

	// Initialize middleware
	adminMW := middleware.NewAdminMiddleware(c.AdminEmail)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.CORSOrigins))

	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.HandleFunc("/stats", healthHandler.Stats).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/chat", chatHandler.Ask).Methods("POST", "OPTIONS")
	v1.HandleFunc("/translate", chatHandler.Translate).Methods("POST", "OPTIONS")

	v1.HandleFunc("/quiz/categories", quizHandler.Categories).Methods("GET", "OPTIONS")
	v1.HandleFunc("/quiz/generate", quizHandler.Generate).Methods("POST", "OPTIONS")
	v1.HandleFunc("/quiz/submit", quizHandler.Submit).Methods("POST", "OPTIONS")
	v1.HandleFunc("/quiz/random", quizHandler.Random).Methods("GET", "OPTIONS")

	v1.HandleFunc("/audio/sentences", audioHandler.Sentences).Methods("GET", "OPTIONS")
	v1.HandleFunc("/audio/clips/{filename}", audioHandler.Clip).Methods("GET", "OPTIONS")

	v1.HandleFunc("/learner/dashboard", learnerHandler.Dashboard).Methods("GET", "OPTIONS")
	v1.HandleFunc("/feedback", feedbackHandler.Create).Methods("POST", "OPTIONS")

	// WebSocket chat
	v1.HandleFunc("/ws/chat", wsHandler.ChatWS).Methods("GET")

	// Admin routes (require the configured admin email)
	adminRoutes := v1.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(adminMW.RequireAdmin)
	adminRoutes.HandleFunc("/analytics", adminHandler.Analytics).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/users", adminHandler.Users).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/feedback", adminHandler.Feedback).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(origins string) mux.MiddlewareFunc {
	if origins == "" {
		origins = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origins)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-User-Email")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
