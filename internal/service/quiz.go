package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/Maxime-Guy/twigane/internal/model"
	"github.com/Maxime-Guy/twigane/internal/quiz"
)

// ErrQuizNotFound is returned when a submitted quiz ID is unknown or was
// already scored.
var ErrQuizNotFound = errors.New("quiz not found")

// activeQuizCap bounds the number of unsubmitted quizzes held in memory.
const activeQuizCap = 1000

// QuizService generates quizzes and scores submissions. Generated quizzes
// are held in memory until submitted so answers never travel to the client.
type QuizService struct {
	manager   *quiz.Manager
	analytics *AnalyticsService

	mu     sync.Mutex
	active map[string]model.Quiz
}

// NewQuizService creates a quiz service.
func NewQuizService(manager *quiz.Manager, analytics *AnalyticsService) *QuizService {
	return &QuizService{
		manager:   manager,
		analytics: analytics,
		active:    make(map[string]model.Quiz),
	}
}

// Categories lists the bank categories with their difficulty levels.
func (s *QuizService) Categories() map[string][]string {
	out := make(map[string][]string)
	for _, c := range s.manager.Categories() {
		out[c] = s.manager.Difficulties(c)
	}
	return out
}

// Generate builds a new quiz and tracks it for submission.
func (s *QuizService) Generate(category, difficulty string, numQuestions int) (model.Quiz, error) {
	generated := s.manager.Generate(category, difficulty, numQuestions)
	if generated.TotalQuestions == 0 {
		return model.Quiz{}, fmt.Errorf("no questions for category %q difficulty %q", category, difficulty)
	}

	s.mu.Lock()
	if len(s.active) >= activeQuizCap {
		s.evictOneLocked()
	}
	s.active[generated.QuizID] = generated
	s.mu.Unlock()

	return generated, nil
}

// evictOneLocked drops an arbitrary unsubmitted quiz. Map iteration order is
// random enough for this purpose.
func (s *QuizService) evictOneLocked() {
	for id := range s.active {
		delete(s.active, id)
		return
	}
}

// Submit scores the answers for a previously generated quiz. The quiz is
// forgotten after scoring.
func (s *QuizService) Submit(ctx context.Context, userEmail, quizID string, answers []int) (model.QuizResult, error) {
	s.mu.Lock()
	generated, ok := s.active[quizID]
	if ok {
		delete(s.active, quizID)
	}
	s.mu.Unlock()
	if !ok {
		return model.QuizResult{}, ErrQuizNotFound
	}

	result := s.manager.Score(generated.Questions, answers)

	if s.analytics != nil {
		s.analytics.Track(ctx, userEmail, ActivityQuiz, map[string]string{
			"quiz_id":         quizID,
			"category":        generated.Category,
			"percentage":      fmt.Sprintf("%.1f", result.Percentage),
			"total_questions": fmt.Sprintf("%d", result.TotalQuestions),
		})
		s.analytics.TrackQuizScore(ctx, userEmail, result.Percentage)
	}
	return result, nil
}

// Random returns one random question from the whole bank, answer included,
// for the practice flashcard flow.
func (s *QuizService) Random() (model.QuizQuestion, error) {
	generated := s.manager.Generate("mixed", "mixed", 0)
	if generated.TotalQuestions == 0 {
		return model.QuizQuestion{}, fmt.Errorf("question bank is empty")
	}
	return generated.Questions[rand.Intn(len(generated.Questions))], nil
}
