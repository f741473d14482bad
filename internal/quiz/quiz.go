// Package quiz generates and scores multiple-choice quizzes from a static
// question bank.
package quiz

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Maxime-Guy/twigane/internal/model"
)

// Manager serves quizzes from the static bank. The bank is immutable, so a
// Manager is safe for concurrent use.
type Manager struct{}

// NewManager creates a quiz manager.
func NewManager() *Manager {
	return &Manager{}
}

// Categories returns all bank categories, sorted.
func (m *Manager) Categories() []string {
	out := make([]string, 0, len(bank))
	for c := range bank {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Difficulties returns the difficulty levels available for a category.
// Flat categories report only "mixed"; unknown categories report nothing.
func (m *Manager) Difficulties(category string) []string {
	set, ok := bank[category]
	if !ok {
		return nil
	}
	if set.levels == nil {
		return []string{"mixed"}
	}
	out := make([]string, 0, len(set.levels))
	for d := range set.levels {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Generate builds a random quiz. category and difficulty accept "mixed" as
// a wildcard; flat categories only contribute questions when difficulty is
// mixed. When fewer questions are available than requested, all of them are
// returned.
func (m *Manager) Generate(category, difficulty string, numQuestions int) model.Quiz {
	if numQuestions <= 0 {
		numQuestions = 10
	}

	var available []model.QuizQuestion
	collect := func(set questionSet) {
		if set.levels != nil {
			if difficulty == "mixed" {
				for _, level := range m.sortedLevels(set) {
					available = append(available, set.levels[level]...)
				}
			} else if qs, ok := set.levels[difficulty]; ok {
				available = append(available, qs...)
			}
		} else if difficulty == "mixed" {
			available = append(available, set.flat...)
		}
	}

	if category == "mixed" {
		for _, c := range m.Categories() {
			collect(bank[c])
		}
	} else if set, ok := bank[category]; ok {
		collect(set)
	}

	var selected []model.QuizQuestion
	if len(available) <= numQuestions {
		selected = append(selected, available...)
	} else {
		for _, i := range rand.Perm(len(available))[:numQuestions] {
			selected = append(selected, available[i])
		}
	}
	rand.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})

	return model.Quiz{
		QuizID:         "quiz_" + uuid.New().String()[:8],
		Category:       category,
		Difficulty:     difficulty,
		TotalQuestions: len(selected),
		Questions:      selected,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}
}

// sortedLevels returns the level keys of a set in sorted order so mixed
// generation enumerates deterministically before sampling.
func (m *Manager) sortedLevels(set questionSet) []string {
	levels := make([]string, 0, len(set.levels))
	for l := range set.levels {
		levels = append(levels, l)
	}
	sort.Strings(levels)
	return levels
}

// Score grades submitted answers against the quiz questions. Missing
// answers count as wrong (recorded as -1).
func (m *Manager) Score(questions []model.QuizQuestion, answers []int) model.QuizResult {
	total := len(questions)
	correct := 0
	details := make([]model.QuestionResult, 0, total)

	for i, question := range questions {
		userAnswer := -1
		if i < len(answers) {
			userAnswer = answers[i]
		}
		isCorrect := userAnswer == question.CorrectAnswer
		if isCorrect {
			correct++
		}
		details = append(details, model.QuestionResult{
			QuestionID:    question.ID,
			Question:      question.Question,
			UserAnswer:    userAnswer,
			CorrectAnswer: question.CorrectAnswer,
			Options:       question.Options,
			IsCorrect:     isCorrect,
			Explanation:   question.Explanation,
		})
	}

	percentage := 0.0
	if total > 0 {
		percentage = math.Round(float64(correct)/float64(total)*1000) / 10
	}

	performance, feedback := performanceFor(percentage)

	return model.QuizResult{
		TotalQuestions:  total,
		CorrectAnswers:  correct,
		Percentage:      percentage,
		Performance:     performance,
		Feedback:        feedback,
		DetailedResults: details,
	}
}

func performanceFor(percentage float64) (string, string) {
	switch {
	case percentage >= 90:
		return "excellent", "Excellent work! You have a strong grasp of Kinyarwanda!"
	case percentage >= 80:
		return "good", "Good job! You're doing well with your Kinyarwanda learning."
	case percentage >= 70:
		return "fair", "Fair performance. Keep practicing to improve your skills!"
	case percentage >= 60:
		return "needs_improvement", "You're making progress, but more practice would help."
	default:
		return "poor", "Don't worry! Learning takes time. Keep practicing and you'll improve!"
	}
}
