package model

import "time"

// Activity is one tracked user action, archived in Mongo when persistence
// is available.
type Activity struct {
	ID        string            `json:"id" bson:"_id,omitempty"`
	UserEmail string            `json:"user_email" bson:"userEmail"`
	Type      string            `json:"type" bson:"type"`
	Details   map[string]string `json:"details,omitempty" bson:"details,omitempty"`
	Timestamp time.Time         `json:"timestamp" bson:"timestamp"`
}

// Feedback is a free-form message submitted by a learner.
type Feedback struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserEmail string    `json:"user_email" bson:"userEmail"`
	Subject   string    `json:"subject" bson:"subject"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
}

// UserProgress is the per-user counter set backing the learner dashboard.
type UserProgress struct {
	ChatCount          int     `json:"chat_count"`
	TranslationCount   int     `json:"translation_count"`
	QuizAttempts       int     `json:"quiz_attempts"`
	QuizScoreTotal     float64 `json:"quiz_score_total"`
	PronunciationCount int     `json:"pronunciation_count"`
}

// QuizAverage returns the mean submitted quiz percentage, 0 when no quiz
// has been taken.
func (p UserProgress) QuizAverage() float64 {
	if p.QuizAttempts == 0 {
		return 0
	}
	return p.QuizScoreTotal / float64(p.QuizAttempts)
}

// UserSummary is one row of the admin user listing.
type UserSummary struct {
	Email              string     `json:"email"`
	TotalActivities    int        `json:"total_activities"`
	LastActivity       *time.Time `json:"last_activity,omitempty"`
	ChatCount          int        `json:"chat_count"`
	TranslationCount   int        `json:"translation_count"`
	QuizAttempts       int        `json:"quiz_attempts"`
	PronunciationCount int        `json:"pronunciation_count"`
	AvgQuizScore       float64    `json:"avg_quiz_score"`
}

// QuizScorePoint is one historical quiz result on the learner dashboard.
type QuizScorePoint struct {
	Date      string  `json:"date"`
	Score     float64 `json:"score"`
	Questions int     `json:"questions"`
}

// Achievement is a named milestone on the learner dashboard.
type Achievement struct {
	Name   string `json:"name"`
	Earned bool   `json:"earned"`
}
