package model

// QuizQuestion is one multiple-choice question from the static bank.
// CorrectAnswer indexes into Options. The answer and explanation are
// withheld from the wire; they only leave the server inside a scored
// QuestionResult.
type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"-"`
	Explanation   string   `json:"-"`
}

// Quiz is a generated set of questions.
type Quiz struct {
	QuizID         string         `json:"quiz_id"`
	Category       string         `json:"category"`
	Difficulty     string         `json:"difficulty"`
	TotalQuestions int            `json:"total_questions"`
	Questions      []QuizQuestion `json:"questions"`
	CreatedAt      string         `json:"created_at"`
}

// QuestionResult is the per-question breakdown of a scored quiz.
type QuestionResult struct {
	QuestionID    string   `json:"question_id"`
	Question      string   `json:"question"`
	UserAnswer    int      `json:"user_answer"`
	CorrectAnswer int      `json:"correct_answer"`
	Options       []string `json:"options"`
	IsCorrect     bool     `json:"is_correct"`
	Explanation   string   `json:"explanation"`
}

// QuizResult is the outcome of scoring a submitted quiz.
type QuizResult struct {
	TotalQuestions  int              `json:"total_questions"`
	CorrectAnswers  int              `json:"correct_answers"`
	Percentage      float64          `json:"percentage"`
	Performance     string           `json:"performance"`
	Feedback        string           `json:"feedback"`
	DetailedResults []QuestionResult `json:"detailed_results"`
}
