package quiz

import (
	"strings"
	"testing"

	"github.com/Maxime-Guy/twigane/internal/model"
)

func TestCategories(t *testing.T) {
	t.Parallel()

	m := NewManager()
	got := m.Categories()

	want := []string{"culture", "grammar", "numbers", "pronunciation", "vocabulary"}
	if len(got) != len(want) {
		t.Fatalf("Categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDifficulties(t *testing.T) {
	t.Parallel()

	m := NewManager()

	got := m.Difficulties("vocabulary")
	want := []string{"advanced", "beginner", "intermediate"}
	if len(got) != len(want) {
		t.Fatalf("Difficulties(vocabulary) = %v, want %v", got, want)
	}

	// Flat categories have no difficulty split.
	if got := m.Difficulties("numbers"); len(got) != 1 || got[0] != "mixed" {
		t.Errorf("Difficulties(numbers) = %v, want [mixed]", got)
	}

	if got := m.Difficulties("nope"); got != nil {
		t.Errorf("Difficulties(nope) = %v, want nil", got)
	}
}

func TestGenerate_SingleCategoryAndLevel(t *testing.T) {
	t.Parallel()

	m := NewManager()
	generated := m.Generate("vocabulary", "beginner", 5)

	if generated.TotalQuestions != 5 {
		t.Fatalf("TotalQuestions = %d, want 5", generated.TotalQuestions)
	}
	if generated.Category != "vocabulary" || generated.Difficulty != "beginner" {
		t.Errorf("got %q/%q, want requested category and difficulty", generated.Category, generated.Difficulty)
	}
	if !strings.HasPrefix(generated.QuizID, "quiz_") {
		t.Errorf("QuizID = %q, want quiz_ prefix", generated.QuizID)
	}
	for _, q := range generated.Questions {
		if !strings.HasPrefix(q.ID, "vocab_0") {
			t.Errorf("question %q leaked from another pool", q.ID)
		}
	}
}

func TestGenerate_RequestLargerThanPool(t *testing.T) {
	t.Parallel()

	m := NewManager()
	generated := m.Generate("vocabulary", "advanced", 50)

	if generated.TotalQuestions != 4 {
		t.Errorf("TotalQuestions = %d, want all 4 advanced questions", generated.TotalQuestions)
	}
}

// Flat categories only contribute questions when difficulty is mixed.
func TestGenerate_FlatCategoryNeedsMixed(t *testing.T) {
	t.Parallel()

	m := NewManager()

	if generated := m.Generate("numbers", "beginner", 5); generated.TotalQuestions != 0 {
		t.Errorf("numbers/beginner returned %d questions, want 0", generated.TotalQuestions)
	}
	if generated := m.Generate("numbers", "mixed", 5); generated.TotalQuestions != 5 {
		t.Errorf("numbers/mixed returned %d questions, want 5", generated.TotalQuestions)
	}
}

func TestGenerate_MixedWildcards(t *testing.T) {
	t.Parallel()

	m := NewManager()
	generated := m.Generate("mixed", "mixed", 100)

	// Every question in the bank qualifies.
	total := 0
	for _, set := range bank {
		for _, qs := range set.levels {
			total += len(qs)
		}
		total += len(set.flat)
	}
	if generated.TotalQuestions != total {
		t.Errorf("mixed/mixed returned %d questions, want the whole bank (%d)", generated.TotalQuestions, total)
	}
}

func TestGenerate_UnknownCategory(t *testing.T) {
	t.Parallel()

	m := NewManager()
	if generated := m.Generate("nope", "mixed", 5); generated.TotalQuestions != 0 {
		t.Errorf("unknown category returned %d questions, want 0", generated.TotalQuestions)
	}
}

func TestScore(t *testing.T) {
	t.Parallel()

	m := NewManager()
	questions := []model.QuizQuestion{
		{ID: "q1", Question: "?", Options: []string{"a", "b"}, CorrectAnswer: 0},
		{ID: "q2", Question: "?", Options: []string{"a", "b"}, CorrectAnswer: 1},
		{ID: "q3", Question: "?", Options: []string{"a", "b"}, CorrectAnswer: 0},
	}

	result := m.Score(questions, []int{0, 0})

	if result.TotalQuestions != 3 || result.CorrectAnswers != 1 {
		t.Fatalf("got %d/%d correct, want 1/3", result.CorrectAnswers, result.TotalQuestions)
	}
	// 1/3 rounded to one decimal.
	if result.Percentage != 33.3 {
		t.Errorf("Percentage = %f, want 33.3", result.Percentage)
	}
	// The unanswered third question is recorded as -1.
	if result.DetailedResults[2].UserAnswer != -1 {
		t.Errorf("missing answer recorded as %d, want -1", result.DetailedResults[2].UserAnswer)
	}
	if result.DetailedResults[1].IsCorrect {
		t.Error("wrong answer marked correct")
	}
}

func TestScore_PerformanceTiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		percentage float64
		want       string
	}{
		{95, "excellent"},
		{90, "excellent"},
		{85, "good"},
		{75, "fair"},
		{65, "needs_improvement"},
		{30, "poor"},
	}

	for _, tc := range tests {
		if got, _ := performanceFor(tc.percentage); got != tc.want {
			t.Errorf("performanceFor(%v) = %q, want %q", tc.percentage, got, tc.want)
		}
	}
}

func TestScore_Empty(t *testing.T) {
	t.Parallel()

	m := NewManager()
	result := m.Score(nil, nil)
	if result.Percentage != 0 || result.TotalQuestions != 0 {
		t.Errorf("empty quiz scored %+v, want zeroes", result)
	}
}
