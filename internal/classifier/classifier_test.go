package classifier

import (
	"testing"

	"github.com/Maxime-Guy/twigane/internal/model"
)

func TestClassify_Categories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		question string
		want     model.Category
	}{
		{"How does 'muraho' sound?", model.CategoryPronunciation},
		{"How do you pronounce gatanu?", model.CategoryPronunciation},
		{"Play muraho audio", model.CategoryPronunciation},
		{"Translate 'good morning' to Kinyarwanda", model.CategoryTranslation},
		{"How do you say hello in Kinyarwanda?", model.CategoryTranslation},
		{"Explain class 7 nouns and their grammar", model.CategoryGrammar},
		{"What is the sentence structure like?", model.CategoryGrammar},
		{"Tell me a Rwandan proverb", model.CategoryCulture},
		{"How do you show respect to elders?", model.CategoryCulture},
		{"What is the correct answer here?", model.CategoryQuiz},
		{"Give me a quiz question", model.CategoryQuiz},
		{"Practice a conversation between friends", model.CategoryDialogue},
		{"Ordering food at the local restaurant", model.CategoryDialogue},
		{"How do I count to ten?", model.CategoryNumbers},
		{"What is rimwe?", model.CategoryNumbers},
		{"What do I call my mother?", model.CategoryFamily},
		{"Tell me about umwana", model.CategoryFamily},
		{"Tell me something interesting", model.CategoryTeaching},
		{"", model.CategoryTeaching},
	}

	for _, tc := range tests {
		if got := Classify(tc.question); got != tc.want {
			t.Errorf("Classify(%q) = %q, want %q", tc.question, got, tc.want)
		}
	}
}

// Pronunciation outranks translation: "how do you say X" style questions
// containing a sound cue must resolve to pronunciation.
func TestClassify_PriorityOrder(t *testing.T) {
	t.Parallel()

	if got := Classify(`How does "translate" sound?`); got != model.CategoryPronunciation {
		t.Errorf("Classify = %q, want pronunciation to win over translation", got)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	t.Parallel()

	question := "How do you say thank you in Kinyarwanda?"
	first := Classify(question)
	for i := 0; i < 10; i++ {
		if got := Classify(question); got != first {
			t.Fatalf("Classify changed its answer: %q then %q", first, got)
		}
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	t.Parallel()

	if got := Classify("TRANSLATE THIS PHRASE"); got != model.CategoryTranslation {
		t.Errorf("Classify = %q, want translation", got)
	}
}

func TestExtractPronunciationTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		question string
		want     string
	}{
		{`How does "gatanu" sound?`, "gatanu"},
		{`How does "the gatanu" sound?`, "gatanu"},
		{"How do you pronounce muraho?", "muraho"},
		{"pronounce amakuru", "amakuru"},
		{"hi", ""},
	}

	for _, tc := range tests {
		if got := ExtractPronunciationTarget(tc.question); got != tc.want {
			t.Errorf("ExtractPronunciationTarget(%q) = %q, want %q", tc.question, got, tc.want)
		}
	}
}

// When no pattern matches, the last word is used only if it looks meaningful.
func TestExtractPronunciationTarget_LastWordFallback(t *testing.T) {
	t.Parallel()

	if got := ExtractPronunciationTarget("give me muraho"); got != "muraho" {
		t.Errorf("got %q, want last-word fallback muraho", got)
	}
	if got := ExtractPronunciationTarget("say it"); got != "" {
		t.Errorf("got %q, want empty for short last word", got)
	}
}
