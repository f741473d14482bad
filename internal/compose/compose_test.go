package compose

import (
	"strings"
	"testing"

	"github.com/Maxime-Guy/twigane/internal/model"
)

func TestFormatResponse_TerminalPunctuation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"Muraho means hello", "Muraho means hello."},
		{"Muraho means hello.", "Muraho means hello."},
		{"Really!", "Really!"},
		{"Does it?", "Does it?"},
		{"  padded  ", "padded."},
	}

	for _, tc := range tests {
		if got := FormatResponse(tc.in, model.CategoryTeaching); got != tc.want {
			t.Errorf("FormatResponse(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatResponse_FollowUpRequiresTrigger(t *testing.T) {
	t.Parallel()

	// Trigger word present: the follow-up line is appended.
	got := FormatResponse("The word for five sounds like gatanu", model.CategoryPronunciation)
	if !strings.Contains(got, "Listen to the audio") {
		t.Errorf("expected audio follow-up, got %q", got)
	}

	// Same category, no trigger word: no line.
	got = FormatResponse("Gatanu means five", model.CategoryPronunciation)
	if strings.Contains(got, "Listen to the audio") {
		t.Errorf("unexpected follow-up without trigger, got %q", got)
	}

	// Second-chance pronunciation trigger.
	got = FormatResponse("You pronounce it with a soft g", model.CategoryPronunciation)
	if !strings.Contains(got, "to hear it") {
		t.Errorf("expected pronounce alternative follow-up, got %q", got)
	}
}

func TestConfidence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		match model.MatchResult
		want  float64
	}{
		{model.MatchResult{Score: 0.3, Kind: model.MatchVector}, 0.6},
		{model.MatchResult{Score: 0.7, Kind: model.MatchVector}, 1.0},
		{model.MatchResult{Score: 2.4, Kind: model.MatchKeyword}, 2.4},
		{model.MatchResult{Score: 0.0, Kind: model.MatchVector}, 0.0},
	}

	for _, tc := range tests {
		if got := Confidence(tc.match); got != tc.want {
			t.Errorf("Confidence(%+v) = %f, want %f", tc.match, got, tc.want)
		}
	}
}

func TestCompose_MetadataDefaults(t *testing.T) {
	t.Parallel()

	entry := model.CorpusEntry{
		Instruction: "greet someone",
		Response:    "Muraho means hello",
	}
	match := model.MatchResult{EntryIndex: 0, Score: 0.4, Kind: model.MatchVector}

	resp := Compose(model.CategoryDialogue, entry, match)
	if resp.Category != "dialogue" {
		t.Errorf("Category = %q, want classifier category fallback", resp.Category)
	}
	if resp.Difficulty != "intermediate" {
		t.Errorf("Difficulty = %q, want intermediate default", resp.Difficulty)
	}
	if resp.DetectedType != model.CategoryDialogue {
		t.Errorf("DetectedType = %q, want dialogue", resp.DetectedType)
	}
	if resp.Confidence != 0.8 {
		t.Errorf("Confidence = %f, want 0.8", resp.Confidence)
	}
	if resp.Type != "teaching" || resp.Source != "enhanced_model" {
		t.Errorf("Type/Source = %q/%q, want teaching/enhanced_model", resp.Type, resp.Source)
	}
}

func TestCompose_MetadataPreserved(t *testing.T) {
	t.Parallel()

	entry := model.CorpusEntry{
		Instruction: "count to five",
		Response:    "Rimwe, kabiri, gatatu, kane, gatanu.",
		Meta:        model.EntryMeta{Category: "numbers", DifficultyLevel: "beginner"},
	}
	resp := Compose(model.CategoryNumbers, entry, model.MatchResult{Score: 0.5, Kind: model.MatchVector})

	if resp.Category != "numbers" || resp.Difficulty != "beginner" {
		t.Errorf("got %q/%q, want entry metadata preserved", resp.Category, resp.Difficulty)
	}
}
