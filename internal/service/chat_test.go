package service

import (
	"context"
	"testing"

	"github.com/Maxime-Guy/twigane/internal/audio"
	"github.com/Maxime-Guy/twigane/internal/model"
	"github.com/Maxime-Guy/twigane/internal/retrieval"
)

func testChatService(t *testing.T) *ChatService {
	t.Helper()

	index, err := retrieval.BuildIndex([]model.CorpusEntry{
		{
			Instruction: "How do you greet someone in Kinyarwanda?",
			Response:    "Muraho is the most common greeting",
			Meta:        model.EntryMeta{Category: "greetings", DifficultyLevel: "beginner"},
		},
		{
			Instruction: "What does gatanu mean?",
			Response:    "Gatanu means five in Kinyarwanda",
			Meta:        model.EntryMeta{Category: "numbers", DifficultyLevel: "beginner"},
		},
	}, retrieval.Options{})
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}

	clips := audio.BuildIndex([]model.AudioRow{
		{Sentence: "Gatanu.", Path: "gatanu.mp3", UpVotes: 3, DownVotes: 1},
		{Sentence: "Muraho neza", Path: "muraho.mp3"},
	}, func(string) bool { return true })

	return NewChatService(index, clips, nil, nil, 3)
}

func TestAsk_EmptyQuestion(t *testing.T) {
	t.Parallel()

	svc := testChatService(t)
	resp := svc.Ask(context.Background(), "", "   ")
	if resp.Type != "error" {
		t.Errorf("Type = %q, want error", resp.Type)
	}
}

func TestAsk_PronunciationHit(t *testing.T) {
	t.Parallel()

	svc := testChatService(t)
	resp := svc.Ask(context.Background(), "", `How does "gatanu" sound?`)

	if resp.Type != "pronunciation" {
		t.Fatalf("Type = %q, want pronunciation", resp.Type)
	}
	if resp.DetectedType != model.CategoryPronunciation {
		t.Errorf("DetectedType = %q, want pronunciation", resp.DetectedType)
	}
	if resp.AudioFile != "gatanu.mp3" {
		t.Errorf("AudioFile = %q, want gatanu.mp3", resp.AudioFile)
	}
	if resp.AudioURL != "/v1/audio/clips/gatanu.mp3" {
		t.Errorf("AudioURL = %q", resp.AudioURL)
	}
	if resp.Votes == nil || resp.Votes.Up != 3 {
		t.Errorf("Votes = %+v, want up=3", resp.Votes)
	}
}

func TestAsk_PronunciationMissSuggests(t *testing.T) {
	t.Parallel()

	svc := testChatService(t)
	resp := svc.Ask(context.Background(), "", `How does "muraho cyane" sound?`)

	if resp.Type != "pronunciation_miss" {
		t.Fatalf("Type = %q, want pronunciation_miss", resp.Type)
	}
	if len(resp.Suggestions) == 0 {
		t.Error("expected suggestions on a miss")
	}
	if resp.AvailableCount != 2 {
		t.Errorf("AvailableCount = %d, want 2", resp.AvailableCount)
	}
}

func TestAsk_TeachingPath(t *testing.T) {
	t.Parallel()

	svc := testChatService(t)
	resp := svc.Ask(context.Background(), "", "greet a friend politely")

	if resp.Type != "teaching" {
		t.Fatalf("Type = %q, want teaching", resp.Type)
	}
	if resp.Category != "greetings" {
		t.Errorf("Category = %q, want greetings", resp.Category)
	}
	if resp.Response == "" {
		t.Error("empty response")
	}
}

// Without a corpus index the service must still answer from the canned
// fallbacks.
func TestAsk_NoIndexFallsBack(t *testing.T) {
	t.Parallel()

	svc := NewChatService(nil, nil, nil, nil, 3)
	resp := svc.Ask(context.Background(), "", "hello")
	if resp.Response == "" {
		t.Fatal("empty response without index")
	}
	if resp.Category != "greetings" {
		t.Errorf("Category = %q, want canned greeting", resp.Category)
	}
}

// Translation questions route to teaching when no translator is configured.
func TestAsk_TranslationDegraded(t *testing.T) {
	t.Parallel()

	svc := testChatService(t)
	resp := svc.Ask(context.Background(), "", "How do you say hello in Kinyarwanda?")
	if resp.Type != "teaching" {
		t.Errorf("Type = %q, want teaching via degraded translator", resp.Type)
	}
	if resp.DetectedType != model.CategoryTranslation {
		t.Errorf("DetectedType = %q, want translation", resp.DetectedType)
	}
}

func TestExtractTranslatableText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"How do you say 'good morning' in Kinyarwanda?", "good morning"},
		{`Translate "thank you very much"`, "thank you very much"},
		{"How do you say hello in Kinyarwanda?", "hello"},
		{"translate good night to kinyarwanda", "good night"},
		{"good morning", "good morning"},
	}

	for _, tc := range tests {
		if got := extractTranslatableText(tc.in); got != tc.want {
			t.Errorf("extractTranslatableText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
