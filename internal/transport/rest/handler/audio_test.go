package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Maxime-Guy/twigane/internal/audio"
	"github.com/Maxime-Guy/twigane/internal/model"
)

func testClips(t *testing.T) *audio.Index {
	t.Helper()
	rows := []model.AudioRow{
		{Sentence: "Gatanu.", Path: "gatanu.mp3", UpVotes: 4},
		{Sentence: "Muraho neza", Path: "muraho.mp3", UpVotes: 2},
	}
	return audio.BuildIndex(rows, func(string) bool { return true })
}

func TestSentences(t *testing.T) {
	t.Parallel()

	h := NewAudioHandler(testClips(t), t.TempDir())
	rec := httptest.NewRecorder()
	h.Sentences(rec, httptest.NewRequest("GET", "/v1/audio/sentences", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Total      int                 `json:"total"`
		Sentences  []string            `json:"sentences"`
		Categories map[string][]string `json:"categories"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Total != 2 {
		t.Errorf("total = %d, want 2", body.Total)
	}
	// The flat sorted listing travels alongside the UI buckets.
	if len(body.Sentences) != 2 || body.Sentences[0] != "Gatanu." || body.Sentences[1] != "Muraho neza" {
		t.Errorf("sentences = %v, want sorted originals", body.Sentences)
	}
	if got := body.Categories["numbers"]; len(got) != 1 || got[0] != "Gatanu." {
		t.Errorf("numbers bucket = %v, want [Gatanu.]", got)
	}
}

func TestSentences_NoIndex(t *testing.T) {
	t.Parallel()

	h := NewAudioHandler(nil, t.TempDir())
	rec := httptest.NewRecorder()
	h.Sentences(rec, httptest.NewRequest("GET", "/v1/audio/sentences", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}
