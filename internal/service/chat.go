package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Maxime-Guy/twigane/internal/audio"
	"github.com/Maxime-Guy/twigane/internal/classifier"
	"github.com/Maxime-Guy/twigane/internal/compose"
	"github.com/Maxime-Guy/twigane/internal/model"
	"github.com/Maxime-Guy/twigane/internal/retrieval"
)

// ChatService runs the question pipeline: classify, route to the matching
// subsystem, compose the payload. Any subsystem may be absent; the service
// degrades to whatever is loaded and never fails a request.
type ChatService struct {
	index          *retrieval.Index
	clips          *audio.Index
	translator     *TranslatorService
	analytics      *AnalyticsService
	maxSuggestions int
}

// NewChatService creates a chat service. index and clips may be nil when the
// corresponding dataset failed to load.
func NewChatService(index *retrieval.Index, clips *audio.Index, translator *TranslatorService, analytics *AnalyticsService, maxSuggestions int) *ChatService {
	if maxSuggestions <= 0 {
		maxSuggestions = 3
	}
	return &ChatService{
		index:          index,
		clips:          clips,
		translator:     translator,
		analytics:      analytics,
		maxSuggestions: maxSuggestions,
	}
}

// Ask answers one chat question for a user. userEmail may be empty for
// anonymous sessions; it only feeds analytics.
func (s *ChatService) Ask(ctx context.Context, userEmail, question string) model.ChatResponse {
	question = strings.TrimSpace(question)
	if question == "" {
		return model.ChatResponse{
			Response: "Please ask me something about Kinyarwanda.",
			Type:     "error",
		}
	}

	cat := classifier.Classify(question)

	var resp model.ChatResponse
	switch cat {
	case model.CategoryPronunciation:
		resp = s.answerPronunciation(question)
	case model.CategoryTranslation:
		resp = s.answerTranslation(ctx, question)
	default:
		resp = s.answerTeaching(question, cat)
	}
	resp.DetectedType = cat

	if s.analytics != nil {
		activityType := ActivityChat
		if cat == model.CategoryPronunciation {
			activityType = ActivityPronunciation
		}
		s.analytics.Track(ctx, userEmail, activityType, map[string]string{
			"category": string(cat),
			"type":     resp.Type,
		})
	}
	return resp
}

// answerTeaching serves the retrieval path shared by every category that has
// no dedicated subsystem.
func (s *ChatService) answerTeaching(question string, cat model.Category) model.ChatResponse {
	if s.index == nil {
		return retrieval.FallbackResponse(question)
	}

	match := s.index.Retrieve(question, cat)
	if match.EntryIndex < 0 {
		return retrieval.FallbackResponse(question)
	}
	return compose.Compose(cat, s.index.Entry(match.EntryIndex), match)
}

// answerPronunciation resolves the asked-about word to a recorded clip. On a
// miss it returns suggestions instead of audio.
func (s *ChatService) answerPronunciation(question string) model.ChatResponse {
	target := classifier.ExtractPronunciationTarget(question)
	if target == "" {
		target = question
	}

	if s.clips == nil || s.clips.Len() == 0 {
		resp := s.answerTeaching(question, model.CategoryPronunciation)
		resp.Word = target
		return resp
	}

	match, ok := s.clips.FindClip(target)
	if !ok {
		resp := model.ChatResponse{
			Response:    fmt.Sprintf("I don't have a recording for '%s' yet. Here are some similar sentences I can pronounce for you.", target),
			Type:        "pronunciation_miss",
			Word:        target,
			Suggestions: s.clips.Suggest(target, s.maxSuggestions),
		}
		resp.AvailableCount = s.clips.Len()
		return resp
	}

	entry := match.Entry
	resp := model.ChatResponse{
		Response:   fmt.Sprintf("Here's how '%s' sounds. Listen to the native speaker recording.", entry.OriginalSentence),
		Type:       "pronunciation",
		Confidence: match.Score,
		Word:       entry.OriginalSentence,
		AudioFile:  entry.AudioFilename,
		AudioURL:   "/v1/audio/clips/" + entry.AudioFilename,
		Votes:      &model.VoteInfo{Up: entry.UpVotes, Down: entry.DownVotes},
	}
	if info := s.teachingInfo(entry.OriginalSentence); info != "" {
		resp.TeachingInfo = info
	}
	return resp
}

// teachingInfo asks the corpus what the pronounced word means, so audio
// answers can carry a short meaning line.
func (s *ChatService) teachingInfo(word string) string {
	if s.index == nil {
		return ""
	}
	match := s.index.Retrieve(fmt.Sprintf("What does %s mean?", word), model.CategoryTeaching)
	if match.EntryIndex < 0 || match.Score < 0.2 {
		return ""
	}
	return s.index.Entry(match.EntryIndex).Response
}

// answerTranslation routes translate-style questions to the remote model,
// falling back to corpus teaching when the translator is degraded.
func (s *ChatService) answerTranslation(ctx context.Context, question string) model.ChatResponse {
	if s.translator == nil || !s.translator.Enabled() {
		return s.answerTeaching(question, model.CategoryTranslation)
	}

	text := extractTranslatableText(question)
	result, err := s.translator.Translate(ctx, text)
	if err != nil {
		return s.answerTeaching(question, model.CategoryTranslation)
	}
	return model.ChatResponse{
		Response:       fmt.Sprintf("'%s' in Kinyarwanda is: %s", result.OriginalText, result.TranslatedText),
		Type:           "translation",
		Confidence:     0.9,
		Source:         "translation_model",
		OriginalText:   result.OriginalText,
		TranslatedText: result.TranslatedText,
	}
}

var translationPrefixes = []string{
	"how do you say",
	"how to say",
	"translate",
	"what is the kinyarwanda for",
	"what is the kinyarwanda word for",
}

// extractTranslatableText strips the question scaffolding around the phrase
// to translate. Quoted phrases win; otherwise everything after a known
// prefix is used, and failing that the whole question.
func extractTranslatableText(question string) string {
	q := strings.TrimSpace(question)
	lower := strings.ToLower(q)

	if start := strings.Index(q, "'"); start >= 0 {
		if end := strings.Index(q[start+1:], "'"); end > 0 {
			return q[start+1 : start+1+end]
		}
	}
	if start := strings.Index(q, `"`); start >= 0 {
		if end := strings.Index(q[start+1:], `"`); end > 0 {
			return q[start+1 : start+1+end]
		}
	}

	for _, prefix := range translationPrefixes {
		i := strings.Index(lower, prefix)
		if i < 0 {
			continue
		}
		rest := strings.Trim(q[i+len(prefix):], " ?.!")
		for _, suffix := range []string{"in kinyarwanda", "to kinyarwanda"} {
			if strings.HasSuffix(strings.ToLower(rest), suffix) {
				rest = strings.Trim(rest[:len(rest)-len(suffix)], " ?.!")
			}
		}
		if rest != "" {
			return rest
		}
	}
	return strings.Trim(q, " ?.!")
}
