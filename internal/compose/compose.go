// Package compose joins classifier output and retrieval results into the
// final chat payload. It is the single point where category, confidence and
// text meet before leaving the matching pipeline.
package compose

import (
	"strings"

	"github.com/Maxime-Guy/twigane/internal/model"
)

// followUp holds the trigger word and canned follow-up line for a category.
// The line is appended only when the trigger appears in the response text.
type followUp struct {
	trigger string
	line    string
}

var followUps = map[model.Category]followUp{
	model.CategoryPronunciation: {"sound", " Listen to the audio to hear how it sounds."},
	model.CategoryTranslation:   {"translate", " You can ask 'How do you say [word] in Kinyarwanda?' to translate it."},
	model.CategoryGrammar:       {"explain", " You can ask 'How does [word] work?' to learn more."},
	model.CategoryCulture:       {"respect", " You can ask 'How do you show respect?' to learn more."},
	model.CategoryQuiz:          {"quiz", " You can ask 'What is the correct answer?' to check your knowledge."},
	model.CategoryDialogue:      {"dialogue", " You can ask 'How do you start a conversation?' to practice."},
	model.CategoryNumbers:       {"number", " You can ask 'How do you count?' to learn more."},
	model.CategoryFamily:        {"family", " You can ask 'How do you address your family?' to learn more."},
}

// Second-chance pronunciation line: matches the original behavior of
// suggesting the audio feature when the response mentions pronouncing.
var pronounceAlt = followUp{"pronounce", " You can ask 'How does [word] sound?' to hear it."}

// FormatResponse cleans up a retrieved response for presentation: trims it,
// guarantees terminal punctuation, and appends the category follow-up line
// when its trigger word is present.
func FormatResponse(text string, cat model.Category) string {
	formatted := strings.TrimSpace(text)
	if formatted != "" && !strings.HasSuffix(formatted, ".") &&
		!strings.HasSuffix(formatted, "!") && !strings.HasSuffix(formatted, "?") {
		formatted += "."
	}

	lower := strings.ToLower(formatted)
	if fu, ok := followUps[cat]; ok {
		if strings.Contains(lower, fu.trigger) {
			formatted += fu.line
		} else if cat == model.CategoryPronunciation && strings.Contains(lower, pronounceAlt.trigger) {
			formatted += pronounceAlt.line
		}
	}
	return formatted
}

// Confidence converts a raw match score to a reported confidence. Vector
// scores are doubled and clamped to 1; keyword scores pass through
// unchanged (they are an unnormalized heuristic and may exceed 1 before
// clamping by the caller's presentation layer).
func Confidence(match model.MatchResult) float64 {
	if match.Kind == model.MatchVector {
		if c := match.Score * 2; c < 1 {
			return c
		}
		return 1
	}
	return match.Score
}

// Compose merges the classified category, the winning corpus entry and the
// match result into the chat payload.
func Compose(cat model.Category, entry model.CorpusEntry, match model.MatchResult) model.ChatResponse {
	category := entry.Meta.Category
	if category == "" {
		category = string(cat)
	}
	difficulty := entry.Meta.DifficultyLevel
	if difficulty == "" {
		difficulty = "intermediate"
	}

	return model.ChatResponse{
		Response:     FormatResponse(entry.Response, cat),
		Category:     category,
		Difficulty:   difficulty,
		Confidence:   Confidence(match),
		Type:         "teaching",
		Source:       "enhanced_model",
		DetectedType: cat,
	}
}
