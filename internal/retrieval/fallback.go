package retrieval

import (
	"strings"

	"github.com/Maxime-Guy/twigane/internal/model"
)

// FallbackResponse serves canned answers when no corpus index could be
// built. It never fails: unrecognized input gets the generic teaching
// greeting.
func FallbackResponse(question string) model.ChatResponse {
	q := strings.ToLower(question)

	switch {
	case containsAny(q, "hello", "hi", "muraho", "greeting"):
		return model.ChatResponse{
			Response:   "Muraho! This is the most common greeting in Kinyarwanda, meaning 'Hello'. You can use it at any time of day. Other greetings include 'Mwaramutse' (good morning) and 'Mwiriwe' (good afternoon/evening).",
			Category:   "greetings",
			Difficulty: "beginner",
			Confidence: 0.9,
			Type:       "teaching",
		}
	case containsAny(q, "goodbye", "bye", "murabeho", "farewell"):
		return model.ChatResponse{
			Response:   "Murabeho! This means 'Goodbye' in Kinyarwanda. You can also say 'Tugire amahoro' which means 'Let's have peace' - a more formal way to say goodbye.",
			Category:   "greetings",
			Difficulty: "beginner",
			Confidence: 0.9,
			Type:       "teaching",
		}
	case containsAny(q, "thank", "murakoze", "appreciation"):
		return model.ChatResponse{
			Response:   "Murakoze! This means 'Thank you' in Kinyarwanda. You can also say 'Murakoze cyane' which means 'Thank you very much' for expressing greater appreciation.",
			Category:   "greetings",
			Difficulty: "beginner",
			Confidence: 0.9,
			Type:       "teaching",
		}
	default:
		return model.ChatResponse{
			Response:   "Muraho! I'm here to help you learn Kinyarwanda. You can ask me about vocabulary, grammar, pronunciation, culture, or how to say things in Kinyarwanda. What would you like to learn?",
			Category:   "general",
			Difficulty: "beginner",
			Confidence: 0.5,
			Type:       "teaching",
		}
	}
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
