package audio

import "strings"

// Kinyarwanda digit words used to bucket number sentences.
var numberWords = []string{
	"zeru", "rimwe", "kabiri", "gatatu", "kane", "gatanu",
	"gatandatu", "karindwi", "umunani", "icyenda", "icumi",
}

// Categorize buckets the indexed sentences for UI display: number words,
// short single words, short phrases, and longer sentences.
func (idx *Index) Categorize() map[string][]string {
	categories := map[string][]string{
		"numbers":        {},
		"short_words":    {},
		"phrases":        {},
		"long_sentences": {},
	}

	for _, sentence := range idx.sentences {
		normalized := Normalize(sentence)
		words := strings.Fields(sentence)

		switch {
		case containsNumberWord(normalized):
			categories["numbers"] = append(categories["numbers"], sentence)
		case len(words) == 1 && len(sentence) <= 8:
			categories["short_words"] = append(categories["short_words"], sentence)
		case len(words) <= 4:
			categories["phrases"] = append(categories["phrases"], sentence)
		default:
			categories["long_sentences"] = append(categories["long_sentences"], sentence)
		}
	}

	return categories
}

func containsNumberWord(normalized string) bool {
	for _, num := range numberWords {
		if strings.Contains(normalized, num) {
			return true
		}
	}
	return false
}
