package retrieval

import (
	"strings"

	"github.com/Maxime-Guy/twigane/internal/model"
)

// Boosts applied by the keyword fallback. They stack multiplicatively with
// no normalization bound, so the resulting score is a heuristic ranking
// value, not a probability.
const (
	categoryBoost = 1.5
	verbatimBoost = 1.2
)

// keywordFallback scores every entry by word overlap between the question
// and the entry's instruction plus the first 20 words of its response.
// Ties keep the lowest entry index.
func (idx *Index) keywordFallback(question string, cat model.Category) model.MatchResult {
	qLower := strings.ToLower(question)
	qWords := wordSet(qLower)
	qLen := len(qWords)
	if qLen == 0 {
		qLen = 1
	}

	bestIdx, bestScore := 0, 0.0
	for i, e := range idx.entries {
		instruction := strings.ToLower(e.Instruction)
		instrWords := wordSet(instruction)

		respWords := strings.Fields(strings.ToLower(e.Response))
		if len(respWords) > 20 {
			respWords = respWords[:20]
		}
		respSet := make(map[string]bool, len(respWords))
		for _, w := range respWords {
			respSet[w] = true
		}

		instrOverlap, respOverlap := 0, 0
		for w := range qWords {
			if instrWords[w] {
				instrOverlap++
			}
			if respSet[w] {
				respOverlap++
			}
		}

		score := float64(2*instrOverlap+respOverlap) / float64(qLen)

		if cat != model.CategoryTeaching && metaMatches(e.Meta, cat) {
			score *= categoryBoost
		}
		for w := range qWords {
			if len(w) > 3 && strings.Contains(instruction, w) {
				score *= verbatimBoost
				break
			}
		}

		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	return model.MatchResult{EntryIndex: bestIdx, Score: bestScore, Kind: model.MatchKeyword}
}
