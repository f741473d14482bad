package retrieval

import (
	"regexp"
	"strings"
)

// tokenRegex is compiled once at package initialization.
var tokenRegex = regexp.MustCompile(`[^a-z0-9']+`)

// stopWords is the English stop list applied before n-gram extraction.
var stopWords = map[string]bool{}

func init() {
	for _, w := range strings.Fields(`a about above after again all am an and any are as at be because been
		before being below between both but by could did do does doing down during each few for from further
		had has have having he her here hers herself him himself his how i if in into is it its itself just
		me more most my myself no nor not now of off on once only or other our ours ourselves out over own
		same she should so some such than that the their theirs them themselves then there these they this
		those through to too under until up very was we were what when where which while who whom why will
		with you your yours yourself yourselves`) {
		stopWords[w] = true
	}
}

// tokenize lowercases the text, splits on non-word characters, drops stop
// words, and returns unigrams followed by bigrams of the surviving tokens.
func tokenize(text string) []string {
	raw := tokenRegex.Split(strings.ToLower(text), -1)
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		if w == "" || stopWords[w] {
			continue
		}
		words = append(words, w)
	}

	tokens := make([]string, 0, 2*len(words))
	tokens = append(tokens, words...)
	for i := 0; i+1 < len(words); i++ {
		tokens = append(tokens, words[i]+" "+words[i+1])
	}
	return tokens
}

// wordSet splits on whitespace only, preserving stop words. The keyword
// fallback compares raw words, not index terms.
func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		set[w] = true
	}
	return set
}
