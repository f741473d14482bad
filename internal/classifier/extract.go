package classifier

import (
	"regexp"
	"strings"
)

// Quoted forms are tried before unquoted ones so that `how does "gatanu"
// sound` extracts exactly the quoted text.
var extractPatterns = compilePatterns([]string{
	`how does "([^"]+)" sound`,
	`how do you say "([^"]+)"`,
	`how is "([^"]+)" pronounced`,
	`pronounce "([^"]+)"`,
	`what does "([^"]+)" sound like`,
	`how to say "([^"]+)"`,
	`sound of "([^"]+)"`,
	`audio for "([^"]+)"`,
	`listen to "([^"]+)"`,
	`hear "([^"]+)"`,
	`speak "([^"]+)"`,
	`play "([^"]+)"`,

	`how does ([a-zA-Z\s]+) sound`,
	`how do you say ([a-zA-Z\s]+)`,
	`how is ([a-zA-Z\s]+) pronounced`,
	`pronounce ([a-zA-Z\s]+)`,
	`what does ([a-zA-Z\s]+) sound like`,
	`how to say ([a-zA-Z\s]+)`,
	`sound of ([a-zA-Z\s]+)`,
	`audio for ([a-zA-Z\s]+)`,
	`listen to ([a-zA-Z\s]+)`,
	`hear ([a-zA-Z\s]+)`,
	`speak ([a-zA-Z\s]+)`,
	`play ([a-zA-Z\s]+)`,
})

var extractStopWords = map[string]bool{
	"the": true, "a": true, "an": true, "is": true, "are": true,
	"was": true, "were": true, "in": true, "on": true, "at": true,
}

func compilePatterns(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

// ExtractPronunciationTarget pulls the word or phrase a pronunciation
// question is about. Returns "" when nothing plausible can be extracted;
// callers fall back to the whole question.
func ExtractPronunciationTarget(question string) string {
	q := strings.ToLower(question)

	for _, p := range extractPatterns {
		m := p.FindStringSubmatch(q)
		if m == nil {
			continue
		}
		target := strings.TrimSpace(m[1])
		words := strings.Fields(target)
		cleaned := make([]string, 0, len(words))
		for _, w := range words {
			if !extractStopWords[w] {
				cleaned = append(cleaned, w)
			}
		}
		if len(cleaned) > 0 {
			return strings.Join(cleaned, " ")
		}
		return target
	}

	// No pattern matched: take the last word when it looks meaningful.
	words := strings.Fields(question)
	if len(words) > 1 {
		last := strings.Trim(words[len(words)-1], ".,!?")
		if len(last) > 2 {
			return last
		}
	}
	return ""
}
