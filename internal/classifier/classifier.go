// Package classifier assigns a question category using an ordered table of
// regular-expression rule families. Evaluation order is the priority order:
// the first pattern of the first family that matches wins, so ambiguous
// questions (e.g. "how do you say X" reads as both pronunciation and
// translation) resolve deterministically. Pronunciation is checked first
// because its patterns are the most specific.
package classifier

import (
	"regexp"
	"strings"

	"github.com/Maxime-Guy/twigane/internal/model"
)

// rule is one (category, pattern) row of the dispatch table.
type rule struct {
	category model.Category
	pattern  *regexp.Regexp
}

// rules is the full dispatch table in priority order. Patterns are matched
// against the case-folded question.
var rules = compileRules([]struct {
	category model.Category
	patterns []string
}{
	{model.CategoryPronunciation, []string{
		`how does .* sound`,
		`how do you pronounce`,
		`how is .* pronounced`,
		`can you pronounce`,
		`^pronounce `,
		`what does .* sound like`,
		`how to pronounce`,
		`pronunciation of`,
		`play .* audio`,
		`listen to .*`,
		`audio for .*`,
		`hear .*`,
		`play [a-zA-Z]+`,
		`sound of .*`,
		`say .* out loud`,
		`speak .*`,
		`voice .*`,
	}},
	{model.CategoryTranslation, []string{
		`^translate`,
		`translate to kinyarwanda`,
		`translate.*:`,
		`how do you say.*in kinyarwanda`,
		`kinyarwanda translation`,
		`english to kinyarwanda`,
	}},
	{model.CategoryGrammar, []string{
		`explain.*class.*noun`,
		`noun.*prefix`,
		`grammar.*rule`,
		`sentence.*structure`,
		`verb.*conjugation`,
		`possessive.*adjective`,
		`how.*grammar.*work`,
		`class \d+ noun`,
		`explain.*grammar`,
	}},
	{model.CategoryCulture, []string{
		`proverb`,
		`cultural`,
		`tradition`,
		`respect.*kinyarwanda`,
		`polite.*way`,
		`rwandan.*culture`,
		`show.*respect`,
		`cultural.*norm`,
	}},
	{model.CategoryQuiz, []string{
		`^fill in.*blank`,
		`multiple.*choice`,
		`what is.*correct`,
		`choose.*answer`,
		`a\)|b\)|c\)|d\)`,
		`quiz.*question`,
		`test.*knowledge`,
	}},
	{model.CategoryDialogue, []string{
		`^dialogue`,
		`^role.?play`,
		`conversation.*between`,
		`at the.*restaurant`,
		`asking.*for.*help`,
		`scenario.*`,
		`practice.*conversation`,
	}},
})

// Keyword vocabularies for the two categories detected by substring
// membership rather than regex: digit words and kinship words, in English
// and Kinyarwanda.
var (
	numberWords = []string{"count", "number", "one", "two", "three", "four", "five", "rimwe", "kabiri", "gatatu"}
	familyWords = []string{"family", "child", "father", "mother", "brother", "sister", "umwana", "papa", "mama"}
)

func compileRules(families []struct {
	category model.Category
	patterns []string
}) []rule {
	var out []rule
	for _, f := range families {
		for _, p := range f.patterns {
			out = append(out, rule{category: f.category, pattern: regexp.MustCompile(p)})
		}
	}
	return out
}

// Classify maps a free-text question to its category. It is total and
// deterministic: any input, including the empty string, yields exactly one
// category, defaulting to teaching.
func Classify(question string) model.Category {
	q := strings.ToLower(question)

	for _, r := range rules {
		if r.pattern.MatchString(q) {
			return r.category
		}
	}

	for _, w := range numberWords {
		if strings.Contains(q, w) {
			return model.CategoryNumbers
		}
	}
	for _, w := range familyWords {
		if strings.Contains(q, w) {
			return model.CategoryFamily
		}
	}

	return model.CategoryTeaching
}
