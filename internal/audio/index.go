// Package audio maps free-form text to a recorded native-speaker clip.
// Lookup runs three tiers in order, first hit wins: exact normalized-key
// match, longest-common-subsequence similarity above a threshold, then
// substring containment in either direction. The indexed data is short
// utterances, so the O(N) fuzzy scan per query is acceptable.
package audio

import (
	"regexp"
	"sort"
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/Maxime-Guy/twigane/internal/model"
)

const (
	// DefaultFuzzyThreshold is the minimum LCS similarity ratio for a
	// fuzzy match. The comparison is inclusive: a ratio of exactly the
	// threshold matches.
	DefaultFuzzyThreshold = 0.8

	// partialScore is the fixed low confidence reported for substring
	// matches.
	partialScore = 0.3
)

var (
	spaceRegex = regexp.MustCompile(`\s+`)
	punctRegex = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
)

// Normalize produces the canonical lookup key for a sentence: lowercase,
// punctuation stripped, internal whitespace collapsed to single spaces.
func Normalize(sentence string) string {
	s := strings.ToLower(strings.TrimSpace(sentence))
	s = punctRegex.ReplaceAllString(s, "")
	s = spaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Option configures an Index.
type Option func(*Index)

// WithFuzzyThreshold overrides the minimum similarity ratio for fuzzy
// matches. Default: 0.8.
func WithFuzzyThreshold(threshold float64) Option {
	return func(idx *Index) {
		idx.fuzzyThreshold = threshold
	}
}

// Index is the immutable clip lookup table. Safe for concurrent reads after
// construction.
type Index struct {
	byKey          map[string]model.AudioEntry
	keys           []string // sorted, for deterministic scans
	sentences      []string // original sentences, sorted
	fuzzyThreshold float64
}

// BuildIndex builds the lookup table from raw table rows. A row is indexed
// only when exists confirms its clip file is on disk; rows with an empty
// sentence or path are skipped. Later rows with a duplicate normalized key
// replace earlier ones.
func BuildIndex(rows []model.AudioRow, exists func(filename string) bool, opts ...Option) *Index {
	idx := &Index{
		byKey:          make(map[string]model.AudioEntry),
		fuzzyThreshold: DefaultFuzzyThreshold,
	}
	for _, o := range opts {
		o(idx)
	}

	for _, row := range rows {
		sentence := strings.TrimSpace(row.Sentence)
		path := strings.TrimSpace(row.Path)
		if sentence == "" || path == "" {
			continue
		}
		if exists != nil && !exists(path) {
			continue
		}
		key := Normalize(sentence)
		if key == "" {
			continue
		}
		idx.byKey[key] = model.AudioEntry{
			OriginalSentence:   sentence,
			NormalizedSentence: key,
			AudioFilename:      path,
			UpVotes:            row.UpVotes,
			DownVotes:          row.DownVotes,
		}
	}

	idx.keys = make([]string, 0, len(idx.byKey))
	idx.sentences = make([]string, 0, len(idx.byKey))
	for key, entry := range idx.byKey {
		idx.keys = append(idx.keys, key)
		idx.sentences = append(idx.sentences, entry.OriginalSentence)
	}
	sort.Strings(idx.keys)
	sort.Strings(idx.sentences)
	return idx
}

// Len returns the number of indexed clips.
func (idx *Index) Len() int {
	return len(idx.byKey)
}

// Sentences returns all indexed original sentences, sorted.
func (idx *Index) Sentences() []string {
	out := make([]string, len(idx.sentences))
	copy(out, idx.sentences)
	return out
}

// FindClip looks up a recorded clip for text. The boolean is false when no
// tier matched; callers should then offer Suggest results instead.
func (idx *Index) FindClip(text string) (*model.ClipMatch, bool) {
	key := Normalize(text)
	if key == "" {
		return nil, false
	}

	if entry, ok := idx.byKey[key]; ok {
		return &model.ClipMatch{Entry: entry, Score: 1.0, Kind: model.MatchExact}, true
	}

	if m, ok := idx.fuzzyMatch(key); ok {
		return m, true
	}

	for _, stored := range idx.keys {
		if strings.Contains(stored, key) || strings.Contains(key, stored) {
			return &model.ClipMatch{Entry: idx.byKey[stored], Score: partialScore, Kind: model.MatchPartial}, true
		}
	}

	return nil, false
}

// fuzzyMatch scans all stored keys for the best LCS similarity ratio at or
// above the threshold.
func (idx *Index) fuzzyMatch(key string) (*model.ClipMatch, bool) {
	bestScore := 0.0
	var bestKey string
	for _, stored := range idx.keys {
		ratio := lcsRatio(key, stored)
		if ratio > bestScore {
			bestScore = ratio
			bestKey = stored
		}
	}
	if bestKey == "" || bestScore < idx.fuzzyThreshold {
		return nil, false
	}
	return &model.ClipMatch{Entry: idx.byKey[bestKey], Score: bestScore, Kind: model.MatchFuzzy}, true
}

// lcsRatio is the SequenceMatcher-style similarity ratio:
// 2*matches/(len(a)+len(b)) where matches is the length of the longest
// common subsequence of the two strings.
func lcsRatio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	matches := prev[len(rb)]
	return 2 * float64(matches) / float64(len(ra)+len(rb))
}

// Suggest returns up to max original sentences that share at least one
// whitespace-delimited word with the input, best Jaro-Winkler similarity
// first. An input sharing no words with any stored sentence yields an empty
// list.
func (idx *Index) Suggest(text string, max int) []string {
	key := Normalize(text)
	if key == "" || max <= 0 {
		return nil
	}
	inputWords := make(map[string]bool)
	for _, w := range strings.Fields(key) {
		inputWords[w] = true
	}

	type scored struct {
		sentence string
		score    float64
	}
	var candidates []scored
	for _, stored := range idx.keys {
		shared := false
		for _, w := range strings.Fields(stored) {
			if inputWords[w] {
				shared = true
				break
			}
		}
		if !shared {
			continue
		}
		candidates = append(candidates, scored{
			sentence: idx.byKey[stored].OriginalSentence,
			score:    matchr.JaroWinkler(key, stored, false),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].sentence < candidates[j].sentence
	})

	if len(candidates) > max {
		candidates = candidates[:max]
	}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.sentence)
	}
	return out
}
