// Package retrieval selects the best-matching teaching response for a
// question from a fixed corpus. The primary path is TF-IDF cosine similarity
// over unigrams and bigrams with a bounded vocabulary; when the best
// similarity is too weak to trust, a keyword-overlap fallback takes over.
// Both paths are deterministic and the index is read-only after construction,
// so queries are safe for concurrent use.
package retrieval

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/Maxime-Guy/twigane/internal/model"
)

const (
	// DefaultMaxVocab caps the vocabulary at the highest-frequency terms.
	DefaultMaxVocab = 5000
	// DefaultMinSimilarity is the cosine score below which the vector
	// result is discarded in favour of the keyword fallback.
	DefaultMinSimilarity = 0.1
)

// ErrEmptyCorpus is returned when the index is built from zero entries.
var ErrEmptyCorpus = errors.New("retrieval: empty corpus")

// Options tunes index construction and querying. Zero values take the
// defaults above.
type Options struct {
	MaxVocab      int
	MinSimilarity float64
}

// Index is the immutable TF-IDF index over a corpus. Build once at startup,
// query from any number of goroutines.
type Index struct {
	entries       []model.CorpusEntry
	idf           map[string]float64
	vectors       []map[string]float64
	norms         []float64
	minSimilarity float64
}

// BuildIndex constructs the vocabulary and per-entry weight vectors from the
// concatenated instruction and response text of every entry.
func BuildIndex(entries []model.CorpusEntry, opts Options) (*Index, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCorpus
	}
	if opts.MaxVocab <= 0 {
		opts.MaxVocab = DefaultMaxVocab
	}
	if opts.MinSimilarity <= 0 {
		opts.MinSimilarity = DefaultMinSimilarity
	}

	docTokens := make([][]string, len(entries))
	docFreq := make(map[string]int)
	for i, e := range entries {
		tokens := tokenize(e.Instruction + " " + e.Response)
		docTokens[i] = tokens
		seen := make(map[string]bool, len(tokens))
		for _, t := range tokens {
			if !seen[t] {
				seen[t] = true
				docFreq[t]++
			}
		}
	}

	vocab := boundVocabulary(docFreq, opts.MaxVocab)

	idx := &Index{
		entries:       entries,
		idf:           make(map[string]float64, len(vocab)),
		vectors:       make([]map[string]float64, len(entries)),
		norms:         make([]float64, len(entries)),
		minSimilarity: opts.MinSimilarity,
	}
	n := float64(len(entries))
	for term := range vocab {
		idx.idf[term] = math.Log(n/float64(docFreq[term])) + 1
	}

	for i, tokens := range docTokens {
		vec := idx.vectorize(tokens)
		idx.vectors[i] = vec
		idx.norms[i] = norm(vec)
	}

	return idx, nil
}

// boundVocabulary keeps at most max terms, preferring terms that appear in
// more documents. Ties break lexicographically so rebuilding is reproducible.
func boundVocabulary(docFreq map[string]int, max int) map[string]bool {
	if len(docFreq) <= max {
		vocab := make(map[string]bool, len(docFreq))
		for t := range docFreq {
			vocab[t] = true
		}
		return vocab
	}

	terms := make([]string, 0, len(docFreq))
	for t := range docFreq {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if docFreq[terms[i]] != docFreq[terms[j]] {
			return docFreq[terms[i]] > docFreq[terms[j]]
		}
		return terms[i] < terms[j]
	})

	vocab := make(map[string]bool, max)
	for _, t := range terms[:max] {
		vocab[t] = true
	}
	return vocab
}

// vectorize builds a TF-IDF weight vector from a token stream, restricted to
// the index vocabulary.
func (idx *Index) vectorize(tokens []string) map[string]float64 {
	counts := make(map[string]float64)
	total := 0
	for _, t := range tokens {
		if _, ok := idx.idf[t]; !ok {
			continue
		}
		counts[t]++
		total++
	}
	if total == 0 {
		return counts
	}
	for t := range counts {
		counts[t] = counts[t] / float64(total) * idx.idf[t]
	}
	return counts
}

func norm(vec map[string]float64) float64 {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	return math.Sqrt(sum)
}

func cosine(a map[string]float64, normA float64, b map[string]float64, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}
	// Iterate the smaller map.
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for t, w := range a {
		dot += w * b[t]
	}
	return dot / (normA * normB)
}

// Len returns the number of indexed entries.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Entry returns the corpus entry at i.
func (idx *Index) Entry(i int) model.CorpusEntry {
	return idx.entries[i]
}

// Retrieve finds the best corpus entry for the question. When cat is not the
// teaching catch-all, candidates whose metadata category or tags mention the
// category are preferred; if none exist the unrestricted best match is used.
// A vector score below MinSimilarity is discarded and the keyword fallback
// decides instead. Retrieve always returns a result.
func (idx *Index) Retrieve(question string, cat model.Category) model.MatchResult {
	qVec := idx.vectorize(tokenize(question))
	qNorm := norm(qVec)

	sims := make([]float64, len(idx.entries))
	for i := range idx.entries {
		sims[i] = cosine(qVec, qNorm, idx.vectors[i], idx.norms[i])
	}

	bestIdx, bestScore := -1, -1.0
	if cat != model.CategoryTeaching {
		for i, e := range idx.entries {
			if !metaMatches(e.Meta, cat) {
				continue
			}
			if sims[i] > bestScore {
				bestIdx, bestScore = i, sims[i]
			}
		}
	}
	if bestIdx < 0 {
		for i, s := range sims {
			if s > bestScore {
				bestIdx, bestScore = i, s
			}
		}
	}

	if bestScore < idx.minSimilarity {
		return idx.keywordFallback(question, cat)
	}
	return model.MatchResult{EntryIndex: bestIdx, Score: bestScore, Kind: model.MatchVector}
}

// metaMatches reports whether the entry metadata textually mentions the
// category, either in its category field or any tag.
func metaMatches(meta model.EntryMeta, cat model.Category) bool {
	name := string(cat)
	if strings.Contains(strings.ToLower(meta.Category), name) {
		return true
	}
	for _, tag := range meta.Tags {
		if strings.Contains(strings.ToLower(tag), name) {
			return true
		}
	}
	return false
}
