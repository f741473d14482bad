package model

// EntryMeta carries the optional metadata attached to a corpus entry.
// Missing fields are resolved to defaults once at load time, never at
// query time.
type EntryMeta struct {
	Category        string   `json:"category"`
	DifficultyLevel string   `json:"difficulty_level"`
	Tags            []string `json:"tags"`
}

// CorpusEntry is one teaching example: an instruction (the prompt a learner
// might ask) and the canned response that answers it.
type CorpusEntry struct {
	Instruction string    `json:"instruction"`
	Response    string    `json:"response"`
	Meta        EntryMeta `json:"metadata"`
}

// MatchKind tags how a match was found.
type MatchKind string

const (
	MatchExact   MatchKind = "exact"
	MatchFuzzy   MatchKind = "fuzzy"
	MatchPartial MatchKind = "partial"
	MatchKeyword MatchKind = "keyword"
	MatchVector  MatchKind = "vector"
)

// MatchResult is the outcome of a retrieval query: the winning corpus entry
// index, a score in [0,1] for exact/fuzzy/vector kinds (the keyword score is
// an unnormalized heuristic), and the kind of match that produced it.
type MatchResult struct {
	EntryIndex int       `json:"entryIndex"`
	Score      float64   `json:"score"`
	Kind       MatchKind `json:"matchKind"`
}
