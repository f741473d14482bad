package model

// AudioRow is one raw row of the Common Voice table before indexing.
type AudioRow struct {
	Sentence  string
	Path      string
	UpVotes   int
	DownVotes int
}

// AudioEntry is one indexed recording. NormalizedSentence is the lookup key:
// lowercase, punctuation stripped, whitespace collapsed.
type AudioEntry struct {
	OriginalSentence   string `json:"originalSentence"`
	NormalizedSentence string `json:"-"`
	AudioFilename      string `json:"audioFilename"`
	UpVotes            int    `json:"upVotes"`
	DownVotes          int    `json:"downVotes"`
}

// ClipMatch is a successful audio lookup. Score is 1.0 for exact matches,
// the similarity ratio for fuzzy matches, and a fixed low value for partial
// (substring) matches, which callers should treat as low-confidence.
type ClipMatch struct {
	Entry AudioEntry `json:"entry"`
	Score float64    `json:"score"`
	Kind  MatchKind  `json:"matchKind"`
}
