package model

// Category is the question category assigned by the classifier.
// Exactly one category is assigned per question; CategoryTeaching is the
// catch-all default.
type Category string

const (
	CategoryPronunciation Category = "pronunciation"
	CategoryTranslation   Category = "translation"
	CategoryGrammar       Category = "grammar"
	CategoryCulture       Category = "culture"
	CategoryQuiz          Category = "quiz"
	CategoryDialogue      Category = "dialogue"
	CategoryNumbers       Category = "numbers"
	CategoryFamily        Category = "family"
	CategoryTeaching      Category = "teaching"
)

// Capability describes how much of a subsystem is available. It is resolved
// once at startup and never re-derived per request.
type Capability string

const (
	CapabilityFull        Capability = "full"
	CapabilityDegraded    Capability = "degraded"
	CapabilityUnavailable Capability = "unavailable"
)

// Loaded reports whether the subsystem can serve its primary function.
func (c Capability) Loaded() bool {
	return c == CapabilityFull
}

// Capabilities is the per-subsystem availability report, resolved once at
// startup and exposed by the health and stats endpoints.
type Capabilities struct {
	Retrieval  Capability `json:"retrieval"`
	Audio      Capability `json:"audio"`
	Translator Capability `json:"translator"`
	Quiz       Capability `json:"quiz"`
	Analytics  Capability `json:"analytics"`
}
