package model

// VoteInfo carries Common Voice vote counts for a served clip.
type VoteInfo struct {
	Up   int `json:"up"`
	Down int `json:"down"`
}

// ChatResponse is the payload returned by the chat pipeline. Only the fields
// relevant to the response type are populated; the rest are omitted from the
// wire format.
type ChatResponse struct {
	Response   string  `json:"response"`
	Category   string  `json:"category,omitempty"`
	Difficulty string  `json:"difficulty,omitempty"`
	Confidence float64 `json:"confidence"`
	Type       string  `json:"type"`
	Source     string  `json:"source,omitempty"`

	// Set by the chat router.
	DetectedType Category `json:"detected_type,omitempty"`

	// Pronunciation responses.
	Word           string    `json:"word,omitempty"`
	AudioFile      string    `json:"audio_file,omitempty"`
	AudioURL       string    `json:"audio_url,omitempty"`
	TeachingInfo   string    `json:"teaching_info,omitempty"`
	Votes          *VoteInfo `json:"votes,omitempty"`
	Suggestions    []string  `json:"suggestions,omitempty"`
	AvailableCount int       `json:"available_count,omitempty"`

	// Translation responses.
	OriginalText   string `json:"original_text,omitempty"`
	TranslatedText string `json:"translated_text,omitempty"`
}

// TranslationResult is the payload of the dedicated /translate endpoint.
type TranslationResult struct {
	OriginalText   string `json:"original_text"`
	TranslatedText string `json:"translated_text"`
	Type           string `json:"type"`
	WordCount      int    `json:"word_count"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
	Model          string `json:"model"`
}
