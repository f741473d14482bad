// Package service holds the application services behind the HTTP and
// WebSocket handlers.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Maxime-Guy/twigane/internal/config"
	"github.com/Maxime-Guy/twigane/internal/model"
)

// Long inputs are split into chunks of this many words and translated
// chunk by chunk.
const translationChunkWords = 40

// TranslatorService calls the remote English-Kinyarwanda translation model.
// When the endpoint or API key is missing it runs degraded and returns a
// guidance message instead of a translation.
type TranslatorService struct {
	config *config.TranslatorConfig
	client *http.Client
}

// NewTranslatorService creates a new translator service.
func NewTranslatorService(cfg *config.TranslatorConfig) *TranslatorService {
	return &TranslatorService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// Enabled reports whether the remote endpoint is configured.
func (s *TranslatorService) Enabled() bool {
	return s.config.Endpoint != "" && s.config.APIKey != ""
}

// Translate translates English text to Kinyarwanda. Inputs longer than the
// chunk size are translated piecewise and rejoined.
func (s *TranslatorService) Translate(ctx context.Context, text string) (*model.TranslationResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty text")
	}

	words := strings.Fields(text)
	result := &model.TranslationResult{
		OriginalText:   text,
		Type:           "translation",
		WordCount:      len(words),
		SourceLanguage: "english",
		TargetLanguage: "kinyarwanda",
		Model:          s.config.Model,
	}

	if !s.Enabled() {
		result.TranslatedText = "Translation is not available right now. Try asking me about Kinyarwanda words instead, for example: What does 'muraho' mean?"
		result.Model = "unavailable"
		return result, nil
	}

	if len(words) <= translationChunkWords {
		translated, err := s.callModel(ctx, text)
		if err != nil {
			return nil, err
		}
		result.TranslatedText = translated
		return result, nil
	}

	parts := make([]string, 0, len(words)/translationChunkWords+1)
	for start := 0; start < len(words); start += translationChunkWords {
		end := start + translationChunkWords
		if end > len(words) {
			end = len(words)
		}
		translated, err := s.callModel(ctx, strings.Join(words[start:end], " "))
		if err != nil {
			return nil, err
		}
		parts = append(parts, translated)
	}

	result.TranslatedText = strings.Join(parts, " ")
	result.Type = "long_text_translation"
	return result, nil
}

// callModel makes one inference request to the hosted model.
func (s *TranslatorService) callModel(ctx context.Context, text string) (string, error) {
	reqBody := map[string]interface{}{
		"inputs": text,
		"parameters": map[string]string{
			"src_lang": "eng_Latn",
			"tgt_lang": "kin_Latn",
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s", strings.TrimRight(s.config.Endpoint, "/"), s.config.Model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation model returned %d", resp.StatusCode)
	}

	var modelResp []struct {
		TranslationText string `json:"translation_text"`
		GeneratedText   string `json:"generated_text"`
	}
	if err := json.Unmarshal(body, &modelResp); err != nil {
		return "", err
	}
	if len(modelResp) == 0 {
		return "", fmt.Errorf("empty response from translation model")
	}
	if modelResp[0].TranslationText != "" {
		return modelResp[0].TranslationText, nil
	}
	return modelResp[0].GeneratedText, nil
}
