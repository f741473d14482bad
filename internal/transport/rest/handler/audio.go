package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Maxime-Guy/twigane/internal/audio"
)

// AudioHandler serves the pronunciation sentence listing and the clip files.
type AudioHandler struct {
	clips    *audio.Index
	clipsDir string
}

// NewAudioHandler creates a new audio handler. clips may be nil when the
// audio dataset failed to load.
func NewAudioHandler(clips *audio.Index, clipsDir string) *AudioHandler {
	return &AudioHandler{clips: clips, clipsDir: clipsDir}
}

// Sentences handles GET /v1/audio/sentences
func (h *AudioHandler) Sentences(w http.ResponseWriter, r *http.Request) {
	if h.clips == nil {
		writeError(w, http.StatusServiceUnavailable, "audio is not available")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total":      h.clips.Len(),
		"sentences":  h.clips.Sentences(),
		"categories": h.clips.Categorize(),
	})
}

// Clip handles GET /v1/audio/clips/{filename}. Filenames are restricted to a
// single path element inside the clips directory.
func (h *AudioHandler) Clip(w http.ResponseWriter, r *http.Request) {
	filename := mux.Vars(r)["filename"]
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		writeError(w, http.StatusBadRequest, "invalid clip name")
		return
	}
	http.ServeFile(w, r, filepath.Join(h.clipsDir, filename))
}
