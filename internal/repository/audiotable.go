package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/Maxime-Guy/twigane/internal/model"
)

// LoadAudioTable reads the Common Voice tab-delimited table. Required
// columns are sentence and path; up_votes and down_votes default to 0 when
// absent or unparseable. Rows missing a sentence or path are skipped.
func LoadAudioTable(path string) ([]model.AudioRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio table: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse audio table: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("audio table %s has no data rows", path)
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[name] = i
	}
	sentenceCol, okS := cols["sentence"]
	pathCol, okP := cols["path"]
	if !okS || !okP {
		return nil, fmt.Errorf("audio table %s missing sentence/path columns", path)
	}

	rows := make([]model.AudioRow, 0, len(records)-1)
	skipped := 0
	for _, rec := range records[1:] {
		if len(rec) <= sentenceCol || len(rec) <= pathCol {
			skipped++
			continue
		}
		sentence, clip := rec[sentenceCol], rec[pathCol]
		if sentence == "" || clip == "" {
			skipped++
			continue
		}
		rows = append(rows, model.AudioRow{
			Sentence:  sentence,
			Path:      clip,
			UpVotes:   intColumn(rec, cols, "up_votes"),
			DownVotes: intColumn(rec, cols, "down_votes"),
		})
	}

	logrus.WithFields(logrus.Fields{
		"rows":    len(rows),
		"skipped": skipped,
	}).Info("loaded audio table")
	return rows, nil
}

func intColumn(rec []string, cols map[string]int, name string) int {
	i, ok := cols[name]
	if !ok || i >= len(rec) {
		return 0
	}
	n, err := strconv.Atoi(rec[i])
	if err != nil {
		return 0
	}
	return n
}

// ClipExists returns a checker that confirms a clip filename exists inside
// the configured clips directory.
func ClipExists(clipsDir string) func(filename string) bool {
	return func(filename string) bool {
		info, err := os.Stat(filepath.Join(clipsDir, filename))
		return err == nil && !info.IsDir()
	}
}
