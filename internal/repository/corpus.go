// Package repository loads the startup datasets and persists analytics
// documents in MongoDB.
package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/Maxime-Guy/twigane/internal/model"
)

// LoadCorpus reads the teaching corpus from a JSON file: an array of
// {instruction, response, metadata} objects. Entries with an empty response
// are malformed and skipped with a log line rather than failing the load.
// Missing metadata fields resolve to defaults here, once, so queries never
// deal with absent values.
func LoadCorpus(path string) ([]model.CorpusEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	var raw []model.CorpusEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}

	entries := make([]model.CorpusEntry, 0, len(raw))
	skipped := 0
	for i, e := range raw {
		if e.Response == "" {
			logrus.WithField("index", i).Warn("skipping corpus entry with empty response")
			skipped++
			continue
		}
		if e.Meta.Tags == nil {
			e.Meta.Tags = []string{}
		}
		entries = append(entries, e)
	}

	logrus.WithFields(logrus.Fields{
		"entries": len(entries),
		"skipped": skipped,
	}).Info("loaded teaching corpus")
	return entries, nil
}
