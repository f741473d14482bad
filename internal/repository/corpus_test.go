package repository

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadCorpus(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "corpus.json", `[
		{"instruction": "How do you greet?", "response": "Muraho", "metadata": {"category": "greetings", "difficulty_level": "beginner", "tags": ["greetings"]}},
		{"instruction": "broken entry", "response": ""},
		{"instruction": "No metadata", "response": "Yego"}
	]`)

	entries, err := LoadCorpus(path)
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2 (empty response skipped)", len(entries))
	}
	if entries[0].Meta.Category != "greetings" {
		t.Errorf("Category = %q, want greetings", entries[0].Meta.Category)
	}
	if entries[1].Meta.Tags == nil {
		t.Error("nil tags not defaulted to empty slice")
	}
}

func TestLoadCorpus_Errors(t *testing.T) {
	t.Parallel()

	if _, err := LoadCorpus(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file did not error")
	}

	path := writeTempFile(t, "bad.json", `{"not": "an array"}`)
	if _, err := LoadCorpus(path); err == nil {
		t.Error("malformed JSON did not error")
	}
}

func TestLoadAudioTable(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "clips.tsv",
		"client_id\tpath\tsentence\tup_votes\tdown_votes\n"+
			"c1\tgatanu.mp3\tGatanu.\t4\t1\n"+
			"c2\tmuraho.mp3\tMuraho neza\t2\t0\n"+
			"c3\t\tmissing path\t0\t0\n"+
			"c4\tbad_votes.mp3\tYego\tnope\t\n")

	rows, err := LoadAudioTable(path)
	if err != nil {
		t.Fatalf("LoadAudioTable: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (empty path skipped)", len(rows))
	}
	if rows[0].Sentence != "Gatanu." || rows[0].Path != "gatanu.mp3" {
		t.Errorf("rows[0] = %+v", rows[0])
	}
	if rows[0].UpVotes != 4 || rows[0].DownVotes != 1 {
		t.Errorf("votes = %d/%d, want 4/1", rows[0].UpVotes, rows[0].DownVotes)
	}
	// Unparseable votes default to zero rather than failing the row.
	if rows[2].UpVotes != 0 || rows[2].DownVotes != 0 {
		t.Errorf("bad votes = %d/%d, want 0/0", rows[2].UpVotes, rows[2].DownVotes)
	}
}

func TestLoadAudioTable_MissingColumns(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "bad.tsv", "client_id\tclip\nx\ty\n")
	if _, err := LoadAudioTable(path); err == nil {
		t.Error("table without sentence/path columns did not error")
	}
}

func TestClipExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.mp3"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write clip: %v", err)
	}

	exists := ClipExists(dir)
	if !exists("a.mp3") {
		t.Error("existing clip reported missing")
	}
	if exists("b.mp3") {
		t.Error("missing clip reported present")
	}
}
