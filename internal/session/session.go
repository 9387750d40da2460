// Package session persists small cross-run conveniences (minibuffer
// history per prompt kind and the recently-visited file list) as one
// human-diffable JSON document. Undo state is never persisted here.
package session

import (
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// MaxRecentFiles bounds the recent-file list.
const MaxRecentFiles = 20

// MaxHistoryEntries bounds each prompt kind's saved history.
const MaxHistoryEntries = 50

// Store reads and writes the session document at a fixed path. A zero
// path disables persistence: every method becomes a cheap no-op.
type Store struct {
	path string
	doc  []byte
}

// Open loads the session document at path, starting empty if the file
// does not exist or does not parse.
func Open(path string) *Store {
	s := &Store{path: path, doc: []byte(`{}`)}
	if path == "" {
		return s
	}
	data, err := os.ReadFile(path)
	if err == nil && gjson.ValidBytes(data) {
		s.doc = data
	}
	return s
}

// RecentFiles returns the recently-visited file paths, most recent
// first.
func (s *Store) RecentFiles() []string {
	return s.strings("recent_files")
}

// TouchFile promotes path to the front of the recent-file list.
func (s *Store) TouchFile(path string) {
	if s.path == "" || path == "" {
		return
	}
	files := s.RecentFiles()
	out := make([]string, 0, len(files)+1)
	out = append(out, path)
	for _, f := range files {
		if f != path && len(out) < MaxRecentFiles {
			out = append(out, f)
		}
	}
	s.doc, _ = sjson.SetBytes(s.doc, "recent_files", out)
}

// History returns the saved minibuffer history for one prompt kind
// (e.g. "find-file"), oldest first, the order the minibuffer's
// history walk expects.
func (s *Store) History(kind string) []string {
	return s.strings("history." + escapeKey(kind))
}

// AppendHistory records one submitted minibuffer entry for kind,
// dropping the oldest entries past MaxHistoryEntries.
func (s *Store) AppendHistory(kind, entry string) {
	if s.path == "" || entry == "" {
		return
	}
	hist := append(s.History(kind), entry)
	if len(hist) > MaxHistoryEntries {
		hist = hist[len(hist)-MaxHistoryEntries:]
	}
	s.doc, _ = sjson.SetBytes(s.doc, "history."+escapeKey(kind), hist)
}

// Save writes the document back to disk, pretty-printed, creating the
// parent directory as needed.
func (s *Store) Save() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, pretty.Pretty(s.doc), 0o644)
}

func (s *Store) strings(path string) []string {
	var out []string
	for _, v := range gjson.GetBytes(s.doc, path).Array() {
		out = append(out, v.String())
	}
	return out
}

// escapeKey protects gjson path metacharacters in a prompt-kind name.
func escapeKey(key string) string {
	out := make([]byte, 0, len(key))
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '.', '*', '?', '\\', '|', '#', '@':
			out = append(out, '\\')
		}
		out = append(out, key[i])
	}
	return string(out)
}
