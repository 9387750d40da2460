package buffer

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNoFilePath is returned by Save when the buffer has never been
// associated with a file on disk.
var ErrNoFilePath = errors.New("buffer has no file path")

// Load reads path and returns a new buffer named after its base name,
// seeded with the file's content.
func Load(id ID, path string, opts ...Option) (*Buffer, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	all := append([]Option{WithName(filepath.Base(path)), WithFilePath(abs)}, opts...)
	b := NewFromString(id, string(content), all...)
	b.modified = false
	return b, nil
}

// Save writes the buffer's content to its associated file path,
// clearing the modified flag on success. Returns ErrNoFilePath if the
// buffer was never associated with a file.
func (b *Buffer) Save() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.filePath == "" {
		return ErrNoFilePath
	}
	if err := os.WriteFile(b.filePath, []byte(b.rope.String()), 0o644); err != nil {
		return err
	}
	b.modified = false
	return nil
}

// SaveAs writes the buffer's content to path, associating the buffer
// with it and renaming it to the file's base name.
func (b *Buffer) SaveAs(path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if err := os.WriteFile(abs, []byte(b.rope.String()), 0o644); err != nil {
		return err
	}
	b.filePath = abs
	b.name = filepath.Base(abs)
	b.modified = false
	return nil
}
