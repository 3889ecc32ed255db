package snapshot

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"homestay-api/internal/infra/repository/converter"
	"homestay-api/internal/pkg/errs"
)

// File is the JSON mirror of the rooms collection: an indented UTF-8 array of
// room documents.
type File struct {
	path string
	mu   sync.Mutex
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Path() string {
	return f.path
}

// Load reads the snapshot. A missing or empty file yields os.ErrNotExist so
// callers can tell "nothing mirrored yet" from a corrupt file.
func (f *File) Load() ([]converter.RoomDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, os.ErrNotExist
	}

	var docs []converter.RoomDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, errs.Wrapf(err, "failed to unmarshal snapshot %s", f.path)
	}
	return docs, nil
}

// Write replaces the snapshot atomically (temp file + rename) so readers never
// observe a half-written array.
func (f *File) Write(docs []converter.RoomDocument) error {
	if docs == nil {
		docs = []converter.RoomDocument{}
	}

	data, err := Encode(docs)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errs.Wrap(err, "failed to create snapshot directory")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return errs.Wrap(err, "failed to create temp snapshot")
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName) // no-op after a successful rename
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errs.Wrap(err, "failed to write snapshot")
	}
	if err := tmp.Close(); err != nil {
		return errs.Wrap(err, "failed to close snapshot")
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return errs.Wrap(err, "failed to replace snapshot")
	}
	return nil
}

// Encode renders docs exactly as Write stores them.
func Encode(docs []converter.RoomDocument) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(docs); err != nil {
		return nil, errs.Wrap(err, "failed to marshal snapshot")
	}
	return buf.Bytes(), nil
}
