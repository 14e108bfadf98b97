package exporter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrWrite matches every WriteError
var ErrWrite = errors.New("export destination not writable")

// WriteError reports a destination that could not be written. No file is
// left at Path when it is returned.
type WriteError struct {
	Path string
	Op   string
	Err  error
}

// Error implements the error interface
func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %s: %v", e.Path, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is matches ErrWrite
func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}

// writeFileAtomic streams content into a temp file next to path and renames
// it into place once fully written and closed.
func writeFileAtomic(path string, content func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &WriteError{Path: path, Op: "create directory", Err: err}
	}

	tmpPath := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return &WriteError{Path: path, Op: "create temp file", Err: err}
	}

	committed := false
	defer func() {
		if !committed {
			f.Close()
			os.Remove(tmpPath)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := content(bw); err != nil {
		var wErr *WriteError
		if errors.As(err, &wErr) {
			return err
		}
		return &WriteError{Path: path, Op: "write", Err: err}
	}
	if err := bw.Flush(); err != nil {
		return &WriteError{Path: path, Op: "flush", Err: err}
	}
	if err := f.Sync(); err != nil {
		return &WriteError{Path: path, Op: "sync", Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		committed = true
		return &WriteError{Path: path, Op: "close", Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		committed = true
		return &WriteError{Path: path, Op: "rename", Err: err}
	}

	committed = true
	return nil
}

// WriteLinkFile writes a plain text file containing exactly link
func WriteLinkFile(path, link string) error {
	return writeFileAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, link)
		return err
	})
}
