// Package sink provides output destinations for generated declaration
// text.
package sink

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrExists is returned when a sink refuses to overwrite an existing file.
var ErrExists = errors.New("file already exists")

// OutputSink receives generated file content.
type OutputSink interface {
	// WriteFile writes content to the specified relative path; the sink
	// determines the actual location.
	WriteFile(path string, content []byte) error
}

// FilesystemSink writes to a directory on the local filesystem.
type FilesystemSink struct {
	// Root is the base directory for all writes.
	Root string

	// Mode is the file permission mode (default 0644).
	Mode os.FileMode

	// Overwrite controls behavior for existing files. If false, WriteFile
	// returns ErrExists when the target exists.
	Overwrite bool
}

// NewFilesystemSink returns a FilesystemSink writing under root,
// overwriting existing files.
func NewFilesystemSink(root string) *FilesystemSink {
	return &FilesystemSink{Root: root, Mode: 0644, Overwrite: true}
}

// WriteFile writes content to path within the root directory. Parent
// directories are created as needed, and the write is atomic via a
// temporary file and rename.
func (s *FilesystemSink) WriteFile(path string, content []byte) error {
	if err := ValidatePath(path); err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	full := filepath.Join(s.Root, filepath.FromSlash(path))

	if !s.Overwrite {
		if _, err := os.Stat(full); err == nil {
			return fmt.Errorf("%q: %w", path, ErrExists)
		}
	}

	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	mode := s.Mode
	if mode == 0 {
		mode = 0644
	}

	tmp, err := os.CreateTemp(filepath.Dir(full), ".tsgen-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, full); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// ValidatePath rejects absolute paths and path traversal outside the sink
// root.
func ValidatePath(path string) error {
	if path == "" {
		return errors.New("empty path")
	}
	if filepath.IsAbs(path) || strings.HasPrefix(path, "/") {
		return errors.New("absolute paths are not allowed")
	}
	clean := filepath.ToSlash(filepath.Clean(path))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return errors.New("path escapes the output directory")
	}
	return nil
}

// BufferSink collects written files in memory, for tests and dry runs.
type BufferSink struct {
	Files map[string][]byte
}

// NewBufferSink returns an empty BufferSink.
func NewBufferSink() *BufferSink {
	return &BufferSink{Files: make(map[string][]byte)}
}

// WriteFile records the content under path.
func (s *BufferSink) WriteFile(path string, content []byte) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	s.Files[path] = append([]byte(nil), content...)
	return nil
}
