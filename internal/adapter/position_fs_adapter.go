// Package adapter contains infrastructure adapters for the mutatex CLI.
package adapter

import (
	"fmt"
	"os"

	m "github.com/kalestew/mutatex/internal/model"
)

// PositionFSAdapter abstracts the filesystem operations the workflows rely
// on. It hides direct `os` access so the domain logic can be tested without
// touching the disk.
type PositionFSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path so callers can check existence or
	// distinguish files from directories.
	FileInfo(path m.Path) (os.FileInfo, error)

	// CreateTemp creates a temporary file from the pattern and returns its
	// path. The file is created empty; the caller writes and removes it.
	CreateTemp(pattern string) (m.Path, error)

	// Remove deletes a single file.
	Remove(path m.Path) error
}

// LocalPositionFSAdapter backs PositionFSAdapter with the local filesystem.
type LocalPositionFSAdapter struct{}

// NewLocalPositionFSAdapter constructs a LocalPositionFSAdapter ready to be
// wired into the workflows.
func NewLocalPositionFSAdapter() *LocalPositionFSAdapter {
	return &LocalPositionFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalPositionFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalPositionFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns metadata for the path.
func (a *LocalPositionFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// CreateTemp creates an empty temporary file in the default temp directory.
func (a *LocalPositionFSAdapter) CreateTemp(pattern string) (m.Path, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	return m.Path(f.Name()), nil
}

// Remove deletes the file at path.
func (a *LocalPositionFSAdapter) Remove(path m.Path) error {
	return os.Remove(string(path))
}
