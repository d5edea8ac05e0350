// Package adapter contains the infrastructure adapters used by the domain:
// file system access, process execution, test-case storage and the
// diff-match-patch engine.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	m "github.com/Eeeeast/diff/internal/model"
)

// SourceFSAdapter abstracts the file system operations the domain relies on,
// so the workflow can be tested without touching the disk.
type SourceFSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// ResolveExecutable returns the absolute, symlink-free path of an
	// existing regular file.
	ResolveExecutable(path m.Path) (m.Path, error)
}

// LocalSourceFSAdapter implements SourceFSAdapter with the os package.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return data, nil
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.WriteFile(string(path), content, perm); err != nil {
		return fmt.Errorf("failed to write to file: %w", err)
	}

	return nil
}

// ResolveExecutable canonicalizes path. Relative paths are resolved against
// the working directory.
func (a *LocalSourceFSAdapter) ResolveExecutable(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", fmt.Errorf("failed to resolve program path: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize program path: %w", err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize program path: %w", err)
	}

	if info.IsDir() {
		return "", fmt.Errorf("program path %s is a directory", resolved)
	}

	return m.Path(resolved), nil
}
