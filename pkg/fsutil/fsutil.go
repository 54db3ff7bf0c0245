// Package fsutil provides the file system primitives used to read report
// sources and to write rendered output safely.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")
)

// ReadFile reads a regular file, classifying common failures with the
// sentinel errors above.
func ReadFile(ctx context.Context, path string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, classify("stat", path, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, classify("read", path, err)
	}

	return content, nil
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func classify(op, path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case os.IsPermission(err):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("%s %s: %w", op, path, err)
	}
}
