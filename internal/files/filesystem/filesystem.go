package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider is the file store seen by the pipelines.
type FileSystemProvider interface {
	// ReadDir returns the entries directly inside path, sorted by name.
	ReadDir(path string) ([]FileInfo, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// OpenFile opens a file for streaming. The caller must close it.
	OpenFile(path string) (io.ReadCloser, error)

	// WriteFile creates or truncates the file at path.
	// The parent directory must already exist.
	WriteFile(path string, data []byte) error

	// MkdirAll creates path and any missing parents. Existing directories are not an error.
	MkdirAll(path string) error

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}
