// Package filesystem provides the file store used by the clean and load stages.
//
// This package defines a small provider interface for listing a directory,
// reading, streaming and writing files, enabling testability through an
// in-memory implementation while the production code uses the OS filesystem.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
