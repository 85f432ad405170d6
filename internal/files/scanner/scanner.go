package scanner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vvka-141/sqlstage/internal/files/filesystem"
	"github.com/vvka-141/sqlstage/pkg/sqlstage"
)

// Scanner lists regular files through a filesystem provider.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided fsProvider is also thread-safe.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a new file scanner backed by the OS filesystem.
func NewScanner() *Scanner {
	return &Scanner{fsProvider: filesystem.NewOSFileSystem()}
}

// NewScannerWithFS creates a new file scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{fsProvider: fsProvider}
}

// ListFiles returns the regular files directly inside dir, in the order the
// provider enumerates them. Directories are skipped, not descended into, and
// so are devices, pipes and sockets.
func (s *Scanner) ListFiles(dir string) ([]sqlstage.DumpFile, error) {
	entries, err := s.fsProvider.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	files := make([]sqlstage.DumpFile, 0, len(entries))
	for _, info := range entries {
		if !info.Mode().IsRegular() {
			continue
		}
		name := info.Name()
		files = append(files, sqlstage.DumpFile{
			Path: filepath.Join(dir, name),
			Name: name,
			Stem: Stem(name),
		})
	}

	return files, nil
}

// Stem returns the filename without its final extension.
// Dotfiles such as ".env" keep their full name.
func Stem(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if stem == "" {
		return name
	}
	return stem
}

// Verify Scanner implements the interface at compile time
var _ sqlstage.FileScanner = (*Scanner)(nil)
