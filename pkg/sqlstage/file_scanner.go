package sqlstage

// FileScanner enumerates the files of a single directory.
// Implementations must be safe for concurrent use by multiple goroutines.
type FileScanner interface {
	// ListFiles returns the regular files directly inside dir, in the
	// file store's enumeration order. Subdirectories are skipped.
	ListFiles(dir string) ([]DumpFile, error)
}
