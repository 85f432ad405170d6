package filesystem

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryEntry struct {
	content []byte
	info    *memoryFileInfo
}

// trackingReader lets tests assert that every opened file was closed.
type trackingReader struct {
	*bytes.Reader
	onClose func()
	closed  bool
}

func (r *trackingReader) Close() error {
	if !r.closed {
		r.closed = true
		r.onClose()
	}
	return nil
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Paths use forward slashes; relative paths resolve against the root.
type MemoryFileSystem struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	root    string
	open    int
}

// NewMemoryFileSystem creates a new in-memory filesystem whose root directory exists.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
	}
	mfs.addDir(root)
	return mfs
}

// resolve normalizes p to an absolute slash path inside the virtual filesystem
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) addDir(absPath string) {
	if _, exists := mfs.entries[absPath]; exists {
		return
	}
	mfs.entries[absPath] = &memoryEntry{
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

func (mfs *MemoryFileSystem) putFile(absPath string, content []byte) {
	data := append([]byte(nil), content...)
	mfs.entries[absPath] = &memoryEntry{
		content: data,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(data)),
			mode:    0644,
			modTime: time.Now(),
		},
	}
}

// AddFile adds a file, creating any missing parent directories.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(filePath)
	mfs.mkdirAll(path.Dir(absPath))
	mfs.putFile(absPath, []byte(content))
}

// AddDir adds an empty directory and its parents.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.mkdirAll(mfs.resolve(dirPath))
}

func (mfs *MemoryFileSystem) mkdirAll(absPath string) {
	for dir := absPath; ; dir = path.Dir(dir) {
		mfs.addDir(dir)
		if dir == "/" || dir == "." {
			break
		}
	}
}

// OpenCount returns the number of files opened with OpenFile and not yet closed.
func (mfs *MemoryFileSystem) OpenCount() int {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	return mfs.open
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(dirPath)
	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("directory not found: %s", dirPath)
	}
	if !entry.info.isDir {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}

	var result []FileInfo
	for p, e := range mfs.entries {
		if p != absPath && path.Dir(p) == absPath {
			result = append(result, e.info)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})

	return result, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	entry, err := mfs.lookupFile(filePath)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), entry.content...), nil
}

// OpenFile implements FileSystemProvider.OpenFile
func (mfs *MemoryFileSystem) OpenFile(filePath string) (io.ReadCloser, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	entry, err := mfs.lookupFile(filePath)
	if err != nil {
		return nil, err
	}

	mfs.open++
	return &trackingReader{
		Reader: bytes.NewReader(entry.content),
		onClose: func() {
			mfs.mu.Lock()
			mfs.open--
			mfs.mu.Unlock()
		},
	}, nil
}

func (mfs *MemoryFileSystem) lookupFile(filePath string) (*memoryEntry, error) {
	entry, exists := mfs.entries[mfs.resolve(filePath)]
	if !exists {
		return nil, fmt.Errorf("file not found: %s", filePath)
	}
	if entry.info.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return entry, nil
}

// WriteFile implements FileSystemProvider.WriteFile
func (mfs *MemoryFileSystem) WriteFile(filePath string, data []byte) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(filePath)
	parent, exists := mfs.entries[path.Dir(absPath)]
	if !exists || !parent.info.isDir {
		return fmt.Errorf("parent directory not found: %s", path.Dir(absPath))
	}
	if entry, exists := mfs.entries[absPath]; exists && entry.info.isDir {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	mfs.putFile(absPath, data)
	return nil
}

// MkdirAll implements FileSystemProvider.MkdirAll
func (mfs *MemoryFileSystem) MkdirAll(dirPath string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(dirPath)
	for dir := absPath; ; dir = path.Dir(dir) {
		if entry, exists := mfs.entries[dir]; exists && !entry.info.isDir {
			return fmt.Errorf("path exists and is not a directory: %s", dir)
		}
		if dir == "/" || dir == "." {
			break
		}
	}

	mfs.mkdirAll(absPath)
	return nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	entry, exists := mfs.entries[mfs.resolve(statPath)]
	if !exists {
		return nil, fmt.Errorf("path not found: %s", statPath)
	}
	return entry.info, nil
}

// Paths returns every file path (directories excluded), sorted, for test assertions.
func (mfs *MemoryFileSystem) Paths() []string {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	var paths []string
	for p, e := range mfs.entries {
		if !e.info.isDir {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}

// Verify MemoryFileSystem implements the interface at compile time
var _ FileSystemProvider = (*MemoryFileSystem)(nil)
