package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// PathResolver turns list entries into absolute paths.
type PathResolver struct {
	root string
}

// NewPathResolver creates a PathResolver rooted at dir, made absolute.
func NewPathResolver(dir string) (*PathResolver, error) {
	if dir == "" {
		return nil, errors.New("no lookup directory")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid lookup directory '%s': %w", dir, err)
	}
	return &PathResolver{root: abs}, nil
}

// ForListFile creates a PathResolver rooted at the directory containing the
// list file at listPath.
func ForListFile(listPath string) (*PathResolver, error) {
	abs, err := filepath.Abs(listPath)
	if err != nil {
		return nil, fmt.Errorf("invalid list file '%s': %w", listPath, err)
	}
	return NewPathResolver(filepath.Dir(abs))
}

// Root is the lookup directory.
func (r *PathResolver) Root() string {
	return r.root
}

// Resolve returns entry joined to the root and cleaned. Absolute entries are
// only cleaned. The file does not need to exist.
func (r *PathResolver) Resolve(entry string) string {
	if filepath.IsAbs(entry) {
		return filepath.Clean(entry)
	}
	return filepath.Join(r.root, entry)
}

// IsRegularFile reports whether path names an existing regular file,
// following symlinks.
func IsRegularFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
