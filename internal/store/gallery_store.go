package store

import (
	"os"
	"path/filepath"

	"github.com/louisbranch/streetview-mcp/internal/streetview"
)

// GalleryStore writes generated gallery pages into its own directory,
// sibling to the saved-imagery directory.
type GalleryStore struct {
	dir string
}

// NewGalleryStore builds a store rooted at dir. The directory is created on
// first write.
func NewGalleryStore(dir string) *GalleryStore {
	return &GalleryStore{dir: dir}
}

// Dir returns the directory this store writes into.
func (s *GalleryStore) Dir() string {
	return s.dir
}

// Path returns the full path a filename would be saved at.
func (s *GalleryStore) Path(filename string) string {
	return filepath.Join(s.dir, filename)
}

// Exists reports whether a page with this name is already saved.
func (s *GalleryStore) Exists(filename string) bool {
	_, err := os.Stat(s.Path(filename))
	return err == nil
}

// WritePage writes a rendered page under filename, write-once.
func (s *GalleryStore) WritePage(filename, html string) (string, error) {
	path := s.Path(filename)
	if s.Exists(filename) {
		return "", &streetview.ConflictError{Path: path}
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", &streetview.FilesystemError{Op: "create gallery directory", Err: err}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return "", &streetview.ConflictError{Path: path}
		}
		return "", &streetview.FilesystemError{Op: "create gallery file", Err: err}
	}
	if _, err := f.WriteString(html); err != nil {
		f.Close()
		os.Remove(path)
		return "", &streetview.FilesystemError{Op: "write gallery file", Err: err}
	}
	if err := f.Close(); err != nil {
		return "", &streetview.FilesystemError{Op: "close gallery file", Err: err}
	}
	return path, nil
}
