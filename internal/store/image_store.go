package store

import (
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"github.com/louisbranch/streetview-mcp/internal/streetview"

	// Register decoders for every recognized saved-image format so listing
	// can probe pixel dimensions with image.DecodeConfig.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// recognizedExtensions are the saved-image extensions surfaced by List,
// matched case-insensitively.
var recognizedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

// savedJPEGQuality is the quality used when re-encoding fetched imagery.
const savedJPEGQuality = 95

// SavedImage describes one file in the image directory. Width, Height, and
// Format stay zero-valued when the file cannot be decoded.
type SavedImage struct {
	Filename   string
	Path       string
	SizeBytes  int64
	Width      int
	Height     int
	Format     string
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// ImageStore reads and writes the saved-imagery directory.
type ImageStore struct {
	dir string
}

// NewImageStore builds a store rooted at dir. The directory is created on
// first write or listing, not here.
func NewImageStore(dir string) *ImageStore {
	return &ImageStore{dir: dir}
}

// Dir returns the directory this store writes into.
func (s *ImageStore) Dir() string {
	return s.dir
}

// Path returns the full path a filename would be saved at.
func (s *ImageStore) Path(filename string) string {
	return filepath.Join(s.dir, filename)
}

// Exists reports whether a file with this name is already saved.
func (s *ImageStore) Exists(filename string) bool {
	_, err := os.Stat(s.Path(filename))
	return err == nil
}

// SaveJPEG re-encodes a decoded image as a quality-95 JPEG and writes it
// under filename. Existing filenames are rejected with a ConflictError
// before anything is written.
func (s *ImageStore) SaveJPEG(img image.Image, filename string) (SavedImage, error) {
	path := s.Path(filename)
	if s.Exists(filename) {
		return SavedImage{}, &streetview.ConflictError{Path: path}
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return SavedImage{}, &streetview.FilesystemError{Op: "create image directory", Err: err}
	}

	// O_EXCL backs the pre-check so a racing writer cannot clobber the file.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return SavedImage{}, &streetview.ConflictError{Path: path}
		}
		return SavedImage{}, &streetview.FilesystemError{Op: "create image file", Err: err}
	}
	if err := imaging.Encode(f, img, imaging.JPEG, imaging.JPEGQuality(savedJPEGQuality)); err != nil {
		f.Close()
		os.Remove(path)
		return SavedImage{}, &streetview.FilesystemError{Op: "encode image file", Err: err}
	}
	if err := f.Close(); err != nil {
		return SavedImage{}, &streetview.FilesystemError{Op: "close image file", Err: err}
	}

	info, err := os.Stat(path)
	if err != nil {
		return SavedImage{}, &streetview.FilesystemError{Op: "stat saved image", Err: err}
	}

	bounds := img.Bounds()
	return SavedImage{
		Filename:  filename,
		Path:      path,
		SizeBytes: info.Size(),
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		Format:    "jpeg",
		// Portable os.FileInfo carries no birth time, so creation is
		// reported as the modification time.
		CreatedAt:  info.ModTime(),
		ModifiedAt: info.ModTime(),
	}, nil
}

// List returns every recognized image file in the directory, most recently
// modified first. Files that cannot be decoded are still listed, with
// dimension and format fields left empty.
func (s *ImageStore) List() ([]SavedImage, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &streetview.FilesystemError{Op: "read image directory", Err: err}
	}

	var images []SavedImage
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !recognizedExtensions[ext] {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, &streetview.FilesystemError{Op: "stat " + entry.Name(), Err: err}
		}

		saved := SavedImage{
			Filename:  entry.Name(),
			Path:      s.Path(entry.Name()),
			SizeBytes: info.Size(),
			// Creation falls back to the modification time; see SaveJPEG.
			CreatedAt:  info.ModTime(),
			ModifiedAt: info.ModTime(),
		}
		if config, format, err := probeImage(saved.Path); err == nil {
			saved.Width = config.Width
			saved.Height = config.Height
			saved.Format = format
		}
		images = append(images, saved)
	}

	sort.Slice(images, func(i, j int) bool {
		return images[i].ModifiedAt.After(images[j].ModifiedAt)
	})
	return images, nil
}

// probeImage reads just enough of a file to learn its dimensions and format.
func probeImage(path string) (image.Config, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, "", err
	}
	defer f.Close()
	return image.DecodeConfig(f)
}
