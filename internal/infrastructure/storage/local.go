package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// StoredFile describes a file written to disk.
type StoredFile struct {
	// Path is the relative on-disk path, persisted with the attachment.
	Path string
	// URL is the public path the file is served under.
	URL string
	// Size is the number of bytes written.
	Size int64
}

// LocalStorage writes uploads to a single directory, prefixing each name
// with a millisecond timestamp to avoid collisions. Files are served back
// under the configured public prefix.
type LocalStorage struct {
	dir          string
	publicPrefix string
}

func NewLocalStorage(dir, publicPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{
		dir:          dir,
		publicPrefix: strings.TrimSuffix(publicPrefix, "/"),
	}, nil
}

func (s *LocalStorage) Dir() string {
	return s.dir
}

// Save writes the reader's content under a timestamped name derived from the
// original filename.
func (s *LocalStorage) Save(originalName string, r io.Reader) (*StoredFile, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeName(originalName))
	fullPath := filepath.Join(s.dir, name)

	f, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	size, err := io.Copy(f, r)
	if err != nil {
		os.Remove(fullPath)
		return nil, fmt.Errorf("failed to write upload file: %w", err)
	}

	return &StoredFile{
		Path: filepath.ToSlash(filepath.Join(filepath.Base(s.dir), name)),
		URL:  s.publicPrefix + "/" + name,
		Size: size,
	}, nil
}

// Remove deletes a previously stored file; a missing file is not an error.
func (s *LocalStorage) Remove(storedPath string) error {
	name := filepath.Base(storedPath)
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove upload file: %w", err)
	}
	return nil
}

// sanitizeName strips path components and characters that are unsafe in a
// filename served over HTTP.
func sanitizeName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" || base == "." || base == ".." {
		base = "file"
	}
	return base
}
