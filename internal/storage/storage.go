// Package storage keeps uploaded files on durable storage and renders
// their stored paths as public URLs.
package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Prefix starts every stored path. Paths carrying it are served by this
// backend; anything else is treated as an absolute URL.
const Prefix = "uploads"

// ErrNotFound is returned when a stored path does not exist.
var ErrNotFound = errors.New("stored file not found")

// Storage saves, reads and removes uploaded files.
type Storage interface {
	// Save stores the content read from r under a fresh name derived from
	// filename and returns its slash-separated path.
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Remove(ctx context.Context, path string) error
}

// NormalizePath converts Windows separators to forward slashes.
func NormalizePath(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// RelativePath strips scheme and host from a rendered URL,
// 'http://localhost:8080/uploads/abc.jpg' becomes 'uploads/abc.jpg'.
func RelativePath(p string) string {
	if i := strings.Index(p, "/"+Prefix+"/"); i != -1 {
		return p[i+1:]
	}
	return p
}

// generateName returns a collision-free storage name keeping the lowercased
// extension of the original filename.
func generateName(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(NormalizePath(filename))))
	return uuid.New().String() + ext
}

// key validates a stored path and returns it relative to Prefix.
func key(p string) (string, error) {
	clean := path.Clean(NormalizePath(RelativePath(p)))
	if !strings.HasPrefix(clean, Prefix+"/") {
		return "", ErrNotFound
	}
	return strings.TrimPrefix(clean, Prefix+"/"), nil
}

// IsLocal reports whether p, possibly a rendered URL, points into storage.
func IsLocal(p string) bool {
	_, err := key(p)
	return err == nil
}
