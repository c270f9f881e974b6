package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalStorage keeps files in a directory on the local disk.
type LocalStorage struct {
	root string
}

// NewLocalStorage creates the root directory if it does not exist.
func NewLocalStorage(root string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", root, err)
	}
	return &LocalStorage{root: root}, nil
}

// Root returns the directory files are written to.
func (s *LocalStorage) Root() string {
	return s.root
}

// Save writes through a temp file, fsyncs it and renames it into place so a
// reader never observes a partially written upload.
func (s *LocalStorage) Save(_ context.Context, filename string, r io.Reader) (string, error) {
	name := generateName(filename)
	if err := writeFile(filepath.Join(s.root, name), r); err != nil {
		return "", err
	}
	return Prefix + "/" + name, nil
}

// Seed writes data at the fixed stored path unless a file is already there
// and reports whether it wrote one.
func (s *LocalStorage) Seed(path string, data []byte) (bool, error) {
	fullPath, err := s.resolve(path)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(fullPath); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
		return false, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := writeFile(fullPath, bytes.NewReader(data)); err != nil {
		return false, err
	}
	return true, nil
}

func writeFile(fullPath string, r io.Reader) error {
	tmpPath := fullPath + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write upload: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync upload: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close upload: %w", err)
	}
	if err := os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move upload into place: %w", err)
	}
	return nil
}

// Open opens a stored file for reading. The caller must close it.
func (s *LocalStorage) Open(_ context.Context, path string) (io.ReadCloser, error) {
	fullPath, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}

// Remove deletes a stored file. Removing a missing file is not an error.
func (s *LocalStorage) Remove(_ context.Context, path string) error {
	fullPath, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

func (s *LocalStorage) resolve(path string) (string, error) {
	k, err := key(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", err, path)
	}
	return filepath.Join(s.root, filepath.FromSlash(k)), nil
}
