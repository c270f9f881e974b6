package upload

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"

	"resto/internal/metrics"
	"resto/internal/storage"
)

// File is an uploaded file not yet written to storage.
type File interface {
	Filename() string
	Open() (io.ReadCloser, error)
}

type formFile struct {
	header *multipart.FileHeader
}

func (f formFile) Filename() string { return f.header.Filename }

func (f formFile) Open() (io.ReadCloser, error) { return f.header.Open() }

// FromHeader adapts a parsed multipart file.
func FromHeader(fh *multipart.FileHeader) File {
	if fh == nil {
		return nil
	}
	return formFile{header: fh}
}

// FromHeaders adapts every parsed multipart file of a form field.
func FromHeaders(fhs []*multipart.FileHeader) []File {
	files := make([]File, 0, len(fhs))
	for _, fh := range fhs {
		files = append(files, formFile{header: fh})
	}
	return files
}

// Manager opens upload sessions against one storage backend.
type Manager struct {
	store     storage.Storage
	validator *Validator
}

// NewManager creates a manager storing and validating files in store.
func NewManager(store storage.Storage) *Manager {
	return &Manager{
		store:     store,
		validator: NewValidator(store),
	}
}

// Begin starts a session for one request. Callers defer Close right away
// so every exit path that did not Commit removes the files it stored.
func (m *Manager) Begin() *Session {
	return &Session{manager: m}
}

// Session tracks the files one request wrote to storage.
//
// Tracked files are removed if the request fails. Superseded files are
// the ones the request replaces; they are removed only once the request
// commits, so a failed save never loses the old files.
type Session struct {
	manager    *Manager
	tracked    []string
	superseded []string
	committed  bool
	closed     bool
}

// Accept stores f, validates its signature against allowed and tracks the
// stored path. A file failing validation has already been removed and is
// not tracked.
func (s *Session) Accept(ctx context.Context, f File, allowed Formats) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload %s: %w", f.Filename(), err)
	}
	path, err := s.manager.store.Save(ctx, f.Filename(), rc)
	rc.Close()
	if err != nil {
		return "", fmt.Errorf("failed to store upload %s: %w", f.Filename(), err)
	}

	path = storage.NormalizePath(path)
	if err := s.manager.validator.Validate(ctx, path, allowed); err != nil {
		// Rejected files are already gone; this covers read failures.
		_ = s.manager.store.Remove(ctx, path)
		return "", err
	}
	s.Track(path)
	return path, nil
}

// Track records a path to remove if the session rolls back.
func (s *Session) Track(path string) {
	s.tracked = append(s.tracked, path)
}

// Tracked returns the tracked paths in the order they were added.
func (s *Session) Tracked() []string {
	return append([]string(nil), s.tracked...)
}

// Supersede schedules path for removal once the session commits. Paths
// outside storage, such as external avatar URLs, are ignored.
func (s *Session) Supersede(path string) {
	if !storage.IsLocal(path) {
		return
	}
	s.superseded = append(s.superseded, path)
}

// Commit marks the session successful and removes superseded files.
// Removal errors are logged and otherwise ignored.
func (s *Session) Commit(ctx context.Context) {
	if s.closed {
		return
	}
	s.closed = true
	s.committed = true

	for _, path := range s.superseded {
		if err := s.manager.store.Remove(ctx, storage.RelativePath(path)); err != nil {
			log.Printf("Failed to remove replaced file %s: %v", path, err)
			continue
		}
		metrics.SupersededFiles.Inc()
	}
}

// Rollback removes every tracked file, ignoring individual failures so one
// missing file does not keep the rest on disk. It runs at most once.
func (s *Session) Rollback(ctx context.Context) {
	if s.closed {
		return
	}
	s.closed = true

	for _, path := range s.tracked {
		if err := s.manager.store.Remove(ctx, path); err != nil {
			log.Printf("Failed to remove orphaned upload %s: %v", path, err)
			continue
		}
		metrics.RollbackFiles.Inc()
	}
}

// Close rolls the session back unless it was committed.
func (s *Session) Close(ctx context.Context) {
	if !s.committed {
		s.Rollback(ctx)
	}
}
