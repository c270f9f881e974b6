// Package upload accepts uploaded images into storage: it checks the real
// encoded format of every file and removes the files a failed request
// leaves behind.
package upload

import (
	"context"
	"fmt"
	"strings"

	"resto/internal/errs"
	"resto/internal/metrics"
	"resto/internal/storage"

	"github.com/gabriel-vasile/mimetype"
)

// Formats is a set of allowed image extensions, without the leading dot.
type Formats []string

var (
	// ProfileFormats is allowed for avatars and restaurant photo updates.
	ProfileFormats = Formats{"jpg", "jpeg", "png"}
	// GalleryFormats is allowed for photos of a newly created restaurant.
	GalleryFormats = Formats{"jpg", "jpeg", "png", "webp"}
)

// Allows reports whether ext is part of the set.
func (f Formats) Allows(ext string) bool {
	for _, allowed := range f {
		if strings.EqualFold(allowed, ext) {
			return true
		}
	}
	return false
}

// Validator checks stored files by their binary signature.
type Validator struct {
	store storage.Storage
}

// NewValidator creates a validator reading files from store.
func NewValidator(store storage.Storage) *Validator {
	return &Validator{store: store}
}

// Validate sniffs the content stored at path and fails with
// errs.InvalidImage unless it is one of allowed. A rejected file is
// removed before returning.
func (v *Validator) Validate(ctx context.Context, path string, allowed Formats) error {
	rc, err := v.store.Open(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to read upload %s: %w", path, err)
	}
	mtype, err := mimetype.DetectReader(rc)
	rc.Close()
	if err != nil {
		return fmt.Errorf("failed to detect format of %s: %w", path, err)
	}

	ext := strings.TrimPrefix(mtype.Extension(), ".")
	if ext == "" || !allowed.Allows(ext) {
		// Best effort: the request fails either way.
		_ = v.store.Remove(ctx, path)

		detected := ext
		if detected == "" {
			detected = "unknown"
		}
		metrics.UploadsRejected.WithLabelValues(detected).Inc()
		return errs.New(errs.InvalidImage, "Invalid image file signature. Allowed formats: "+strings.Join(allowed, ", "))
	}

	metrics.UploadsAccepted.WithLabelValues(ext).Inc()
	return nil
}
