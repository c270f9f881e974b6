package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"strings"

	"resto/internal/errs"
	"resto/internal/upload"

	"github.com/gofiber/fiber/v2"
)

// formReader reads fields of a multipart, urlencoded or JSON body and tells
// an absent key apart from an empty value.
type formReader struct {
	c         *fiber.Ctx
	multipart *multipart.Form
	json      map[string]json.RawMessage
}

func newFormReader(c *fiber.Ctx) (*formReader, error) {
	r := &formReader{c: c}
	contentType := strings.ToLower(string(c.Request().Header.ContentType()))

	switch {
	case strings.HasPrefix(contentType, fiber.MIMEMultipartForm):
		form, err := c.MultipartForm()
		if err != nil {
			return nil, errs.Wrap(errs.MalformedInput, "Invalid multipart form", err)
		}
		r.multipart = form
	case strings.HasPrefix(contentType, fiber.MIMEApplicationJSON):
		fields := map[string]json.RawMessage{}
		if err := json.Unmarshal(c.Body(), &fields); err != nil {
			return nil, errs.Wrap(errs.MalformedInput, "Invalid request body", err)
		}
		r.json = fields
	case strings.HasPrefix(contentType, fiber.MIMEApplicationForm):
	case len(c.Body()) == 0:
		// No body: nothing was supplied.
	default:
		return nil, errs.New(errs.MalformedInput, "Unsupported content type '"+contentType+"'")
	}
	return r, nil
}

// value returns the first value of key, or nil when the key was not sent.
// JSON strings are unquoted; other JSON values (numbers, arrays) are kept
// as their JSON text and null counts as not sent.
func (r *formReader) value(key string) *string {
	switch {
	case r.multipart != nil:
		vs, ok := r.multipart.Value[key]
		if !ok || len(vs) == 0 {
			return nil
		}
		v := vs[0]
		return &v
	case r.json != nil:
		raw, ok := r.json[key]
		if !ok {
			return nil
		}
		raw = bytes.TrimSpace(raw)
		if bytes.Equal(raw, []byte("null")) {
			return nil
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return &s
		}
		v := string(raw)
		return &v
	}

	args := r.c.Request().PostArgs()
	if !args.Has(key) {
		return nil
	}
	v := string(args.Peek(key))
	return &v
}

// file returns the first file sent under key.
func (r *formReader) file(key string) upload.File {
	if r.multipart == nil {
		return nil
	}
	fhs := r.multipart.File[key]
	if len(fhs) == 0 {
		return nil
	}
	return upload.FromHeader(fhs[0])
}

// files returns every file sent under key.
func (r *formReader) files(key string) []upload.File {
	if r.multipart == nil {
		return nil
	}
	return upload.FromHeaders(r.multipart.File[key])
}
