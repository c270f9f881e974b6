package storage

import "strings"

// URLRenderer turns stored paths into the URLs exposed to clients.
type URLRenderer struct {
	baseURL string
}

// NewURLRenderer returns a renderer prefixing local paths with baseURL.
func NewURLRenderer(baseURL string) URLRenderer {
	return URLRenderer{baseURL: strings.TrimRight(baseURL, "/")}
}

// Render prefixes paths that point into local storage with the base URL
// and returns anything else unchanged.
func (r URLRenderer) Render(p string) string {
	if p == "" {
		return ""
	}
	if !strings.Contains(p, Prefix) || strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	return r.baseURL + "/" + strings.TrimLeft(p, "/")
}

// RenderAll renders every path of paths.
func (r URLRenderer) RenderAll(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, r.Render(p))
	}
	return out
}
