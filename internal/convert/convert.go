// Package convert bridges binary document formats into Markdown text. It is
// a boundary component: extraction either succeeds with text or fails with a
// *ConversionError, and a failure is never fatal to the surrounding run.
package convert

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupported marks a recognized document format with no extractor wired.
var ErrUnsupported = errors.New("no extractor for this format")

// ErrEmptyResult marks an extraction that produced no usable text.
var ErrEmptyResult = errors.New("extractor returned no text")

// ConversionError reports a failed extraction for one file.
type ConversionError struct {
	Path string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %q: %v", filepath.Base(e.Path), e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// convertibleExtensions lists the binary document formats that should go
// through extraction rather than being embedded verbatim.
var convertibleExtensions = map[string]struct{}{
	".pdf": {}, ".doc": {}, ".docx": {}, ".ppt": {}, ".pptx": {},
	".xls": {}, ".xlsx": {}, ".odt": {}, ".ods": {}, ".odp": {},
	".rtf": {}, ".epub": {}, ".mobi": {},
	".html": {}, ".htm": {}, ".xhtml": {},
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".bmp": {},
	".tiff": {}, ".tif": {}, ".webp": {}, ".ico": {},
}

// Convertible reports whether ext (with leading dot, any case) names a
// document format handled by conversion instead of direct embedding.
func Convertible(ext string) bool {
	_, ok := convertibleExtensions[strings.ToLower(ext)]
	return ok
}

// Extractor turns one document format into Markdown text.
type Extractor interface {
	Extract(path string) (string, error)
}

// Registry dispatches files to per-format extractors by extension.
type Registry struct {
	extractors map[string]Extractor
}

// NewRegistry returns a registry with the built-in extractors wired:
// HTML (html-to-markdown) and PDF (plain-text extraction). The remaining
// convertible formats fail with ErrUnsupported until an extractor is
// registered for them.
func NewRegistry() *Registry {
	r := &Registry{extractors: make(map[string]Extractor)}

	html := HTMLExtractor{}
	for _, ext := range []string{".html", ".htm", ".xhtml"} {
		r.Register(ext, html)
	}
	r.Register(".pdf", PDFExtractor{})

	return r
}

// Register wires an extractor for one extension (with leading dot).
func (r *Registry) Register(ext string, e Extractor) {
	r.extractors[strings.ToLower(ext)] = e
}

// Convert extracts Markdown text from the file at path. Every failure is
// reported as a *ConversionError so callers can record the file as skipped
// and move on.
func (r *Registry) Convert(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	e, ok := r.extractors[ext]
	if !ok {
		return "", &ConversionError{Path: path, Err: ErrUnsupported}
	}
	text, err := safeExtract(e, path)
	if err != nil {
		return "", &ConversionError{Path: path, Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", &ConversionError{Path: path, Err: ErrEmptyResult}
	}
	return text, nil
}

// safeExtract shields the run from extractor panics on malformed input.
func safeExtract(e Extractor, path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extractor panic: %v", r)
		}
	}()
	return e.Extract(path)
}
