// Package extract turns a source document (PDF or plain text) into a
// single string of textual content for prompt building.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind identifies how a source file is read.
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindText Kind = "text"
)

// textExtensions are the extensions read as UTF-8 plain text.
var textExtensions = map[string]bool{
	".txt":  true,
	".text": true,
	".md":   true,
}

// DetectKind infers the extraction kind from the file extension.
func DetectKind(path string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".pdf":
		return KindPDF, nil
	case textExtensions[ext]:
		return KindText, nil
	default:
		return "", &ErrUnsupportedFormat{Ext: ext}
	}
}

// Extract reads the file at path and returns its textual content.
// The returned string is never blank: empty or whitespace-only content
// is reported as ErrEmptyContent.
func Extract(path string) (string, error) {
	kind, err := DetectKind(path)
	if err != nil {
		return "", err
	}

	var text string
	switch kind {
	case KindPDF:
		text, err = extractPDF(path)
	case KindText:
		text, err = extractText(path)
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", &ErrEmptyContent{Path: path}
	}
	return text, nil
}

// ErrUnsupportedFormat indicates the file extension is neither PDF nor
// a recognized plain-text extension.
type ErrUnsupportedFormat struct {
	Ext string
}

func (e *ErrUnsupportedFormat) Error() string {
	if e.Ext == "" {
		return "unsupported file format: no extension"
	}
	return fmt.Sprintf("unsupported file format %q (expected .pdf, .txt, .text or .md)", e.Ext)
}

// ErrRead indicates the file is missing or could not be read.
type ErrRead struct {
	Path string
	Err  error
}

func (e *ErrRead) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ErrRead) Unwrap() error { return e.Err }

// ErrDecode indicates the file contents are not valid UTF-8.
type ErrDecode struct {
	Path string
}

func (e *ErrDecode) Error() string {
	return fmt.Sprintf("decode %s: not valid UTF-8", e.Path)
}

// ErrEmptyContent indicates extraction produced no usable text.
type ErrEmptyContent struct {
	Path string
}

func (e *ErrEmptyContent) Error() string {
	return fmt.Sprintf("no text content extracted from %s", e.Path)
}
