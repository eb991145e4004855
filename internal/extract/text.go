package extract

import (
	"os"
	"unicode/utf8"
)

// extractText reads the whole file as UTF-8 text.
func extractText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ErrRead{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &ErrDecode{Path: path}
	}
	return string(data), nil
}
