package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF concatenates per-page text in page order. A page that
// fails extraction is skipped; if every page fails the caller sees the
// empty-content error from Extract.
func extractPDF(path string) (text string, err error) {
	// The pdf package panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = &ErrRead{Path: path, Err: fmt.Errorf("malformed PDF: %v", r)}
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ErrRead{Path: path, Err: err}
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(pageText)
		b.WriteString("\n")
	}
	return b.String(), nil
}
