// Package output renders question batches as human-readable text
// blocks and appends them to the destination file.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/mcqgen/internal/mcq"
)

// Render formats the batch: a numbered question line, lettered options
// in their original order, an answer line, and a blank line between
// blocks.
func Render(questions []mcq.Question) string {
	var b strings.Builder
	for i, q := range questions {
		fmt.Fprintf(&b, "Question %d: %s\n", i+1, q.Text)
		for j, opt := range q.Options {
			fmt.Fprintf(&b, "  %c. %s\n", 'A'+j, opt)
		}
		fmt.Fprintf(&b, "Answer: %s\n\n", q.Answer)
	}
	return b.String()
}

// Append renders the batch and appends it to path in a single write,
// creating the file if absent. Existing content is never truncated and
// no partial record is ever written.
func Append(path string, questions []mcq.Question) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &ErrWrite{Path: path, Err: err}
	}

	if _, err := f.WriteString(Render(questions)); err != nil {
		f.Close()
		return &ErrWrite{Path: path, Err: err}
	}

	if err := f.Close(); err != nil {
		return &ErrWrite{Path: path, Err: err}
	}
	return nil
}

// ErrWrite indicates the output file could not be written.
type ErrWrite struct {
	Path string
	Err  error
}

func (e *ErrWrite) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *ErrWrite) Unwrap() error { return e.Err }
