package mcq

import "fmt"

// extractJSON locates the first JSON array or object in s and returns
// the balanced substring. Models sometimes wrap their JSON in prose or
// code fences; a balanced scan (string- and escape-aware) finds the
// document without being confused by brackets inside question text.
// Each closer must match its opener, so spans like "[}" are rejected.
func extractJSON(s string) (string, error) {
	start := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '[' || s[i] == '{' {
			start = i
			break
		}
	}
	if start < 0 {
		return "", &ErrMalformedResponse{Raw: s}
	}

	var (
		stack    []byte
		inString bool
		escaped  bool
	)
	for i := start; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '[', '{':
			stack = append(stack, c)
		case ']', '}':
			open := stack[len(stack)-1]
			if (c == ']') != (open == '[') {
				return "", &ErrMalformedResponse{Raw: s}
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return s[start : i+1], nil
			}
		}
	}

	return "", &ErrMalformedResponse{Raw: s}
}

// ErrMalformedResponse indicates no balanced JSON structure could be
// located in the model response.
type ErrMalformedResponse struct {
	Raw string
}

func (e *ErrMalformedResponse) Error() string {
	return "no JSON structure found in model response"
}

// ErrNoValidQuestions indicates every record in the response failed
// validation.
type ErrNoValidQuestions struct {
	Dropped int
}

func (e *ErrNoValidQuestions) Error() string {
	return fmt.Sprintf("no valid questions in model response (%d records dropped)", e.Dropped)
}
