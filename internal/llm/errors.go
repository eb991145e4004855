package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrAuth indicates a missing or rejected API key (401/403).
type ErrAuth struct {
	Err error
}

func (e *ErrAuth) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication with LLM provider failed: %v", e.Err)
	}
	return "authentication with LLM provider failed: API key missing or invalid"
}

func (e *ErrAuth) Unwrap() error { return e.Err }

// ErrRateLimit indicates the provider returned 429. The pipeline does
// not retry; the error is surfaced to the caller as-is.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrRemote indicates a non-success HTTP status that is neither an
// auth failure, a rate limit, nor a server outage. It carries the
// status code and response body for diagnosis.
type ErrRemote struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ErrRemote) Error() string {
	return fmt.Sprintf("LLM provider returned HTTP %d: %v", e.StatusCode, e.Err)
}

func (e *ErrRemote) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates a transport failure or a 5xx from
// the provider: connection refused, timeout, server error.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the model returned content that does
// not conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was cut off at the
// MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}
