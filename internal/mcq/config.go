package mcq

// QuestionCount is the number of questions requested per run. The
// model may return fewer or more; whatever survives validation is
// rendered as-is.
const QuestionCount = 5

// Config controls prompt building and generation.
type Config struct {
	// MaxSourceChars caps the source text embedded in the prompt.
	// Truncation keeps the beginning of the document.
	MaxSourceChars int

	// MaxTokens is the token budget for the model response.
	MaxTokens int

	// Temperature controls model output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxSourceChars: 8000,
		MaxTokens:      2048,
		Temperature:    0.7,
	}
}
