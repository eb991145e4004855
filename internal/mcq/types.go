// Package mcq builds the question-generation prompt, parses the model
// response and carries the question types.
package mcq

import "fmt"

// Difficulty is the caller-supplied difficulty hint. It is interpreted
// entirely by the model.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty validates a difficulty string. The empty string maps
// to the default, medium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	case "":
		return DifficultyMedium, nil
	default:
		return "", fmt.Errorf("invalid difficulty %q (expected easy, medium or hard)", s)
	}
}

// Question is one generated multiple-choice question.
type Question struct {
	// Text is the question prompt.
	Text string

	// Options are the candidate answers, in the order the model gave
	// them. Usually 4, but any count of at least 2 is accepted.
	Options []string

	// Answer is the text of the correct option. It always matches one
	// entry in Options.
	Answer string
}

// Batch is the ordered set of questions that survived validation for
// one run.
type Batch struct {
	Questions  []Question
	Difficulty Difficulty

	// Model is the model that produced the batch.
	Model string

	// Dropped counts records discarded during validation.
	Dropped int
}
