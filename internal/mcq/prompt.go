package mcq

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const systemPrompt = `You are an expert quiz creator. Your task is to generate exactly 5 multiple-choice questions (MCQs) from the text the user provides, at the requested difficulty.

Rules:
- Each question must be answerable from the provided text alone.
- Each question has exactly 4 options and exactly one correct answer.
- The "answer" field must repeat the text of the correct option verbatim.
- Distractors should be plausible, not random values.
- Respond with a JSON object containing a "questions" array. Do not include any explanatory text outside the JSON.

Here is an example of the kind of output wanted.
Context: "The mitochondrion is a double-membraned organelle found in most eukaryotic organisms. Mitochondria generate most of the cell's supply of adenosine triphosphate (ATP), used as a source of chemical energy."
Desired output:
{
  "questions": [
    {
      "question": "What is the primary function of the mitochondrion?",
      "options": [
        "To store genetic information",
        "To generate chemical energy (ATP)",
        "To synthesize proteins",
        "To control cell division"
      ],
      "answer": "To generate chemical energy (ATP)"
    }
  ]
}`

// buildUserMessage embeds the difficulty and the (possibly truncated)
// source text into the user turn.
func buildUserMessage(source string, difficulty Difficulty, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Difficulty: %s\n", difficulty)
	fmt.Fprintf(&b, "Number of questions: %d\n", QuestionCount)

	b.WriteString("\n--- SOURCE TEXT ---\n")
	b.WriteString(truncate(source, cfg.MaxSourceChars))
	b.WriteString("\n---\n")

	return b.String()
}

// truncate cuts s to at most max bytes, keeping the beginning. The cut
// point backs up at most one rune's worth of bytes so a multi-byte
// rune is never split; invalid bytes elsewhere in s are left alone.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && max-cut < utf8.UTFMax && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
