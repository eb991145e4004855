package mcq

import (
	"context"
	"fmt"

	"github.com/abhisek/mcqgen/internal/llm"
)

// Generator produces a question batch from source text via an LLM
// provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// Generate asks the model for questions over the source text and
// parses the response into a validated Batch.
func (g *Generator) Generate(ctx context.Context, source string, difficulty Difficulty) (*Batch, error) {
	ctx = llm.WithPurpose(ctx, "mcq-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(source, difficulty, g.config)},
		},
		Schema:      BatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	if resp.StopReason == "max_tokens" {
		return nil, &llm.ErrMaxTokensExceeded{Content: resp.Content}
	}

	questions, dropped, err := ParseBatch(string(resp.Content))
	if err != nil {
		return nil, err
	}

	return &Batch{
		Questions:  questions,
		Difficulty: difficulty,
		Model:      resp.Model,
		Dropped:    dropped,
	}, nil
}
