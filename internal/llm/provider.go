package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single external-I/O boundary of the tool: anything
// that accepts a prompt payload and returns raw model output satisfies
// it, which is what makes the pipeline testable without a network.
type Provider interface {
	// Generate sends a prompt to the model and returns its response.
	// When the request carries a Schema, the provider uses its native
	// structured-output mechanism and the returned Content is JSON
	// validated against that schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes a single model invocation.
type Request struct {
	// System is the system instruction. Fixes the model's role.
	System string

	// Messages is the conversation. Question generation is single-turn,
	// so this holds one user message.
	Messages []Message

	// Schema, when set, constrains the response to a JSON shape via the
	// provider's structured-output support. When nil the response
	// Content is the raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema the model response must conform to.
type Schema struct {
	// Name identifies the schema to the provider (tool name for
	// Anthropic, schema name for OpenAI). Kebab-case.
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model output.
type Response struct {
	// Content is the generated output. Schema-constrained requests get
	// validated JSON here; free-form requests get the raw text.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
