package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over chat-completion backends. The wizard's
// generator services call Generate and receive either schema-validated JSON
// or raw text.
type Provider interface {
	// Generate sends one prompt exchange to the model. When the request
	// carries a Schema, the provider uses its native structured-output
	// mechanism and the response Content is the validated JSON document.
	// When Schema is nil, Content is the raw text of the completion.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes a single completion call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Swotter only ever sends a single user
	// message, but the slice keeps providers general.
	Messages []Message

	// Schema, when set, constrains the response to a JSON document matching
	// the definition. Nil means freeform text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0.0, 1.0]; zero value means deterministic.
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

// Schema names and defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name for
	// OpenAI). Kebab-case, e.g. "swot-structure".
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response holds the model output.
type Response struct {
	// Content is the validated JSON object when the request had a Schema,
	// the raw completion text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
