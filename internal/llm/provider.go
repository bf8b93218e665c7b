package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over a remote language model.
// Callers send a Request and get structured JSON back; everything the
// rest of witsiq knows about LLMs goes through this interface.
type Provider interface {
	// Generate sends the request to the model and returns its response.
	// When the request carries a Schema, the returned Content is JSON
	// that has been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider targets.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System is the system prompt, if any.
	System string

	// Messages is the conversation. Witsiq only ever sends a single
	// user message, but the slice keeps providers generic.
	Messages []Message

	// Schema, when set, asks the provider for structured output
	// conforming to the given JSON Schema. The response Content is
	// validated before being returned.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means the
	// provider default.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the model response must conform to.
type Schema struct {
	// Name identifies the schema to the provider (tool name for
	// Anthropic, schema name for OpenAI). Kebab-case.
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated JSON. With no Schema in the request it
	// is the raw text wrapped as a JSON string.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks tokens for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
