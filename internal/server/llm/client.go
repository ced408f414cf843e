// Package llm wraps the external large-language-model completion service.
// The rest of the server treats it as an opaque network call: one request,
// one text reply, any failure surfaced as a single error.
package llm

import "context"

// Request describes one completion call. Model, temperature, and token limit
// are fixed by the caller; nothing here is end-user tunable.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	Model        string
	Temperature  float64
	MaxTokens    int
}

// Client is the completion interface consumed by the analysis service.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}
