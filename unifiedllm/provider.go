package unifiedllm

import "context"

// ProviderAdapter is the interface every provider backend must implement.
// The contract is a single blocking completion call; providers must honor
// Request.StopSequences by halting generation at the first occurrence.
type ProviderAdapter interface {
	// Name returns the provider identifier (e.g. "openai", "anthropic").
	Name() string

	// Complete sends a blocking request and returns the full response.
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Closer is implemented by adapters that hold resources.
type Closer interface {
	Close() error
}
