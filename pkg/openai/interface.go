package openai

import "context"

// IOpenAI defines the interface for the OpenAI client.
type IOpenAI interface {
	// CreateCompletion sends a single-turn chat completion request.
	CreateCompletion(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// RunAssistant sends one message through the pre-provisioned assistant
	// and returns its reply text.
	RunAssistant(ctx context.Context, message string) (string, error)

	// Status probes the API and reports what is usable.
	Status(ctx context.Context) Status

	// Model returns the configured completion model.
	Model() string
}
