package driven

import "context"

// GenerativeService produces free text from a prompt. This is an optional
// service - when nil, rewrite suggestions and generative chat replies are
// disabled with a user-visible message.
//
// Implementations may include:
//   - OpenAI (GPT-4, GPT-3.5)
//   - Any OpenAI-compatible endpoint (Azure, Ollama, LM Studio)
type GenerativeService interface {
	// Generate produces text completion from a prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}
