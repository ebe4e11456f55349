package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidRange indicates a range with From > To or negative offsets.
	ErrInvalidRange = errors.New("invalid range")

	// ErrEmptySelection indicates the suggestion workflow was triggered
	// without an active selection.
	ErrEmptySelection = errors.New("empty selection")

	// ErrLLMUnavailable indicates the generative service is not configured.
	// Rewrite suggestions and generative chat replies are disabled.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrSearchUnavailable indicates the web-search service is not configured.
	// Search-intent messages are disabled.
	ErrSearchUnavailable = errors.New("search service unavailable")

	// ErrEngineUnavailable indicates no document engine is attached.
	ErrEngineUnavailable = errors.New("document engine unavailable")
)
