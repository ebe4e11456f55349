package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
	"github.com/custodia-labs/scribe-cli/internal/core/ports/driven"
	"github.com/custodia-labs/scribe-cli/internal/core/ports/driving"
	"github.com/custodia-labs/scribe-cli/internal/logger"
)

// Ensure ConversationService implements the interface.
var _ driving.ConversationService = (*ConversationService)(nil)

// Fixed reply strings. These are part of the panel's contract: tests and
// the transcript rely on the exact wording.
const (
	// NoResultsReply is returned when a search yields zero results.
	NoResultsReply = "No results found."

	// SearchErrorReply is returned when the search backend fails.
	SearchErrorReply = "Error fetching search."

	// GenerativeErrorReply is returned when the generative backend fails.
	GenerativeErrorReply = "Error contacting AI."

	// GenerativeFallbackReply substitutes an empty generative result.
	GenerativeFallbackReply = "..."
)

// searchResultLimit caps how many results are requested from the backend.
// Only the top-ranked result is surfaced; the rest are discarded.
const searchResultLimit = 5

// ConversationService dispatches submitted messages to the search or
// generative backend according to their classified intent.
//
// The service is stateless: the transcript is owned by the conversation
// panel, which appends the returned agent message itself.
type ConversationService struct {
	searchService     driven.WebSearchService
	generativeService driven.GenerativeService
}

// NewConversationService creates a new conversation service.
// Both backends are optional (can be nil); missing backends produce the
// standard error replies instead of failing.
func NewConversationService(
	searchService driven.WebSearchService,
	generativeService driven.GenerativeService,
) *ConversationService {
	return &ConversationService{
		searchService:     searchService,
		generativeService: generativeService,
	}
}

// Respond classifies the text's intent, dispatches to the matching
// backend, and returns the agent message. Transport failures are caught
// here and converted into fixed reply strings - Respond never fails.
func (s *ConversationService) Respond(ctx context.Context, text string) domain.Message {
	intent := domain.ClassifyIntent(text)
	logger.Debug("Classified message as %s", intent.Kind)

	var reply string
	switch intent.Kind {
	case domain.IntentSearch:
		reply = s.respondSearch(ctx, intent.Query)
	default:
		reply = s.respondGenerative(ctx, intent.Prompt)
	}

	return domain.Message{
		ID:   uuid.NewString(),
		Role: domain.RoleAgent,
		Text: reply,
	}
}

// respondSearch issues a single search request and formats the top result.
func (s *ConversationService) respondSearch(ctx context.Context, query string) string {
	if s.searchService == nil {
		logger.Warn("Search requested but no search service configured")
		return SearchErrorReply
	}

	results, err := s.searchService.Search(ctx, query, searchResultLimit)
	if err != nil {
		logger.Warn("Search failed: %v", err)
		return SearchErrorReply
	}
	if len(results) == 0 {
		return NoResultsReply
	}

	// Only rank 1 is surfaced.
	top := results[0]
	return fmt.Sprintf("**%s**\n%s\n[Read more](%s)", top.Title, top.Snippet, top.Link)
}

// respondGenerative issues a single generative request with the prompt.
func (s *ConversationService) respondGenerative(ctx context.Context, prompt string) string {
	if s.generativeService == nil {
		logger.Warn("Generative reply requested but no LLM configured")
		return GenerativeErrorReply
	}

	result, err := s.generativeService.Generate(ctx, prompt, driven.GenerateOptions{})
	if err != nil {
		logger.Warn("Generate failed: %v", err)
		return GenerativeErrorReply
	}
	if result == "" {
		return GenerativeFallbackReply
	}
	return result
}
