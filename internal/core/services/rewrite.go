package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
	"github.com/custodia-labs/scribe-cli/internal/core/ports/driven"
	"github.com/custodia-labs/scribe-cli/internal/core/ports/driving"
	"github.com/custodia-labs/scribe-cli/internal/logger"
)

// Ensure RewriteService implements the interface.
var _ driving.RewriteService = (*RewriteService)(nil)

// SuggestionFallback substitutes an empty generative result for a rewrite.
const SuggestionFallback = "AI suggestion"

// defaultInstructions are the built-in instruction templates, used when no
// prompt store is configured or a template fails to load. Each expects a
// %s placeholder for the selected text.
var defaultInstructions = map[domain.RewriteTask]string{
	domain.TaskEdit:     "Edit this: %s",
	domain.TaskShorten:  "Shorten this, keeping the meaning: %s",
	domain.TaskLengthen: "Expand this with more detail: %s",
	domain.TaskTable:    "Convert this into a markdown table: %s",
}

// RewriteService proposes edits for spans of document text.
// The request payload carries only text, never document coordinates: the
// document may mutate while the request is in flight.
type RewriteService struct {
	generativeService driven.GenerativeService
	promptStore       driven.PromptStore
}

// NewRewriteService creates a new rewrite service.
// The promptStore is optional (can be nil); built-in templates are used.
func NewRewriteService(
	generativeService driven.GenerativeService,
	promptStore driven.PromptStore,
) *RewriteService {
	return &RewriteService{
		generativeService: generativeService,
		promptStore:       promptStore,
	}
}

// Propose sends the captured text to the generative backend and returns
// the proposed rewrite. An empty backend result is substituted with
// SuggestionFallback; transport failures are returned to the caller so
// the workflow can collapse back to idle.
func (s *RewriteService) Propose(
	ctx context.Context, task domain.RewriteTask, text string,
) (string, error) {
	if s.generativeService == nil {
		return "", domain.ErrLLMUnavailable
	}
	if !task.Valid() {
		return "", fmt.Errorf("%w: unknown rewrite task %q", domain.ErrInvalidInput, task)
	}

	prompt := fmt.Sprintf(s.instruction(task), text)
	logger.Debug("Rewrite task %q on %d runes", task, len([]rune(text)))

	result, err := s.generativeService.Generate(ctx, prompt, driven.GenerateOptions{})
	if err != nil {
		return "", fmt.Errorf("proposing rewrite: %w", err)
	}
	if result == "" {
		return SuggestionFallback, nil
	}
	return result, nil
}

// instruction resolves the template for a task, preferring the prompt
// store over the built-in default.
func (s *RewriteService) instruction(task domain.RewriteTask) string {
	if s.promptStore != nil {
		if tmpl, err := s.promptStore.Load(string(task)); err == nil && tmpl != "" {
			return tmpl
		}
	}
	return defaultInstructions[task]
}
