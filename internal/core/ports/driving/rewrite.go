package driving

import (
	"context"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// RewriteService proposes edits for a span of document text.
type RewriteService interface {
	// Propose sends the captured text to the generative backend with the
	// task's instruction template and returns the proposed rewrite.
	// An empty backend result is substituted with a fixed fallback string;
	// transport failures are returned as errors for the workflow to
	// collapse back to idle.
	Propose(ctx context.Context, task domain.RewriteTask, text string) (string, error)
}
