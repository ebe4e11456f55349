// Package tui provides an interactive terminal user interface for scribe.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/scribe-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Conversation produces assistant replies for chat prompts.
	Conversation driving.ConversationService

	// Rewrite produces rewrite suggestions for selected text.
	Rewrite driving.RewriteService

	// Document manages the document being edited.
	Document driving.DocumentService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	conversation driving.ConversationService,
	rewrite driving.RewriteService,
	document driving.DocumentService,
) *Ports {
	return &Ports{
		Conversation: conversation,
		Rewrite:      rewrite,
		Document:     document,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Conversation == nil {
		return ErrMissingConversationService
	}
	if p.Rewrite == nil {
		return ErrMissingRewriteService
	}
	if p.Document == nil {
		return ErrMissingDocumentService
	}
	return nil
}
