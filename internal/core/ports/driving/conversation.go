package driving

import (
	"context"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// ConversationService produces the assistant's reply to a submitted
// message. The transcript itself is owned by the conversation panel;
// this service is stateless per call.
//
// Respond never returns a transport error to the caller: every failure
// path is converted into a user-visible agent message, so the session
// always returns to a stable, interactive state.
type ConversationService interface {
	// Respond classifies the text's intent, dispatches to the search or
	// generative backend, and returns the resulting agent message.
	Respond(ctx context.Context, text string) domain.Message
}
