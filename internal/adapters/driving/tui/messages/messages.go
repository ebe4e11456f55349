// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// Pane identifies which pane currently has focus.
type Pane int

const (
	// PaneEditor is the document pane.
	PaneEditor Pane = iota
	// PaneChat is the assistant sidebar.
	PaneChat
)

// String returns the string representation of the pane.
func (p Pane) String() string {
	switch p {
	case PaneEditor:
		return "editor"
	case PaneChat:
		return "chat"
	default:
		return "unknown"
	}
}

// SelectionChanged is sent when the document selection changes.
// An empty selection hides the floating toolbar.
type SelectionChanged struct {
	Selection domain.Selection
}

// RewriteCompleted carries a rewrite proposal back to the editor.
//
// Seq correlates the response with the request that issued it: the
// editor discards responses whose Seq is older than the latest request,
// so a slow stale response can never overwrite a newer suggestion.
type RewriteCompleted struct {
	Seq      uint64
	Task     domain.RewriteTask
	Proposed string
	Err      error
}

// ChatCompleted carries the assistant's reply back to the chat panel.
// Failures are already converted into fixed reply strings by the
// conversation service, so there is no error field.
type ChatCompleted struct {
	Reply domain.Message
}

// MessageInserted signals that an agent message was pushed into the
// document.
type MessageInserted struct {
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
