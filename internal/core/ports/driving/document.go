package driving

import (
	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// DocumentService mediates access to the external document engine.
// This is the only path through which the suggestion workflow and the
// conversation panel touch the document.
type DocumentService interface {
	// SelectionRange returns the current selection with its text.
	// An empty selection means no active selection exists.
	SelectionRange() domain.Selection

	// ReplaceRange replaces [from, to) with text.
	ReplaceRange(from, to int, text string) error

	// InsertAtCursor inserts text at the current cursor position.
	InsertAtCursor(text string) error

	// Content returns the full document text for rendering.
	Content() string

	// CursorPos returns the current cursor rune offset.
	CursorPos() int

	// SetCursorPos moves the cursor, clamped to the document bounds.
	SetCursorPos(pos int)

	// SetSelectionRange sets the live selection to [from, to), clamped.
	SetSelectionRange(from, to int) error

	// CollapseSelection clears the selection without moving the cursor.
	CollapseSelection()
}
