package driven

import (
	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// DocumentEngine is the external document engine. It owns the document
// content, the cursor, and the live selection; core code never holds
// document state of its own, it mediates access through this port.
//
// Offsets are rune offsets and ranges are half-open [from, to).
// Implementations clamp out-of-bounds ranges rather than failing.
type DocumentEngine interface {
	// SelectionRange returns the current selection with its text.
	// When no active selection exists (focus left the document), an
	// empty selection is returned.
	SelectionRange() domain.Selection

	// ReplaceRange replaces [from, to) with text and collapses the
	// selection to the end of the inserted text.
	ReplaceRange(from, to int, text string) error

	// InsertAtCursor inserts text at the current cursor position.
	InsertAtCursor(text string) error

	// Content returns the full document text.
	Content() string

	// Load replaces the document content and resets cursor and selection.
	Load(text string)

	// CursorPos returns the current cursor rune offset.
	CursorPos() int

	// SetCursorPos moves the cursor, clamped to the document bounds.
	SetCursorPos(pos int)

	// SetSelectionRange sets the live selection to [from, to), clamped.
	SetSelectionRange(from, to int) error

	// CollapseSelection clears the selection, keeping the cursor where
	// it is.
	CollapseSelection()
}
