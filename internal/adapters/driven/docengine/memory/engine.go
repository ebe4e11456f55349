// Package memory provides an in-memory document engine.
//
// The engine owns the document text, the cursor, and the live selection.
// It is the reference implementation of driven.DocumentEngine: offsets
// are rune offsets, ranges are half-open, and out-of-bounds ranges are
// clamped rather than rejected.
package memory

import (
	"sync"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
	"github.com/custodia-labs/scribe-cli/internal/core/ports/driven"
)

// Ensure Engine implements the interface.
var _ driven.DocumentEngine = (*Engine)(nil)

// Engine is an in-memory plain-text document engine.
type Engine struct {
	mu     sync.RWMutex
	runes  []rune
	cursor int
	// selFrom/selTo hold the live selection; selActive distinguishes a
	// collapsed selection from no selection at all.
	selFrom   int
	selTo     int
	selActive bool
}

// NewEngine creates an engine with the given initial content.
// The cursor starts at the end of the document.
func NewEngine(content string) *Engine {
	r := []rune(content)
	return &Engine{
		runes:  r,
		cursor: len(r),
	}
}

// Load replaces the document content and resets cursor and selection.
func (e *Engine) Load(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.runes = []rune(text)
	e.cursor = len(e.runes)
	e.selActive = false
}

// Content returns the full document text.
func (e *Engine) Content() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return string(e.runes)
}

// CursorPos returns the current cursor rune offset.
func (e *Engine) CursorPos() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursor
}

// SetCursorPos moves the cursor, clamped to the document bounds.
func (e *Engine) SetCursorPos(pos int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursor = e.clamp(pos)
}

// SelectionRange returns the current selection with its text.
// Without an active selection an empty selection is returned.
func (e *Engine) SelectionRange() domain.Selection {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if !e.selActive || e.selFrom >= e.selTo {
		return domain.Selection{From: e.cursor, To: e.cursor}
	}
	return domain.Selection{
		From: e.selFrom,
		To:   e.selTo,
		Text: string(e.runes[e.selFrom:e.selTo]),
	}
}

// SetSelectionRange sets the live selection to [from, to), clamped.
func (e *Engine) SetSelectionRange(from, to int) error {
	if from > to {
		return domain.ErrInvalidRange
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.selFrom = e.clamp(from)
	e.selTo = e.clamp(to)
	e.selActive = true
	return nil
}

// CollapseSelection clears the selection, keeping the cursor where it is.
func (e *Engine) CollapseSelection() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selActive = false
}

// ReplaceRange replaces [from, to) with text. The cursor moves to the
// end of the inserted text and the selection collapses.
func (e *Engine) ReplaceRange(from, to int, text string) error {
	if from > to {
		return domain.ErrInvalidRange
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	from = e.clamp(from)
	to = e.clamp(to)

	insert := []rune(text)
	updated := make([]rune, 0, len(e.runes)-(to-from)+len(insert))
	updated = append(updated, e.runes[:from]...)
	updated = append(updated, insert...)
	updated = append(updated, e.runes[to:]...)

	e.runes = updated
	e.cursor = from + len(insert)
	e.selActive = false
	return nil
}

// InsertAtCursor inserts text at the current cursor position.
func (e *Engine) InsertAtCursor(text string) error {
	e.mu.RLock()
	cursor := e.cursor
	e.mu.RUnlock()

	return e.ReplaceRange(cursor, cursor, text)
}

// clamp bounds an offset to [0, len] (caller must hold lock).
func (e *Engine) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(e.runes) {
		return len(e.runes)
	}
	return pos
}
