package services

import (
	"github.com/custodia-labs/scribe-cli/internal/core/domain"
	"github.com/custodia-labs/scribe-cli/internal/core/ports/driven"
	"github.com/custodia-labs/scribe-cli/internal/core/ports/driving"
	"github.com/custodia-labs/scribe-cli/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService mediates access to the external document engine.
// It owns no document state; ranges and content always come from the
// engine at call time.
type DocumentService struct {
	engine driven.DocumentEngine
}

// NewDocumentService creates a new document service for the given engine.
func NewDocumentService(engine driven.DocumentEngine) *DocumentService {
	return &DocumentService{engine: engine}
}

// SelectionRange returns the current selection with its text.
// Without an engine, an empty selection is returned - the same as when
// focus has left the document.
func (s *DocumentService) SelectionRange() domain.Selection {
	if s.engine == nil {
		return domain.Selection{}
	}
	return s.engine.SelectionRange()
}

// ReplaceRange replaces [from, to) with text.
func (s *DocumentService) ReplaceRange(from, to int, text string) error {
	if s.engine == nil {
		return domain.ErrEngineUnavailable
	}
	if from < 0 || to < from {
		return domain.ErrInvalidRange
	}
	logger.Debug("Replace range [%d, %d) with %d runes", from, to, len([]rune(text)))
	return s.engine.ReplaceRange(from, to, text)
}

// InsertAtCursor inserts text at the current cursor position.
func (s *DocumentService) InsertAtCursor(text string) error {
	if s.engine == nil {
		return domain.ErrEngineUnavailable
	}
	logger.Debug("Insert %d runes at cursor", len([]rune(text)))
	return s.engine.InsertAtCursor(text)
}

// Content returns the full document text.
func (s *DocumentService) Content() string {
	if s.engine == nil {
		return ""
	}
	return s.engine.Content()
}

// CursorPos returns the current cursor rune offset.
func (s *DocumentService) CursorPos() int {
	if s.engine == nil {
		return 0
	}
	return s.engine.CursorPos()
}

// SetCursorPos moves the cursor, clamped to the document bounds.
func (s *DocumentService) SetCursorPos(pos int) {
	if s.engine == nil {
		return
	}
	s.engine.SetCursorPos(pos)
}

// SetSelectionRange sets the live selection to [from, to), clamped.
func (s *DocumentService) SetSelectionRange(from, to int) error {
	if s.engine == nil {
		return domain.ErrEngineUnavailable
	}
	if from < 0 || to < from {
		return domain.ErrInvalidRange
	}
	return s.engine.SetSelectionRange(from, to)
}

// CollapseSelection clears the selection without moving the cursor.
func (s *DocumentService) CollapseSelection() {
	if s.engine == nil {
		return
	}
	s.engine.CollapseSelection()
}
