// Package editor provides the document pane with the rewrite suggestion workflow.
package editor

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/scribe-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/scribe-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/scribe-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/scribe-cli/internal/core/domain"
	"github.com/custodia-labs/scribe-cli/internal/core/ports/driving"
	"github.com/custodia-labs/scribe-cli/internal/logger"
)

// mode tracks the interaction state of the editor pane.
type mode int

const (
	// modeNormal moves the cursor through the document.
	modeNormal mode = iota

	// modeVisual extends a selection from an anchor position.
	modeVisual

	// modeToolbar picks a rewrite action for the active selection.
	modeToolbar

	// modePreview reviews a proposed rewrite before applying it.
	modePreview
)

// View represents the document pane.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	documentService driving.DocumentService
	rewriteService  driving.RewriteService
	ctx             context.Context

	mode          mode
	anchor        int
	toolbarTasks  []domain.RewriteTask
	toolbarIndex  int
	suggestion    *domain.Suggestion
	lastSelection domain.Selection

	// seq fences in-flight rewrite requests; completions carrying an
	// older sequence number are discarded.
	seq        uint64
	pendingSeq uint64

	width   int
	height  int
	focused bool
	err     error
}

// NewView creates a new editor view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	documentService driving.DocumentService,
	rewriteService driving.RewriteService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:          s,
		keymap:          km,
		documentService: documentService,
		rewriteService:  rewriteService,
		ctx:             context.Background(),
		mode:            modeNormal,
		toolbarTasks:    domain.AllRewriteTasks(),
		width:           80,
		height:          24,
		focused:         true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Focus marks the pane as focused.
func (v *View) Focus() {
	v.focused = true
}

// Blur removes focus from the pane.
func (v *View) Blur() {
	v.focused = false
}

// Focused reports whether the pane has focus.
func (v *View) Focused() bool {
	return v.focused
}

// SetSize sets the rendering dimensions.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Suggestion returns the in-flight or previewed suggestion, if any.
func (v *View) Suggestion() *domain.Suggestion {
	return v.suggestion
}

// Update handles messages for the editor view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !v.focused {
			return v, nil
		}
		return v.handleKeyMsg(msg)

	case messages.RewriteCompleted:
		return v.handleRewriteCompleted(msg)
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch v.mode {
	case modePreview:
		return v.handlePreviewKey(msg)
	case modeToolbar:
		return v.handleToolbarKey(msg)
	case modeVisual:
		return v.handleVisualKey(msg)
	case modeNormal:
		return v.handleNormalKey(msg)
	}
	return v, nil
}

// handleNormalKey moves the cursor and starts selections.
func (v *View) handleNormalKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.documentService == nil {
		return v, nil
	}

	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Left):
		v.documentService.SetCursorPos(v.documentService.CursorPos() - 1)
	case keymap.Matches(keyStr, v.keymap.Right):
		v.documentService.SetCursorPos(v.documentService.CursorPos() + 1)
	case keymap.Matches(keyStr, v.keymap.Up):
		v.moveCursorVertically(-1)
	case keymap.Matches(keyStr, v.keymap.Down):
		v.moveCursorVertically(1)
	case keymap.Matches(keyStr, v.keymap.VisualSelect):
		v.anchor = v.documentService.CursorPos()
		v.mode = modeVisual
	}
	return v, v.trackSelection()
}

// handleVisualKey extends the selection from the anchor.
func (v *View) handleVisualKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.documentService == nil {
		return v, nil
	}

	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Cancel):
		v.documentService.CollapseSelection()
		v.mode = modeNormal
		return v, v.trackSelection()

	case keymap.Matches(keyStr, v.keymap.Left):
		v.documentService.SetCursorPos(v.documentService.CursorPos() - 1)
	case keymap.Matches(keyStr, v.keymap.Right):
		v.documentService.SetCursorPos(v.documentService.CursorPos() + 1)
	case keymap.Matches(keyStr, v.keymap.Up):
		v.moveCursorVertically(-1)
	case keymap.Matches(keyStr, v.keymap.Down):
		v.moveCursorVertically(1)

	case keymap.Matches(keyStr, v.keymap.VisualSelect),
		keymap.Matches(keyStr, v.keymap.Confirm):
		sel := v.documentService.SelectionRange()
		if sel.IsEmpty() {
			v.documentService.CollapseSelection()
			v.mode = modeNormal
		} else {
			v.mode = modeToolbar
			v.toolbarIndex = 0
		}
		return v, v.trackSelection()

	default:
		return v, nil
	}

	// Keep the live selection in step with the cursor. The cursor may sit
	// on either side of the anchor; the range is always ordered.
	from, to := v.anchor, v.documentService.CursorPos()
	if from > to {
		from, to = to, from
	}
	if err := v.documentService.SetSelectionRange(from, to); err != nil {
		v.err = err
	}
	return v, v.trackSelection()
}

// handleToolbarKey navigates the floating toolbar and fires requests.
func (v *View) handleToolbarKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Ignore further input while a request is in flight.
	if v.suggestion != nil && v.suggestion.Status == domain.SuggestionLoading {
		if keymap.Matches(msg.String(), v.keymap.Cancel) {
			// Abandoning the wait: the stale completion will be fenced off.
			v.suggestion = nil
			v.documentService.CollapseSelection()
			v.mode = modeNormal
			return v, v.trackSelection()
		}
		return v, nil
	}

	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Cancel):
		v.documentService.CollapseSelection()
		v.mode = modeNormal
		return v, v.trackSelection()

	case keymap.Matches(keyStr, v.keymap.Left):
		if v.toolbarIndex > 0 {
			v.toolbarIndex--
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Right):
		if v.toolbarIndex < len(v.toolbarTasks)-1 {
			v.toolbarIndex++
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Confirm):
		return v, v.requestRewrite(v.toolbarTasks[v.toolbarIndex])
	}

	return v, nil
}

// handlePreviewKey confirms or discards the previewed suggestion.
func (v *View) handlePreviewKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Confirm):
		return v.confirmSuggestion()

	case keymap.Matches(keyStr, v.keymap.Cancel):
		// Discarding leaves the document untouched.
		v.suggestion = nil
		v.documentService.CollapseSelection()
		v.mode = modeNormal
		return v, v.trackSelection()
	}
	return v, nil
}

// requestRewrite snapshots the selection and dispatches a proposal request.
func (v *View) requestRewrite(task domain.RewriteTask) tea.Cmd {
	sel := v.documentService.SelectionRange()
	if sel.IsEmpty() {
		v.documentService.CollapseSelection()
		v.mode = modeNormal
		return v.trackSelection()
	}

	v.seq++
	seq := v.seq
	v.pendingSeq = seq
	v.suggestion = &domain.Suggestion{
		Original: sel.Text,
		Range:    sel,
		Task:     task,
		Status:   domain.SuggestionLoading,
	}
	v.err = nil

	logger.Debug("editor: requesting %s rewrite for [%d,%d)", task, sel.From, sel.To)

	rewriteService := v.rewriteService
	ctx := v.ctx
	text := sel.Text
	return func() tea.Msg {
		proposed, err := rewriteService.Propose(ctx, task, text)
		return messages.RewriteCompleted{Seq: seq, Task: task, Proposed: proposed, Err: err}
	}
}

// handleRewriteCompleted moves the suggestion into preview, discarding
// completions from superseded requests.
func (v *View) handleRewriteCompleted(msg messages.RewriteCompleted) (*View, tea.Cmd) {
	if msg.Seq != v.pendingSeq || v.suggestion == nil ||
		v.suggestion.Status != domain.SuggestionLoading {
		logger.Debug("editor: discarding stale rewrite completion (seq %d)", msg.Seq)
		return v, nil
	}

	if msg.Err != nil {
		v.err = msg.Err
		v.suggestion = nil
		v.documentService.CollapseSelection()
		v.mode = modeNormal
		return v, v.trackSelection()
	}

	v.suggestion.Proposed = msg.Proposed
	v.suggestion.Status = domain.SuggestionPreviewing
	v.mode = modePreview
	return v, nil
}

// confirmSuggestion applies exactly one replacement of the captured range.
func (v *View) confirmSuggestion() (*View, tea.Cmd) {
	sugg := v.suggestion
	if sugg == nil || sugg.Status != domain.SuggestionPreviewing {
		return v, nil
	}

	sugg.Status = domain.SuggestionApplying
	err := v.documentService.ReplaceRange(sugg.Range.From, sugg.Range.To, sugg.Proposed)
	if err != nil {
		v.err = err
	}

	v.suggestion = nil
	v.documentService.CollapseSelection()
	v.mode = modeNormal
	return v, v.trackSelection()
}

// trackSelection emits a SelectionChanged message when the selection
// actually changed since the last emission.
func (v *View) trackSelection() tea.Cmd {
	if v.documentService == nil {
		return nil
	}
	sel := v.documentService.SelectionRange()
	if sel.Equal(v.lastSelection) {
		return nil
	}
	v.lastSelection = sel
	return func() tea.Msg {
		return messages.SelectionChanged{Selection: sel}
	}
}

// moveCursorVertically moves the cursor a line up or down, keeping the
// column where the line is long enough.
func (v *View) moveCursorVertically(delta int) {
	content := []rune(v.documentService.Content())
	pos := v.documentService.CursorPos()

	line, col := lineCol(content, pos)
	target := line + delta
	if target < 0 {
		v.documentService.SetCursorPos(0)
		return
	}

	starts := lineStarts(content)
	if target >= len(starts) {
		v.documentService.SetCursorPos(len(content))
		return
	}

	start := starts[target]
	end := len(content)
	if target+1 < len(starts) {
		end = starts[target+1] - 1
	}
	pos = start + col
	if pos > end {
		pos = end
	}
	v.documentService.SetCursorPos(pos)
}

// lineCol returns the zero-based line and column of a rune offset.
func lineCol(content []rune, pos int) (int, int) {
	line, col := 0, 0
	for i := 0; i < pos && i < len(content); i++ {
		if content[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return line, col
}

// lineStarts returns the rune offset of each line start.
func lineStarts(content []rune) []int {
	starts := []int{0}
	for i, r := range content {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// View renders the editor pane.
func (v *View) View() string {
	if v.mode == modePreview && v.suggestion != nil {
		return v.renderPreview()
	}

	sections := make([]string, 0, 6)

	title := v.styles.Subtitle.Render("Document")
	if v.focused {
		title = v.styles.Title.Render("Document")
	}
	sections = append(sections, title, "")

	sections = append(sections, v.renderDocument())

	if v.err != nil {
		sections = append(sections, "", v.styles.Error.Render("Error: "+v.err.Error()))
	}

	sections = append(sections, "", v.renderHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderDocument renders the content with cursor and selection
// highlighting. In toolbar mode the action bar is anchored on the row
// above the first selected line, centred over the selection's columns.
func (v *View) renderDocument() string {
	if v.documentService == nil {
		return v.styles.Muted.Render("No document loaded.")
	}

	content := []rune(v.documentService.Content())
	cursor := v.documentService.CursorPos()
	sel := v.documentService.SelectionRange()

	var b strings.Builder
	for i := 0; i <= len(content); i++ {
		var ch string
		if i < len(content) {
			ch = string(content[i])
		} else {
			ch = " "
		}
		if ch == "\n" {
			if i == cursor && v.mode != modeToolbar {
				b.WriteString(v.styles.Cursor.Render(" "))
			}
			b.WriteString("\n")
			continue
		}

		switch {
		case !sel.IsEmpty() && i >= sel.From && i < sel.To:
			b.WriteString(v.styles.SelectionHighlight.Render(ch))
		case i == cursor && v.mode != modeToolbar:
			b.WriteString(v.styles.Cursor.Render(ch))
		case i < len(content):
			b.WriteString(v.styles.Normal.Render(ch))
		}
	}
	rendered := b.String()

	if v.mode != modeToolbar || sel.IsEmpty() {
		return rendered
	}
	return v.anchorToolbar(rendered, content, sel)
}

// anchorToolbar inserts the toolbar row above the selection's first line.
func (v *View) anchorToolbar(rendered string, content []rune, sel domain.Selection) string {
	toolbar := v.renderToolbar()

	line, col := lineCol(content, sel.From)
	offset := col - lipgloss.Width(toolbar)/2
	if offset < 0 {
		offset = 0
	}
	if limit := v.width - lipgloss.Width(toolbar); limit >= 0 && offset > limit {
		offset = limit
	}
	anchored := strings.Repeat(" ", offset) + toolbar

	lines := strings.Split(rendered, "\n")
	if line > len(lines) {
		line = len(lines)
	}
	result := make([]string, 0, len(lines)+1)
	result = append(result, lines[:line]...)
	result = append(result, anchored)
	result = append(result, lines[line:]...)
	return strings.Join(result, "\n")
}

// renderToolbar renders the floating action bar for the selection.
func (v *View) renderToolbar() string {
	if v.suggestion != nil && v.suggestion.Status == domain.SuggestionLoading {
		return v.styles.Toolbar.Render("Thinking...")
	}

	buttons := make([]string, 0, len(v.toolbarTasks))
	for i, task := range v.toolbarTasks {
		label := task.Label()
		if i == v.toolbarIndex {
			buttons = append(buttons, v.styles.ToolbarActive.Render(label))
		} else {
			buttons = append(buttons, v.styles.Toolbar.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
}

// renderPreview renders the original and proposed text side by side.
func (v *View) renderPreview() string {
	sugg := v.suggestion

	paneWidth := v.width/2 - 4
	if paneWidth < 20 {
		paneWidth = 20
	}

	original := v.styles.Border.Width(paneWidth).Render(
		v.styles.Muted.Render("Original") + "\n\n" + sugg.Original,
	)
	proposed := v.styles.Border.Width(paneWidth).Render(
		v.styles.Success.Render("Suggestion") + "\n\n" + sugg.Proposed,
	)

	header := v.styles.Title.Render(fmt.Sprintf("Preview: %s", sugg.Task.Label()))
	panes := lipgloss.JoinHorizontal(lipgloss.Top, original, " ", proposed)
	help := v.styles.Help.Render("enter: confirm | esc: discard")

	return lipgloss.JoinVertical(lipgloss.Left, header, "", panes, "", help)
}

// renderHelp renders context-sensitive keybinding hints.
func (v *View) renderHelp() string {
	switch v.mode {
	case modeVisual:
		return v.styles.Help.Render("←→↑↓: extend | v/enter: actions | esc: cancel")
	case modeToolbar:
		return v.styles.Help.Render("←→: choose | enter: request | esc: dismiss")
	case modeNormal, modePreview:
		return v.styles.Help.Render("←→↑↓: move | v: select | tab: switch pane")
	}
	return ""
}
