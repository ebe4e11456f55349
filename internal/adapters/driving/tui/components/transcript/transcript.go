// Package transcript renders the conversation history for the assistant pane.
package transcript

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/scribe-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// EmptyHint is shown when the conversation has no messages yet.
const EmptyHint = "Ask me to summarize, explain, or type `search react server components`"

// Transcript displays the conversation messages and tracks a cursor over them.
type Transcript struct {
	styles   *styles.Styles
	messages []domain.Message
	selected int
	width    int
	height   int
	renderer *glamour.TermRenderer
}

// New creates a new transcript component.
func New(s *styles.Styles) *Transcript {
	if s == nil {
		s = styles.DefaultStyles()
	}

	// Rendering falls back to plain text when glamour cannot initialise.
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(40),
	)
	if err != nil {
		renderer = nil
	}

	return &Transcript{
		styles:   s,
		messages: []domain.Message{},
		selected: -1,
		width:    40,
		height:   20,
		renderer: renderer,
	}
}

// Append adds a message to the end of the transcript and moves the cursor to it.
func (t *Transcript) Append(msg domain.Message) {
	t.messages = append(t.messages, msg)
	t.selected = len(t.messages) - 1
}

// Messages returns the messages in order.
func (t *Transcript) Messages() []domain.Message {
	return t.messages
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// MoveUp moves the cursor towards older messages.
func (t *Transcript) MoveUp() {
	if t.selected > 0 {
		t.selected--
	}
}

// MoveDown moves the cursor towards newer messages.
func (t *Transcript) MoveDown() {
	if t.selected < len(t.messages)-1 {
		t.selected++
	}
}

// Selected returns the message under the cursor, if any.
func (t *Transcript) Selected() (domain.Message, bool) {
	if t.selected < 0 || t.selected >= len(t.messages) {
		return domain.Message{}, false
	}
	return t.messages[t.selected], true
}

// SetSize sets the rendering dimensions.
func (t *Transcript) SetSize(width, height int) {
	t.width = width
	t.height = height

	wrap := width - 4
	if wrap < 20 {
		wrap = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err == nil {
		t.renderer = renderer
	}
}

// View renders the transcript.
func (t *Transcript) View() string {
	if len(t.messages) == 0 {
		return t.styles.Muted.Render(EmptyHint)
	}

	blocks := make([]string, 0, len(t.messages))
	for i, msg := range t.messages {
		blocks = append(blocks, t.renderMessage(i, msg))
	}
	view := strings.Join(blocks, "\n")

	// Keep the tail visible when the transcript outgrows the pane.
	lines := strings.Split(view, "\n")
	if t.height > 0 && len(lines) > t.height {
		lines = lines[len(lines)-t.height:]
	}
	return strings.Join(lines, "\n")
}

func (t *Transcript) renderMessage(index int, msg domain.Message) string {
	var body string
	if msg.IsAgent() {
		body = t.renderMarkdown(msg.Text)
	} else {
		body = msg.Text
	}

	var block string
	if msg.IsAgent() {
		block = t.styles.AgentMessage.Render(body)
	} else {
		block = t.styles.UserMessage.Render(body)
	}

	if index == t.selected {
		marker := t.styles.Selected.Render("▌")
		return lipgloss.JoinHorizontal(lipgloss.Top, marker, block)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, " ", block)
}

func (t *Transcript) renderMarkdown(text string) string {
	if t.renderer == nil {
		return text
	}
	rendered, err := t.renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(rendered)
}
