// Package chat provides the assistant pane with the conversation panel.
package chat

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/scribe-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/scribe-cli/internal/adapters/driving/tui/components/transcript"
	"github.com/custodia-labs/scribe-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/scribe-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/scribe-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/scribe-cli/internal/core/domain"
	"github.com/custodia-labs/scribe-cli/internal/core/ports/driving"
	"github.com/custodia-labs/scribe-cli/internal/logger"

	"github.com/google/uuid"
)

// View represents the assistant pane with transcript and input.
type View struct {
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	input      *input.ChatInput
	transcript *transcript.Transcript

	conversationService driving.ConversationService
	documentService     driving.DocumentService
	ctx                 context.Context

	width  int
	height int

	focused bool
	loading bool

	// browsing is true while the user navigates the transcript with
	// up/down. Insert only acts in this mode; otherwise every printable
	// key belongs to the input.
	browsing bool

	status string
}

// NewView creates a new chat view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	conversationService driving.ConversationService,
	documentService driving.DocumentService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:              s,
		keymap:              km,
		input:               input.NewChatInput(s),
		transcript:          transcript.New(s),
		conversationService: conversationService,
		documentService:     documentService,
		ctx:                 context.Background(),
		width:               40,
		height:              24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Focus marks the pane as focused.
func (v *View) Focus() tea.Cmd {
	v.focused = true
	return v.input.Focus()
}

// Blur removes focus from the pane.
func (v *View) Blur() {
	v.focused = false
	v.input.Blur()
}

// Focused reports whether the pane has focus.
func (v *View) Focused() bool {
	return v.focused
}

// Loading reports whether a reply is pending.
func (v *View) Loading() bool {
	return v.loading
}

// Transcript returns the conversation transcript.
func (v *View) Transcript() *transcript.Transcript {
	return v.transcript
}

// SetSize sets the rendering dimensions.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
	v.transcript.SetSize(width, height-6)
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !v.focused {
			return v, nil
		}
		return v.handleKeyMsg(msg)

	case messages.ChatCompleted:
		v.loading = false
		v.transcript.Append(msg.Reply)
		return v, nil

	case messages.MessageInserted:
		if msg.Err != nil {
			v.status = "Insert failed: " + msg.Err.Error()
		} else {
			v.status = "Inserted into document"
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	v.status = ""

	switch {
	case msg.Type == tea.KeyEnter:
		v.browsing = false
		return v, v.submit()

	case msg.Type == tea.KeyUp:
		v.browsing = true
		v.transcript.MoveUp()
		return v, nil

	case msg.Type == tea.KeyDown:
		v.browsing = true
		v.transcript.MoveDown()
		return v, nil

	case msg.Type == tea.KeyEsc:
		v.browsing = false
		return v, nil

	case v.browsing && keymap.Matches(msg.String(), v.keymap.Insert):
		v.browsing = false
		return v, v.insertSelected()
	}

	// Everything else is typing.
	v.browsing = false
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// submit sends the current input to the conversation service.
func (v *View) submit() tea.Cmd {
	text := strings.TrimSpace(v.input.Value())
	if text == "" {
		return nil
	}
	if v.loading {
		// One request at a time keeps replies in submission order.
		return nil
	}

	v.transcript.Append(domain.Message{
		ID:   uuid.NewString(),
		Role: domain.RoleUser,
		Text: text,
	})
	v.input.Reset()
	v.loading = true

	logger.Debug("chat: submitting prompt (%d chars)", len(text))

	conversationService := v.conversationService
	ctx := v.ctx
	return func() tea.Msg {
		reply := conversationService.Respond(ctx, text)
		return messages.ChatCompleted{Reply: reply}
	}
}

// insertSelected places the selected agent message at the document cursor.
func (v *View) insertSelected() tea.Cmd {
	msg, ok := v.transcript.Selected()
	if !ok || !msg.IsAgent() {
		return nil
	}
	if v.documentService == nil {
		return nil
	}

	text := msg.Text
	documentService := v.documentService
	return func() tea.Msg {
		return messages.MessageInserted{Err: documentService.InsertAtCursor(text)}
	}
}

// View renders the chat view.
func (v *View) View() string {
	sections := make([]string, 0, 8)

	title := v.styles.Subtitle.Render("Assistant")
	if v.focused {
		title = v.styles.Title.Render("Assistant")
	}
	sections = append(sections, title, "")

	sections = append(sections, v.transcript.View())

	if v.loading {
		sections = append(sections, "", v.styles.Muted.Render("..."))
	}

	if v.status != "" {
		sections = append(sections, "", v.styles.Muted.Render(v.status))
	}

	sections = append(sections, "", v.input.View())
	sections = append(sections, v.styles.Help.Render("enter: send | ↑↓: browse | i: insert | tab: switch pane"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
