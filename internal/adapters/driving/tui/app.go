package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/scribe-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/scribe-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/scribe-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/scribe-cli/internal/adapters/driving/tui/views/chat"
	"github.com/custodia-labs/scribe-cli/internal/adapters/driving/tui/views/editor"
	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// editorView is the document pane.
	editorView *editor.View

	// chatView is the assistant pane.
	chatView *chat.View

	// focus tracks which pane receives keyboard input.
	focus messages.Pane

	// selection mirrors the editor's live selection for the status line.
	selection domain.Selection

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	editorView := editor.NewView(s, km, ports.Document, ports.Rewrite)
	chatView := chat.NewView(s, km, ports.Conversation, ports.Document)
	chatView.Blur()

	return &App{
		ports:      ports,
		ctx:        context.Background(),
		styles:     s,
		keymap:     km,
		editorView: editorView,
		chatView:   chatView,
		focus:      messages.PaneEditor,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.editorView.WithContext(ctx)
	a.chatView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("scribe - Collaborative Editor"),
		a.editorView.Init(),
		a.chatView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		if keymap.Matches(msg.String(), a.keymap.FocusNext) {
			return a, a.switchFocus()
		}

		// Forward key messages to the focused pane
		if a.focus == messages.PaneEditor {
			a.editorView, cmd = a.editorView.Update(msg)
		} else {
			a.chatView, cmd = a.chatView.Update(msg)
		}
		return a, cmd

	case messages.RewriteCompleted:
		a.editorView, cmd = a.editorView.Update(msg)
		return a, cmd

	case messages.ChatCompleted, messages.MessageInserted:
		a.chatView, cmd = a.chatView.Update(msg)
		return a, cmd

	case messages.SelectionChanged:
		a.selection = msg.Selection
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward remaining messages (blink ticks etc.) to the focused pane
	if a.focus == messages.PaneChat {
		a.chatView, cmd = a.chatView.Update(msg)
	}
	return a, cmd
}

// switchFocus toggles keyboard focus between the panes.
func (a *App) switchFocus() tea.Cmd {
	if a.focus == messages.PaneEditor {
		a.focus = messages.PaneChat
		a.editorView.Blur()
		return a.chatView.Focus()
	}
	a.focus = messages.PaneEditor
	a.chatView.Blur()
	a.editorView.Focus()
	return nil
}

// View implements tea.Model.
// It renders both panes side by side.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	editorWidth := a.width * 2 / 3
	chatWidth := a.width - editorWidth - 3

	editorPane := a.styles.Border.
		Width(editorWidth).
		Height(a.height - 3).
		Render(a.editorView.View())
	chatPane := a.styles.Border.
		Width(chatWidth).
		Height(a.height - 3).
		Render(a.chatView.View())

	panes := lipgloss.JoinHorizontal(lipgloss.Top, editorPane, " ", chatPane)
	return lipgloss.JoinVertical(lipgloss.Left, panes, a.statusLine())
}

// statusLine summarises the live selection, or the focused pane.
func (a *App) statusLine() string {
	var text string
	if a.selection.IsEmpty() {
		text = fmt.Sprintf("Focus: %s", a.focus)
	} else {
		text = fmt.Sprintf("%d characters selected", a.selection.Len())
	}
	return a.styles.StatusBar.Width(a.width).Render(text)
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Focus returns the pane that currently has keyboard focus.
func (a *App) Focus() messages.Pane {
	return a.focus
}

// EditorView returns the document pane (for testing).
func (a *App) EditorView() *editor.View {
	return a.editorView
}

// ChatView returns the assistant pane (for testing).
func (a *App) ChatView() *chat.View {
	return a.chatView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	editorWidth := width * 2 / 3
	chatWidth := width - editorWidth - 3
	a.editorView.SetSize(editorWidth-2, height-5)
	a.chatView.SetSize(chatWidth-2, height-5)
}
