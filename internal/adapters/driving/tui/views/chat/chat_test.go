package chat

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/scribe-cli/internal/adapters/driving/tui/components/transcript"
	"github.com/custodia-labs/scribe-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/scribe-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/scribe-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// MockConversationService implements driving.ConversationService for testing.
type MockConversationService struct {
	RespondFunc func(ctx context.Context, text string) domain.Message
}

func (m *MockConversationService) Respond(ctx context.Context, text string) domain.Message {
	if m.RespondFunc != nil {
		return m.RespondFunc(ctx, text)
	}
	return domain.Message{ID: "reply", Role: domain.RoleAgent, Text: "ok"}
}

// MockDocumentService implements driving.DocumentService for testing.
type MockDocumentService struct {
	InsertCalls []string
	InsertErr   error
}

func (m *MockDocumentService) SelectionRange() domain.Selection        { return domain.Selection{} }
func (m *MockDocumentService) ReplaceRange(_, _ int, _ string) error   { return nil }
func (m *MockDocumentService) Content() string                         { return "" }
func (m *MockDocumentService) CursorPos() int                          { return 0 }
func (m *MockDocumentService) SetCursorPos(_ int)                      {}
func (m *MockDocumentService) SetSelectionRange(_, _ int) error        { return nil }
func (m *MockDocumentService) CollapseSelection()                      {}

func (m *MockDocumentService) InsertAtCursor(text string) error {
	m.InsertCalls = append(m.InsertCalls, text)
	return m.InsertErr
}

func newTestView() (*View, *MockConversationService, *MockDocumentService) {
	conversation := &MockConversationService{}
	doc := &MockDocumentService{}
	v := NewView(styles.DefaultStyles(), keymap.DefaultKeyMap(), conversation, doc)
	v.SetSize(40, 24)
	v.Focus()
	return v, conversation, doc
}

func typeText(v *View, text string) *View {
	for _, r := range text {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return v
}

func TestNewView(t *testing.T) {
	v, _, _ := newTestView()

	assert.NotNil(t, v)
	assert.Zero(t, v.Transcript().Len())
	assert.False(t, v.Loading())
}

func TestNewView_NilStyles(t *testing.T) {
	v := NewView(nil, nil, &MockConversationService{}, &MockDocumentService{})

	assert.NotNil(t, v)
}

func TestView_Submit_EmptyInput_NoOp(t *testing.T) {
	v, _, _ := newTestView()

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Zero(t, v.Transcript().Len())
	assert.False(t, v.Loading())
}

func TestView_Submit_WhitespaceOnly_NoOp(t *testing.T) {
	v, _, _ := newTestView()
	v = typeText(v, "   ")

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Zero(t, v.Transcript().Len())
}

func TestView_Submit_AppendsUserMessageAndLoads(t *testing.T) {
	v, conversation, _ := newTestView()
	conversation.RespondFunc = func(_ context.Context, text string) domain.Message {
		assert.Equal(t, "write a poem", text)
		return domain.Message{ID: "r1", Role: domain.RoleAgent, Text: "a poem"}
	}
	v = typeText(v, "write a poem")

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	require.Equal(t, 1, v.Transcript().Len())
	userMsg := v.Transcript().Messages()[0]
	assert.Equal(t, domain.RoleUser, userMsg.Role)
	assert.Equal(t, "write a poem", userMsg.Text)
	assert.NotEmpty(t, userMsg.ID)
	assert.True(t, v.Loading())

	completed := cmd()
	v, _ = v.Update(completed)

	require.Equal(t, 2, v.Transcript().Len())
	reply := v.Transcript().Messages()[1]
	assert.Equal(t, domain.RoleAgent, reply.Role)
	assert.Equal(t, "a poem", reply.Text)
	assert.False(t, v.Loading())
}

func TestView_Submit_WhileLoading_Ignored(t *testing.T) {
	v, _, _ := newTestView()
	v = typeText(v, "first")
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	v = typeText(v, "second")
	v, second := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, second)
	assert.Equal(t, 1, v.Transcript().Len())
}

func TestView_Insert_AgentMessage_WhileBrowsing(t *testing.T) {
	v, _, doc := newTestView()
	v.Transcript().Append(domain.Message{ID: "a1", Role: domain.RoleAgent, Text: "insert me"})

	// Up enters browse mode; i inserts the selected message
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}})

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.MessageInserted)
	require.True(t, ok)
	assert.NoError(t, msg.Err)
	require.Len(t, doc.InsertCalls, 1)
	assert.Equal(t, "insert me", doc.InsertCalls[0])
}

func TestView_Insert_UserMessage_Ignored(t *testing.T) {
	v, _, doc := newTestView()
	v.Transcript().Append(domain.Message{ID: "u1", Role: domain.RoleUser, Text: "mine"})

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}})

	assert.Nil(t, cmd)
	assert.Empty(t, doc.InsertCalls)
}

func TestView_Insert_NotBrowsing_TypesInstead(t *testing.T) {
	// A prompt starting with "i" must reach the input untouched, even
	// with an agent message selected in the transcript
	v, _, doc := newTestView()
	v.Transcript().Append(domain.Message{ID: "a1", Role: domain.RoleAgent, Text: "hi"})

	v = typeText(v, "is it raining")

	assert.Equal(t, "is it raining", v.input.Value())
	assert.Empty(t, doc.InsertCalls)
}

func TestView_Insert_EscLeavesBrowsing(t *testing.T) {
	v, _, doc := newTestView()
	v.Transcript().Append(domain.Message{ID: "a1", Role: domain.RoleAgent, Text: "hi"})

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}})

	assert.Empty(t, doc.InsertCalls)
	assert.Equal(t, "i", v.input.Value())
}

func TestView_Insert_TypingLeavesBrowsing(t *testing.T) {
	v, _, doc := newTestView()
	v.Transcript().Append(domain.Message{ID: "a1", Role: domain.RoleAgent, Text: "hi"})

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	v = typeText(v, "x")
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}})

	assert.Empty(t, doc.InsertCalls)
	assert.Equal(t, "xi", v.input.Value())
}

func TestView_TranscriptNavigation(t *testing.T) {
	v, _, _ := newTestView()
	v.Transcript().Append(domain.Message{ID: "1", Role: domain.RoleUser, Text: "one"})
	v.Transcript().Append(domain.Message{ID: "2", Role: domain.RoleAgent, Text: "two"})

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	selected, ok := v.Transcript().Selected()
	require.True(t, ok)
	assert.Equal(t, "one", selected.Text)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	selected, ok = v.Transcript().Selected()
	require.True(t, ok)
	assert.Equal(t, "two", selected.Text)
}

func TestView_View_EmptyTranscriptHint(t *testing.T) {
	v, _, _ := newTestView()

	assert.Contains(t, v.View(), transcript.EmptyHint)
}

func TestView_View_LoadingIndicator(t *testing.T) {
	v, _, _ := newTestView()
	v = typeText(v, "hello")
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Contains(t, v.View(), "...")
}

func TestView_Unfocused_IgnoresKeys(t *testing.T) {
	v, _, _ := newTestView()
	v.Blur()
	v = typeText(v, "hello")

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Zero(t, v.Transcript().Len())
}
