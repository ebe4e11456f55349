package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/scribe-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

func TestNew(t *testing.T) {
	tr := New(styles.DefaultStyles())

	assert.NotNil(t, tr)
	assert.Zero(t, tr.Len())
}

func TestNew_NilStyles(t *testing.T) {
	tr := New(nil)

	assert.NotNil(t, tr)
}

func TestTranscript_Append_MovesCursor(t *testing.T) {
	tr := New(nil)

	tr.Append(domain.Message{ID: "1", Role: domain.RoleUser, Text: "one"})
	tr.Append(domain.Message{ID: "2", Role: domain.RoleAgent, Text: "two"})

	assert.Equal(t, 2, tr.Len())
	selected, ok := tr.Selected()
	require.True(t, ok)
	assert.Equal(t, "two", selected.Text)
}

func TestTranscript_Navigation_Clamped(t *testing.T) {
	tr := New(nil)
	tr.Append(domain.Message{ID: "1", Role: domain.RoleUser, Text: "one"})
	tr.Append(domain.Message{ID: "2", Role: domain.RoleAgent, Text: "two"})

	tr.MoveUp()
	tr.MoveUp()
	tr.MoveUp()
	selected, ok := tr.Selected()
	require.True(t, ok)
	assert.Equal(t, "one", selected.Text)

	tr.MoveDown()
	tr.MoveDown()
	tr.MoveDown()
	selected, ok = tr.Selected()
	require.True(t, ok)
	assert.Equal(t, "two", selected.Text)
}

func TestTranscript_Selected_Empty(t *testing.T) {
	tr := New(nil)

	_, ok := tr.Selected()
	assert.False(t, ok)
}

func TestTranscript_View_EmptyHint(t *testing.T) {
	tr := New(nil)

	assert.Contains(t, tr.View(), EmptyHint)
	assert.Equal(t,
		"Ask me to summarize, explain, or type `search react server components`",
		EmptyHint,
	)
}

func TestTranscript_View_RendersMessages(t *testing.T) {
	tr := New(nil)
	tr.SetSize(60, 20)
	tr.Append(domain.Message{ID: "1", Role: domain.RoleUser, Text: "hello there"})
	tr.Append(domain.Message{ID: "2", Role: domain.RoleAgent, Text: "plain reply"})

	view := tr.View()
	assert.Contains(t, view, "hello there")
	assert.Contains(t, view, "plain reply")
}

func TestTranscript_View_TailVisibleWhenOverflowing(t *testing.T) {
	tr := New(nil)
	tr.SetSize(60, 4)
	for i := 0; i < 20; i++ {
		tr.Append(domain.Message{ID: "u", Role: domain.RoleUser, Text: "older"})
	}
	tr.Append(domain.Message{ID: "last", Role: domain.RoleUser, Text: "newest entry"})

	assert.Contains(t, tr.View(), "newest entry")
}
