package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSuggestionStatus_String tests the lifecycle state names
func TestSuggestionStatus_String(t *testing.T) {
	assert.Equal(t, "idle", SuggestionIdle.String())
	assert.Equal(t, "loading", SuggestionLoading.String())
	assert.Equal(t, "previewing", SuggestionPreviewing.String())
	assert.Equal(t, "applying", SuggestionApplying.String())
	assert.Equal(t, "unknown", SuggestionStatus(99).String())
}

// TestRewriteTask_Label tests toolbar labels
func TestRewriteTask_Label(t *testing.T) {
	assert.Equal(t, "Edit with AI", TaskEdit.Label())
	assert.Equal(t, "Shorten", TaskShorten.Label())
	assert.Equal(t, "Lengthen", TaskLengthen.Label())
	assert.Equal(t, "Convert to table", TaskTable.Label())
}

// TestRewriteTask_Valid tests task validation
func TestRewriteTask_Valid(t *testing.T) {
	for _, task := range AllRewriteTasks() {
		assert.True(t, task.Valid(), "task %q should be valid", task)
	}
	assert.False(t, RewriteTask("translate").Valid())
}

// TestAllRewriteTasks_EditLast tests that the primary action sits at the
// end of the toolbar, matching the display order
func TestAllRewriteTasks_EditLast(t *testing.T) {
	tasks := AllRewriteTasks()

	assert.Len(t, tasks, 4)
	assert.Equal(t, TaskEdit, tasks[len(tasks)-1])
}

// TestMessage_IsAgent tests the insertability check
func TestMessage_IsAgent(t *testing.T) {
	assert.True(t, Message{Role: RoleAgent}.IsAgent())
	assert.False(t, Message{Role: RoleUser}.IsAgent())
}
