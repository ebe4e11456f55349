package domain

// RewriteTask identifies a toolbar rewrite action. Each task maps to a
// prompt template that wraps the selected text before it is sent to the
// generative backend.
type RewriteTask string

const (
	// TaskEdit is the general "Edit with AI" rewrite.
	TaskEdit RewriteTask = "edit"
	// TaskShorten condenses the selected text.
	TaskShorten RewriteTask = "shorten"
	// TaskLengthen expands the selected text.
	TaskLengthen RewriteTask = "lengthen"
	// TaskTable converts the selected text into a table.
	TaskTable RewriteTask = "table"
)

// AllRewriteTasks lists the toolbar tasks in display order.
func AllRewriteTasks() []RewriteTask {
	return []RewriteTask{TaskShorten, TaskLengthen, TaskTable, TaskEdit}
}

// Label returns the human-readable toolbar label for the task.
func (t RewriteTask) Label() string {
	switch t {
	case TaskEdit:
		return "Edit with AI"
	case TaskShorten:
		return "Shorten"
	case TaskLengthen:
		return "Lengthen"
	case TaskTable:
		return "Convert to table"
	default:
		return string(t)
	}
}

// Valid reports whether the task is one of the known rewrite tasks.
func (t RewriteTask) Valid() bool {
	switch t {
	case TaskEdit, TaskShorten, TaskLengthen, TaskTable:
		return true
	default:
		return false
	}
}
