package domain

// SuggestionStatus tracks a suggestion through the request/preview/apply
// lifecycle.
type SuggestionStatus int

const (
	// SuggestionIdle means no suggestion is in flight or displayed.
	SuggestionIdle SuggestionStatus = iota
	// SuggestionLoading means a rewrite request has been issued and the
	// response has not yet arrived.
	SuggestionLoading
	// SuggestionPreviewing means a proposed rewrite is displayed next to
	// the original, awaiting confirm or cancel.
	SuggestionPreviewing
	// SuggestionApplying means a confirmed rewrite is being written into
	// the document.
	SuggestionApplying
)

// String returns the string representation of the status.
func (s SuggestionStatus) String() string {
	switch s {
	case SuggestionIdle:
		return "idle"
	case SuggestionLoading:
		return "loading"
	case SuggestionPreviewing:
		return "previewing"
	case SuggestionApplying:
		return "applying"
	default:
		return "unknown"
	}
}

// Suggestion is a captured original/proposed text pair awaiting user
// confirmation. At most one Suggestion exists per workflow instance.
type Suggestion struct {
	// Original is a snapshot of the selected text at request time.
	// It is never re-read from the live document; the document may
	// change while the request is in flight.
	Original string

	// Range is a snapshot of the selected range at request time.
	// Confirm replaces this captured range, clamped to the current
	// document, rather than whatever the live selection has become.
	Range Selection

	// Proposed is the rewrite returned by the generative backend.
	Proposed string

	// Task is the rewrite task that produced this suggestion.
	Task RewriteTask

	// Status is the current lifecycle state.
	Status SuggestionStatus
}
