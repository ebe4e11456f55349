package domain

// Selection is a half-open range [From, To) of rune offsets into the
// current document, plus the plain text of that range.
//
// A Selection has no identity beyond its current value: it is recomputed
// on every selection-change notification and superseded atomically,
// never mutated in place.
type Selection struct {
	// From is the inclusive start offset.
	From int

	// To is the exclusive end offset. Invariant: From <= To.
	To int

	// Text is the plain-text content of the range.
	Text string
}

// IsEmpty reports whether the selection is collapsed (no selection).
// An empty selection suppresses the suggestion workflow.
func (s Selection) IsEmpty() bool {
	return s.From >= s.To
}

// Len returns the number of runes covered by the selection.
func (s Selection) Len() int {
	if s.IsEmpty() {
		return 0
	}
	return s.To - s.From
}

// Equal reports whether two selections cover the same range with the
// same text. Used to suppress redundant toolbar re-emissions.
func (s Selection) Equal(other Selection) bool {
	return s.From == other.From && s.To == other.To && s.Text == other.Text
}
