package domain

// WebResult is a single hit returned by the web-search backend.
// The conversation session surfaces only the top-ranked result.
type WebResult struct {
	// Title is the result headline.
	Title string

	// Snippet is a short extract from the page.
	Snippet string

	// Link is the result URL.
	Link string
}
