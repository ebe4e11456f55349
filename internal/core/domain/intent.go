package domain

import (
	"regexp"
	"strings"
)

// IntentKind classifies the purpose of a user utterance.
type IntentKind int

const (
	// IntentGenerative routes the utterance to the generative backend.
	IntentGenerative IntentKind = iota
	// IntentSearch routes the utterance to the web-search backend.
	IntentSearch
)

// String returns the string representation of the intent kind.
func (k IntentKind) String() string {
	switch k {
	case IntentGenerative:
		return "generative"
	case IntentSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Intent is the classified purpose of a user utterance. It carries no
// state beyond the routed payload.
type Intent struct {
	// Kind is the classification.
	Kind IntentKind

	// Query is the search query (IntentSearch only): the input with
	// exactly one leading "search " or "news " prefix stripped, trimmed.
	Query string

	// Prompt is the generative prompt (IntentGenerative only): the full
	// input forwarded verbatim.
	Prompt string
}

// searchPrefix matches exactly one leading "search" or "news" keyword
// followed by whitespace, case-insensitively.
var searchPrefix = regexp.MustCompile(`(?i)^(search|news)\s+`)

// ClassifyIntent derives an Intent from raw input text.
//
// It is deterministic and side-effect-free, and is applied once per
// submitted message. Input beginning (after trimming, case-insensitively)
// with "search " or "news " is a search; everything else is generative,
// with the original input forwarded untouched as the prompt.
func ClassifyIntent(text string) Intent {
	trimmed := strings.TrimSpace(text)
	if searchPrefix.MatchString(trimmed) {
		query := strings.TrimSpace(searchPrefix.ReplaceAllString(trimmed, ""))
		return Intent{Kind: IntentSearch, Query: query}
	}
	return Intent{Kind: IntentGenerative, Prompt: text}
}
