package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestClassifyIntent_SearchPrefixes tests prefix stripping for search intents
func TestClassifyIntent_SearchPrefixes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		query string
	}{
		{"lowercase search", "search foo", "foo"},
		{"capitalised search", "Search foo", "foo"},
		{"uppercase search", "SEARCH foo", "foo"},
		{"news prefix", "news bar", "bar"},
		{"news with extra spaces", "news  bar", "bar"},
		{"leading whitespace", "  search foo", "foo"},
		{"multi-word query", "search react server components", "react server components"},
		{"only first prefix stripped", "search news headlines", "news headlines"},
		{"trailing whitespace trimmed", "search foo  ", "foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := ClassifyIntent(tt.input)

			assert.Equal(t, IntentSearch, intent.Kind)
			assert.Equal(t, tt.query, intent.Query)
			assert.Empty(t, intent.Prompt)
		})
	}
}

// TestClassifyIntent_Generative tests classification of non-search input
func TestClassifyIntent_Generative(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"plain prompt", "hello"},
		{"prefix without space", "searchfoo"},
		{"prefix mid-sentence", "please search foo"},
		{"newsletter is not news", "newsletter ideas"},
		{"question", "summarise this document"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := ClassifyIntent(tt.input)

			assert.Equal(t, IntentGenerative, intent.Kind)
			assert.Equal(t, tt.input, intent.Prompt)
			assert.Empty(t, intent.Query)
		})
	}
}

// TestClassifyIntent_PromptForwardedVerbatim tests that the generative
// prompt keeps the original input untouched, including whitespace
func TestClassifyIntent_PromptForwardedVerbatim(t *testing.T) {
	input := "  explain this  "

	intent := ClassifyIntent(input)

	assert.Equal(t, IntentGenerative, intent.Kind)
	assert.Equal(t, input, intent.Prompt)
}

// TestClassifyIntent_Deterministic tests repeated classification
func TestClassifyIntent_Deterministic(t *testing.T) {
	first := ClassifyIntent("news go 1.24 release")
	second := ClassifyIntent("news go 1.24 release")

	assert.Equal(t, first, second)
}

// TestIntentKind_String tests the string representation
func TestIntentKind_String(t *testing.T) {
	assert.Equal(t, "generative", IntentGenerative.String())
	assert.Equal(t, "search", IntentSearch.String())
	assert.Equal(t, "unknown", IntentKind(99).String())
}
