// Package domain defines the core business entities for Scribe.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Selection: A half-open character range within the document
//   - Suggestion: A captured original/proposed text pair awaiting confirmation
//   - Message: A single entry in the conversation transcript
//   - Intent: The classified purpose of a user utterance
//   - WebResult: A single hit from the web-search backend
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
