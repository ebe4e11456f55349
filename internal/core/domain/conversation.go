package domain

// Role identifies the author of a conversation message.
type Role string

const (
	// RoleUser marks a message typed by the user.
	RoleUser Role = "user"
	// RoleAgent marks a message produced by the assistant.
	RoleAgent Role = "agent"
)

// Message is a single entry in the conversation transcript.
//
// The transcript is an ordered, append-only log: insertion order is the
// display order and messages are never reordered or deduplicated.
type Message struct {
	// ID uniquely identifies the message within the session.
	ID string

	// Role is the author of the message.
	Role Role

	// Text is the message content. Agent messages may contain markdown.
	Text string
}

// IsAgent reports whether the message was produced by the assistant.
// Only agent messages can be inserted into the document.
func (m Message) IsAgent() bool {
	return m.Role == RoleAgent
}
