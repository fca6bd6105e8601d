package core

// Role labels for conversation turns.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is one conversation turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation is an ordered sequence of turns. The pipeline reads the last
// turn's content as the seed prompt and, on success, returns a copy extended
// with one assistant turn. Conversations are treated as immutable values:
// mutating methods return copies and never touch the receiver.
type Conversation []Message

// LastContent returns the content of the final turn, regardless of its role.
// The boolean is false for an empty conversation.
func (c Conversation) LastContent() (string, bool) {
	if len(c) == 0 {
		return "", false
	}
	return c[len(c)-1].Content, true
}

// Append returns a copy of the conversation extended with one turn.
func (c Conversation) Append(role, content string) Conversation {
	out := make(Conversation, len(c), len(c)+1)
	copy(out, c)
	return append(out, Message{Role: role, Content: content})
}

// Clone returns an independent copy of the conversation.
func (c Conversation) Clone() Conversation {
	if c == nil {
		return nil
	}
	out := make(Conversation, len(c))
	copy(out, c)
	return out
}

// ConversationStore persists conversations between pipeline runs. The
// pipeline itself is stateless; stores exist for hosts (and the runner) that
// keep sessions alive across invocations.
type ConversationStore interface {
	// Get returns the conversation stored under id.
	Get(id string) (Conversation, error)

	// Put replaces the conversation stored under id, creating it if absent.
	Put(id string, conv Conversation) error

	// Append adds one turn to the conversation, creating it if absent.
	Append(id string, msg Message) error

	// Delete removes the conversation.
	Delete(id string) error

	// List returns the ids of all stored conversations.
	List() []string
}
