package testutil

import (
	"github.com/hupe1980/agentblend/core"
)

// ConversationBuilder constructs conversations with fluent chaining for tests.
// Example:
//
//	conv := NewConversationBuilder().User("hi").Assistant("hello").Build()
type ConversationBuilder struct {
	conv core.Conversation
}

// NewConversationBuilder creates a new empty builder.
func NewConversationBuilder() *ConversationBuilder {
	return &ConversationBuilder{}
}

// System appends a system turn (chainable).
func (b *ConversationBuilder) System(content string) *ConversationBuilder {
	b.conv = append(b.conv, core.Message{Role: core.RoleSystem, Content: content})
	return b
}

// User appends a user turn (chainable).
func (b *ConversationBuilder) User(content string) *ConversationBuilder {
	b.conv = append(b.conv, core.Message{Role: core.RoleUser, Content: content})
	return b
}

// Assistant appends an assistant turn (chainable).
func (b *ConversationBuilder) Assistant(content string) *ConversationBuilder {
	b.conv = append(b.conv, core.Message{Role: core.RoleAssistant, Content: content})
	return b
}

// Build returns the accumulated conversation.
func (b *ConversationBuilder) Build() core.Conversation {
	return b.conv
}
