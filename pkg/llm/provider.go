// Package llm provides abstractions for LLM provider integration.
//
// Example usage:
//
//	provider, err := openai.NewProvider(
//	    os.Getenv("OPENAI_API_KEY"),
//	    openai.WithModel("gpt-4o-mini"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	reply, err := provider.Complete(context.Background(), []*llm.Message{
//	    llm.NewSystemMessage("You translate commands."),
//	    llm.NewUserMessage("쿠팡 생수 검색"),
//	})
package llm

import (
	"context"
)

// MessageRole identifies the author of a conversation message.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is a single conversation turn sent to or received from a provider.
type Message struct {
	Role    MessageRole
	Content string
}

// NewSystemMessage creates a system message.
func NewSystemMessage(content string) *Message {
	return &Message{Role: RoleSystem, Content: content}
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) *Message {
	return &Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage creates an assistant message.
func NewAssistantMessage(content string) *Message {
	return &Message{Role: RoleAssistant, Content: content}
}

// Provider defines the interface for LLM integrations.
//
// Providers handle API communication with LLM services and nothing else. The
// translation layer above owns prompt construction and response parsing, so
// providers stay reusable and testable independently of command semantics.
type Provider interface {
	// Complete sends messages to the LLM and returns the full response.
	//
	// Returns the assistant's response message or an error. A nil error
	// guarantees a non-nil message, though its content may be empty.
	Complete(ctx context.Context, messages []*Message) (*Message, error)

	// GetModel returns the model name being used.
	GetModel() string

	// GetBaseURL returns the base URL being used for API requests.
	GetBaseURL() string
}
