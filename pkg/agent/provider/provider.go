// Package provider defines interfaces and implementations for the LLM
// providers the nutrition agent can run on.
package provider

import (
	"github.com/openai/openai-go"
)

// LLMProvider defines a common interface for all language model providers
type LLMProvider interface {
	// Generate produces text based on the current context
	Generate() (string, error)

	// AddUserMessage adds a user message to the conversation
	AddUserMessage(content string) error

	// AddSystemMessage adds a system message to the conversation
	AddSystemMessage(content string) error

	// AddToolMessage adds a tool response message to the conversation
	AddToolMessage(toolCallID string, content string) error

	// GetModel returns the current model being used
	GetModel() string
}

// ToolCallProvider extends LLMProvider with tool calling capabilities.
// Tool definitions and tool calls use the OpenAI wire shapes regardless
// of the underlying provider so the agent has a single execution path.
type ToolCallProvider interface {
	LLMProvider

	// AddTools adds function calling tools to the provider
	AddTools(tools []openai.ChatCompletionToolParam) error

	// GetToolCalls returns any tool calls from the last generation
	GetToolCalls() []openai.ChatCompletionMessageToolCall
}
