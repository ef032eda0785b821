// Package agent runs an LLM-backed chat front end over the nutrition
// tool dispatcher. The model decides which tools to call; the
// dispatcher remains the single gatekeeper for validation and upstream
// access.
package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/agent/provider"
	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/dispatch"
)

const systemPrompt = `You are a nutrition assistant backed by the USDA FoodData Central database.
Use the available tools to search foods, look up nutrient details, and compare foods.
Always base nutritional statements on tool results rather than memory.
When comparing foods, present the values side by side in the order the user asked for them.`

// maxTurns bounds the generate/tool-call loop for one prompt.
const maxTurns = 8

// Invoker is the slice of the dispatcher the agent needs.
type Invoker interface {
	Invoke(ctx context.Context, req dispatch.Request) (*dispatch.Response, error)
}

// Agent ties a tool-calling LLM provider to the dispatcher.
type Agent struct {
	id         string
	provider   provider.ToolCallProvider
	dispatcher Invoker
}

// New creates an agent, registering the system prompt and the six
// nutrition tools on the provider.
func New(p provider.ToolCallProvider, dispatcher Invoker) (*Agent, error) {
	a := &Agent{
		id:         uuid.New().String(),
		provider:   p,
		dispatcher: dispatcher,
	}

	if err := p.AddSystemMessage(systemPrompt); err != nil {
		return nil, err
	}
	if err := p.AddTools(ToolDefinitions()); err != nil {
		return nil, err
	}

	return a, nil
}

// ID returns the conversation identifier.
func (a *Agent) ID() string {
	return a.id
}

// Run answers a single user prompt, executing any tool calls the model
// makes until it produces a plain-text answer.
func (a *Agent) Run(ctx context.Context, prompt string) (string, error) {
	if err := a.provider.AddUserMessage(prompt); err != nil {
		return "", err
	}

	for turn := 0; turn < maxTurns; turn++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		text, err := a.provider.Generate()
		if err != nil {
			return "", err
		}

		toolCalls := a.provider.GetToolCalls()
		if len(toolCalls) == 0 {
			return text, nil
		}

		for _, call := range toolCalls {
			result := a.executeToolCall(ctx, call.Function.Name, call.Function.Arguments)
			if err := a.provider.AddToolMessage(call.ID, result); err != nil {
				return "", err
			}
		}
	}

	return "", fmt.Errorf("no final answer after %d turns", maxTurns)
}

// executeToolCall runs one tool call through the dispatcher. Failures
// are reported back to the model as tool output so it can recover.
func (a *Agent) executeToolCall(ctx context.Context, name, rawArgs string) string {
	var args map[string]any
	if rawArgs != "" {
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return fmt.Sprintf("error: malformed tool arguments: %v", err)
		}
	}

	resp, err := a.dispatcher.Invoke(ctx, dispatch.Request{Tool: name, Arguments: args})
	if err != nil {
		log.Error(err)
		return "error: " + err.Error()
	}

	data, err := json.Marshal(resp.Result)
	if err != nil {
		return fmt.Sprintf("error: failed to encode tool result: %v", err)
	}
	return string(data)
}
