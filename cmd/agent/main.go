// Command agent is an interactive chat front end for the nutrition
// tools, driven by an OpenAI or Anthropic model.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/agent"
	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/agent/provider"
	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/config"
	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/dispatch"
	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/fdc"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Warn(err)
	}

	client := fdc.New(cfg.FDC.BaseURL, cfg.FDC.APIKey, cfg.FDC.RequestTimeout)
	dispatcher := dispatch.NewWithLimits(client, dispatch.Limits{
		MaxPageSize:     cfg.FDC.MaxPageSize,
		MaxCompareFoods: cfg.FDC.MaxCompareFoods,
	})

	llm, err := selectProvider(cfg)
	if err != nil {
		log.Fatal(err)
	}

	a, err := agent.New(llm, dispatcher)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Nutrition assistant ready (model: %s). Type a question, or 'exit' to quit.\n", llm.GetModel())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		prompt := strings.TrimSpace(scanner.Text())
		if prompt == "" {
			continue
		}
		if prompt == "exit" || prompt == "quit" {
			break
		}

		answer, err := a.Run(context.Background(), prompt)
		if err != nil {
			log.Error(err)
			continue
		}
		fmt.Println(answer)
	}
}

func selectProvider(cfg *config.Config) (provider.ToolCallProvider, error) {
	switch {
	case cfg.OpenAI.APIKey != "":
		return provider.NewOpenAIProvider(cfg.OpenAI.Model), nil
	case cfg.Anthropic.APIKey != "":
		return provider.NewAnthropicProvider(cfg.Anthropic.Model), nil
	default:
		return nil, fmt.Errorf("no LLM provider configured: set OPENAI_API_KEY or ANTHROPIC_API_KEY")
	}
}
