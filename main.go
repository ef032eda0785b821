package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/server"
	"github.com/nutribridge/mcp-server-nutrition-bridge/core"
	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/config"
	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/dispatch"
	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/fdc"
	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/tools/nutrition"
)

// MultiTool manages all available tools
type MultiTool struct {
	tools map[string]core.Tool
}

func (mt *MultiTool) addTool(tool core.Tool) {
	mt.tools[tool.Handle().Name] = tool
	mcpServer.AddTool(tool.Handle(), tool.Handler)
}

var (
	mcpServer *server.MCPServer
	multiTool MultiTool
)

func init() {
	mcpServer = server.NewMCPServer(
		"USDA Nutrition MCP Server",
		"1.0.0",
		server.WithResourceCapabilities(false, false),
		server.WithLogging(),
	)

	multiTool = MultiTool{
		tools: make(map[string]core.Tool),
	}
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(&logWriter{})

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Printf("Configuration warning: %v", err)
	}

	client := fdc.New(cfg.FDC.BaseURL, cfg.FDC.APIKey, cfg.FDC.RequestTimeout)
	dispatcher := dispatch.NewWithLimits(client, dispatch.Limits{
		MaxPageSize:     cfg.FDC.MaxPageSize,
		MaxCompareFoods: cfg.FDC.MaxCompareFoods,
	})

	for _, tool := range nutrition.RegisterAll(dispatcher) {
		multiTool.addTool(tool)
	}

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("Server error: %v\n", err)
	}
}

type logWriter struct{}

func (w *logWriter) Write(bytes []byte) (int, error) {
	// Skip logging "Prompts not supported" errors
	if strings.Contains(string(bytes), "Prompts not supported") {
		return len(bytes), nil
	}
	return fmt.Print(string(bytes))
}
