// Package nutrition exposes the USDA FoodData Central tools over MCP.
// Each tool is a thin adapter: it extracts wire arguments, hands them
// to the dispatcher, and renders the structured result as text.
package nutrition

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/nutribridge/mcp-server-nutrition-bridge/core"
	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/dispatch"
	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/tools"
)

// Invoker is the slice of the dispatcher the tools need. Tests stub it.
type Invoker interface {
	Invoke(ctx context.Context, req dispatch.Request) (*dispatch.Response, error)
}

// RegisterAll returns the six nutrition tools bound to the dispatcher.
func RegisterAll(dispatcher Invoker) []core.Tool {
	return []core.Tool{
		NewSearchFoodsTool(dispatcher),
		NewFoodDetailsTool(dispatcher),
		NewFoodNutrientsTool(dispatcher),
		NewCompareFoodsTool(dispatcher),
		NewNutrientReferenceTool(dispatcher),
		NewDataTypesTool(dispatcher),
	}
}

// errorResult maps dispatcher failures onto the shared tool errors so
// MCP clients can distinguish missing records and upstream outages
// from bad input.
func errorResult(err error) *mcp.CallToolResult {
	var upstreamErr *dispatch.UpstreamError
	switch {
	case errors.As(err, &upstreamErr) && upstreamErr.Status == http.StatusNotFound:
		return tools.NewErrorResult(fmt.Errorf("%w: %v", tools.ErrResourceNotFound, err))
	case errors.Is(err, dispatch.ErrUpstreamError), errors.Is(err, dispatch.ErrUpstreamUnavailable):
		return tools.NewErrorResult(fmt.Errorf("%w: %v", tools.ErrExternalAPIError, err))
	default:
		return tools.NewErrorResult(err)
	}
}
