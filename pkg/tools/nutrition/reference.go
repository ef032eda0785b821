package nutrition

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/nutribridge/mcp-server-nutrition-bridge/core"
	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/dispatch"
	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/fdc"
	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/tools"
)

// NutrientReferenceTool lists the common nutrient numbers usable as
// filters with the other tools.
type NutrientReferenceTool struct {
	dispatcher Invoker
	handle     mcp.Tool
}

// NewNutrientReferenceTool creates the get_nutrient_reference tool.
func NewNutrientReferenceTool(dispatcher Invoker) core.Tool {
	t := &NutrientReferenceTool{dispatcher: dispatcher}

	t.handle = mcp.NewTool(
		"get_nutrient_reference",
		mcp.WithDescription("Get reference information for common nutrient IDs."),
		mcp.WithString(
			"nutrient_id",
			mcp.Description("Optional. A single nutrient number to look up."),
		),
	)
	return t
}

// Handle returns the tool's definition.
func (t *NutrientReferenceTool) Handle() mcp.Tool {
	return t.handle
}

// Handler executes the tool.
func (t *NutrientReferenceTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := map[string]any{}
	if val, ok := request.Params.Arguments["nutrient_id"]; ok {
		args["nutrient_id"] = val
	}

	resp, err := t.dispatcher.Invoke(ctx, dispatch.Request{Tool: "get_nutrient_reference", Arguments: args})
	if err != nil {
		return errorResult(err), nil
	}

	refs, ok := resp.Result.([]fdc.NutrientRef)
	if !ok {
		return tools.NewErrorResult(fmt.Errorf("%w: unexpected reference payload", tools.ErrInternalError)), nil
	}

	return tools.NewTextResult(formatNutrientReference(refs)), nil
}
