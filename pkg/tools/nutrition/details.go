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

// FoodDetailsTool fetches the full record for a single food.
type FoodDetailsTool struct {
	dispatcher Invoker
	handle     mcp.Tool
}

// NewFoodDetailsTool creates the get_food_details tool.
func NewFoodDetailsTool(dispatcher Invoker) core.Tool {
	t := &FoodDetailsTool{dispatcher: dispatcher}

	t.handle = mcp.NewTool(
		"get_food_details",
		mcp.WithDescription("Get detailed nutritional information for a specific food item."),
		mcp.WithNumber(
			"food_id",
			mcp.Required(),
			mcp.Description("The FDC ID of the food record."),
		),
	)
	return t
}

// Handle returns the tool's definition.
func (t *FoodDetailsTool) Handle() mcp.Tool {
	return t.handle
}

// Handler executes the tool.
func (t *FoodDetailsTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	foodID, err := tools.GetFloat64Arg(request, "food_id")
	if err != nil {
		return tools.NewErrorResult(fmt.Errorf("%w: %v", tools.ErrInvalidParams, err)), nil
	}

	args := map[string]any{"food_id": foodID}

	resp, err := t.dispatcher.Invoke(ctx, dispatch.Request{Tool: "get_food_details", Arguments: args})
	if err != nil {
		return errorResult(err), nil
	}

	food, ok := resp.Result.(*fdc.Food)
	if !ok {
		return tools.NewErrorResult(fmt.Errorf("%w: unexpected food payload", tools.ErrInternalError)), nil
	}

	return tools.NewTextResult(formatFoodDetails(food)), nil
}
