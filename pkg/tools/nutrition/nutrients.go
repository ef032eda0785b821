package nutrition

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/nutribridge/mcp-server-nutrition-bridge/core"
	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/dispatch"
	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/fdc"
	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/tools"
)

// FoodNutrientsTool fetches nutrient amounts for a single food,
// optionally narrowed to a set of nutrient numbers.
type FoodNutrientsTool struct {
	dispatcher Invoker
	handle     mcp.Tool
}

// NewFoodNutrientsTool creates the get_food_nutrients tool.
func NewFoodNutrientsTool(dispatcher Invoker) core.Tool {
	t := &FoodNutrientsTool{dispatcher: dispatcher}

	t.handle = mcp.NewTool(
		"get_food_nutrients",
		mcp.WithDescription("Get specific nutrient information for a food item."),
		mcp.WithNumber(
			"food_id",
			mcp.Required(),
			mcp.Description("The FDC ID of the food record."),
		),
		mcp.WithString(
			"nutrient_ids",
			mcp.Description("Optional. Comma-separated nutrient numbers to filter by, e.g. '203,204,208'."),
		),
	)
	return t
}

// Handle returns the tool's definition.
func (t *FoodNutrientsTool) Handle() mcp.Tool {
	return t.handle
}

// Handler executes the tool.
func (t *FoodNutrientsTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	foodID, err := tools.GetFloat64Arg(request, "food_id")
	if err != nil {
		return tools.NewErrorResult(fmt.Errorf("%w: %v", tools.ErrInvalidParams, err)), nil
	}

	args := map[string]any{"food_id": foodID}

	if raw, err := tools.GetStringArg(request, "nutrient_ids"); err == nil && strings.TrimSpace(raw) != "" {
		ids, err := tools.ParseIDs(raw)
		if err != nil {
			return tools.NewErrorResult(fmt.Errorf("%w: nutrient_ids must be comma-separated numbers (e.g., '203,204,208')", tools.ErrInvalidParams)), nil
		}
		args["nutrient_ids"] = ids
	}

	resp, err := t.dispatcher.Invoke(ctx, dispatch.Request{Tool: "get_food_nutrients", Arguments: args})
	if err != nil {
		return errorResult(err), nil
	}

	food, ok := resp.Result.(*fdc.Food)
	if !ok {
		return tools.NewErrorResult(fmt.Errorf("%w: unexpected food payload", tools.ErrInternalError)), nil
	}

	return tools.NewTextResult(formatFoodNutrients(food)), nil
}
