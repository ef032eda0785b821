package nutrition

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/nutribridge/mcp-server-nutrition-bridge/core"
	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/dispatch"
	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/tools"
)

// CompareFoodsTool compares nutrient amounts across several foods. The
// output preserves the order the foods were requested in.
type CompareFoodsTool struct {
	dispatcher Invoker
	handle     mcp.Tool
}

// NewCompareFoodsTool creates the compare_foods tool.
func NewCompareFoodsTool(dispatcher Invoker) core.Tool {
	t := &CompareFoodsTool{dispatcher: dispatcher}

	t.handle = mcp.NewTool(
		"compare_foods",
		mcp.WithDescription("Compare nutritional information between multiple foods (2-5 at a time)."),
		mcp.WithString(
			"food_ids",
			mcp.Required(),
			mcp.Description("Comma-separated FDC IDs, e.g. '123456,789012'. Order is preserved in the output."),
		),
		mcp.WithString(
			"nutrient_ids",
			mcp.Description("Optional. Comma-separated nutrient numbers to restrict the comparison to."),
		),
	)
	return t
}

// Handle returns the tool's definition.
func (t *CompareFoodsTool) Handle() mcp.Tool {
	return t.handle
}

// Handler executes the tool.
func (t *CompareFoodsTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawIDs, err := tools.GetStringArg(request, "food_ids")
	if err != nil {
		return tools.NewErrorResult(fmt.Errorf("%w: %v", tools.ErrInvalidParams, err)), nil
	}

	foodIDs, err := tools.ParseIDs(rawIDs)
	if err != nil {
		return tools.NewErrorResult(fmt.Errorf("%w: food_ids must be comma-separated numbers (e.g., '123456,789012')", tools.ErrInvalidParams)), nil
	}

	args := map[string]any{"food_ids": foodIDs}

	if raw, err := tools.GetStringArg(request, "nutrient_ids"); err == nil && strings.TrimSpace(raw) != "" {
		ids, err := tools.ParseIDs(raw)
		if err != nil {
			return tools.NewErrorResult(fmt.Errorf("%w: nutrient_ids must be comma-separated numbers", tools.ErrInvalidParams)), nil
		}
		args["nutrient_ids"] = ids
	}

	resp, err := t.dispatcher.Invoke(ctx, dispatch.Request{Tool: "compare_foods", Arguments: args})
	if err != nil {
		return errorResult(err), nil
	}

	comparison, ok := resp.Result.(*dispatch.ComparisonResult)
	if !ok {
		return tools.NewErrorResult(fmt.Errorf("%w: unexpected comparison payload", tools.ErrInternalError)), nil
	}

	return tools.NewTextResult(formatComparison(comparison)), nil
}
