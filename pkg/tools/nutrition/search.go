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

// SearchFoodsTool searches the FoodData Central database by keyword.
type SearchFoodsTool struct {
	dispatcher Invoker
	handle     mcp.Tool
}

// NewSearchFoodsTool creates the search_foods tool.
func NewSearchFoodsTool(dispatcher Invoker) core.Tool {
	t := &SearchFoodsTool{dispatcher: dispatcher}

	t.handle = mcp.NewTool(
		"search_foods",
		mcp.WithDescription("Search for foods in the USDA Food Data Central database."),
		mcp.WithString(
			"query",
			mcp.Required(),
			mcp.Description("Search keywords, e.g. 'raw apple'."),
		),
		mcp.WithString(
			"data_type",
			mcp.Description("Optional. Restrict results to one data source."),
			mcp.Enum(fdc.ValidDataTypes...),
		),
		mcp.WithNumber(
			"page_size",
			mcp.Description("Optional. Number of results per page (1-50, default 25)."),
		),
		mcp.WithNumber(
			"page_number",
			mcp.Description("Optional. Result page to return, starting at 1."),
		),
	)
	return t
}

// Handle returns the tool's definition.
func (t *SearchFoodsTool) Handle() mcp.Tool {
	return t.handle
}

// Handler executes the tool.
func (t *SearchFoodsTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := map[string]any{}
	for _, key := range []string{"query", "data_type", "page_size", "page_number"} {
		if val, ok := request.Params.Arguments[key]; ok {
			args[key] = val
		}
	}

	resp, err := t.dispatcher.Invoke(ctx, dispatch.Request{Tool: "search_foods", Arguments: args})
	if err != nil {
		return errorResult(err), nil
	}

	result, ok := resp.Result.(*fdc.SearchResult)
	if !ok {
		return tools.NewErrorResult(fmt.Errorf("%w: unexpected search result payload", tools.ErrInternalError)), nil
	}

	return tools.NewTextResult(formatSearchResult(result)), nil
}
