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

// DataTypesTool describes the available food data sources.
type DataTypesTool struct {
	dispatcher Invoker
	handle     mcp.Tool
}

// NewDataTypesTool creates the get_data_types tool.
func NewDataTypesTool(dispatcher Invoker) core.Tool {
	t := &DataTypesTool{dispatcher: dispatcher}

	t.handle = mcp.NewTool(
		"get_data_types",
		mcp.WithDescription("Get information about available food data types."),
	)
	return t
}

// Handle returns the tool's definition.
func (t *DataTypesTool) Handle() mcp.Tool {
	return t.handle
}

// Handler executes the tool.
func (t *DataTypesTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, err := t.dispatcher.Invoke(ctx, dispatch.Request{Tool: "get_data_types", Arguments: map[string]any{}})
	if err != nil {
		return errorResult(err), nil
	}

	types, ok := resp.Result.([]fdc.DataTypeInfo)
	if !ok {
		return tools.NewErrorResult(fmt.Errorf("%w: unexpected data type payload", tools.ErrInternalError)), nil
	}

	return tools.NewTextResult(formatDataTypes(types)), nil
}
