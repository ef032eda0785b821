// Package tools provides shared helpers for MCP tool implementations
package tools

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// Standard errors for consistent error handling
var (
	ErrInvalidParams    = errors.New("invalid parameters")
	ErrResourceNotFound = errors.New("resource not found")
	ErrExternalAPIError = errors.New("external API error")
	ErrInternalError    = errors.New("internal server error")
)

// NewErrorResult creates a standard error result
func NewErrorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}

// NewTextResult creates a standard text result
func NewTextResult(text string) *mcp.CallToolResult {
	return mcp.NewToolResultText(text)
}

// GetStringArg extracts a string argument from a tool request.
func GetStringArg(req mcp.CallToolRequest, key string) (string, error) {
	val, ok := req.Params.Arguments[key]
	if !ok {
		return "", fmt.Errorf("missing argument: %s", key)
	}

	str, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("argument %s is not a string", key)
	}

	return str, nil
}

// GetFloat64Arg extracts a numeric argument from a tool request.
func GetFloat64Arg(req mcp.CallToolRequest, key string) (float64, error) {
	val, ok := req.Params.Arguments[key]
	if !ok {
		return 0, fmt.Errorf("missing argument: %s", key)
	}

	f, ok := val.(float64)
	if !ok {
		return 0, fmt.Errorf("argument %s is not a number", key)
	}

	return f, nil
}

// ParseIDs parses a comma-separated list of numeric IDs.
func ParseIDs(idsStr string) ([]int64, error) {
	var ids []int64

	for _, idStr := range strings.Split(idsStr, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ID format: %s", idStr)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
