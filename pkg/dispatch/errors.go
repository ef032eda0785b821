package dispatch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for the dispatcher failure taxonomy. The typed
// errors below all match their sentinel through errors.Is.
var (
	ErrUnknownTool          = errors.New("unknown tool")
	ErrInvalidArguments     = errors.New("invalid arguments")
	ErrUpstreamUnavailable  = errors.New("upstream unavailable")
	ErrUpstreamError        = errors.New("upstream error")
	ErrIncompleteComparison = errors.New("incomplete comparison")
)

// UnknownToolError reports a tool name outside the supported set.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool %q", e.Name)
}

func (e *UnknownToolError) Is(target error) bool { return target == ErrUnknownTool }

// InvalidArgumentsError names the argument that failed validation.
type InvalidArgumentsError struct {
	Tool   string
	Field  string
	Reason string
}

func (e *InvalidArgumentsError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: %s: %s", e.Tool, e.Field, e.Reason)
}

func (e *InvalidArgumentsError) Is(target error) bool { return target == ErrInvalidArguments }

// UpstreamError is a well-formed error reply from FoodData Central.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error: HTTP %d: %s", e.Status, e.Message)
}

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstreamError }

// IncompleteComparisonError lists the requested food IDs the upstream
// returned no record for.
type IncompleteComparisonError struct {
	Missing []int64
}

func (e *IncompleteComparisonError) Error() string {
	parts := make([]string, len(e.Missing))
	for i, id := range e.Missing {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return fmt.Sprintf("incomplete comparison: no results for food IDs %s", strings.Join(parts, ", "))
}

func (e *IncompleteComparisonError) Is(target error) bool { return target == ErrIncompleteComparison }

func invalidArg(tool Tool, field, reason string) error {
	return &InvalidArgumentsError{Tool: tool.String(), Field: field, Reason: reason}
}
