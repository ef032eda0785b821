// Package dispatch routes tool invocations to the FoodData Central
// upstream. The dispatcher is stateless: every Invoke validates its
// request locally, makes at most one upstream call, and returns a
// structured result or a typed failure.
package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/fdc"
)

// Collaborator is the boundary to the nutrition-data upstream. It is
// satisfied by *fdc.Client; tests substitute counting stubs.
type Collaborator interface {
	SearchFoods(ctx context.Context, req fdc.SearchRequest) (*fdc.SearchResult, error)
	GetFood(ctx context.Context, fdcID int64, nutrientIDs []int) (*fdc.Food, error)
	GetFoods(ctx context.Context, fdcIDs []int64, nutrientIDs []int) ([]fdc.Food, error)
	NutrientReference(ctx context.Context) ([]fdc.NutrientRef, error)
	DataTypes(ctx context.Context) ([]fdc.DataTypeInfo, error)
}

// Request is a single tool invocation. Arguments use the wire-level
// parameter names of the tool contract.
type Request struct {
	Tool      string
	Arguments map[string]any
}

// Response carries the result of a successful invocation. It lives for
// one request/response cycle and is never persisted.
type Response struct {
	Tool   string
	Result any
}

// Limits bound caller-supplied sizes during validation.
type Limits struct {
	MaxPageSize     int
	MaxCompareFoods int
}

// DefaultLimits match the bounds FoodData Central itself enforces.
var DefaultLimits = Limits{MaxPageSize: 50, MaxCompareFoods: 5}

// Dispatcher validates tool requests and forwards them upstream.
type Dispatcher struct {
	upstream Collaborator
	limits   Limits
}

// New creates a dispatcher with DefaultLimits.
func New(upstream Collaborator) *Dispatcher {
	return NewWithLimits(upstream, DefaultLimits)
}

// NewWithLimits creates a dispatcher with explicit validation bounds.
func NewWithLimits(upstream Collaborator, limits Limits) *Dispatcher {
	if limits.MaxPageSize <= 0 {
		limits.MaxPageSize = DefaultLimits.MaxPageSize
	}
	if limits.MaxCompareFoods < 2 {
		limits.MaxCompareFoods = DefaultLimits.MaxCompareFoods
	}
	return &Dispatcher{upstream: upstream, limits: limits}
}

// Invoke validates the request and performs exactly one upstream call.
// Validation failures (unknown tool, bad arguments) are reported before
// any upstream activity and never retried.
func (d *Dispatcher) Invoke(ctx context.Context, req Request) (*Response, error) {
	tool, err := ParseTool(req.Tool)
	if err != nil {
		return nil, err
	}

	var result any

	switch tool {
	case ToolSearchFoods:
		searchReq, err := d.parseSearchArgs(req.Arguments)
		if err != nil {
			return nil, err
		}
		res, err := d.upstream.SearchFoods(ctx, searchReq)
		if err != nil {
			return nil, classifyUpstream(err)
		}
		result = res

	case ToolGetFoodDetails:
		foodID, err := requireFoodID(tool, req.Arguments)
		if err != nil {
			return nil, err
		}
		food, err := d.upstream.GetFood(ctx, foodID, nil)
		if err != nil {
			return nil, classifyUpstream(err)
		}
		result = food

	case ToolGetFoodNutrients:
		foodID, err := requireFoodID(tool, req.Arguments)
		if err != nil {
			return nil, err
		}
		nutrientIDs, err := optionalNutrientIDs(tool, req.Arguments)
		if err != nil {
			return nil, err
		}
		food, err := d.upstream.GetFood(ctx, foodID, nutrientIDs)
		if err != nil {
			return nil, classifyUpstream(err)
		}
		result = food

	case ToolCompareFoods:
		foodIDs, err := d.parseCompareIDs(req.Arguments)
		if err != nil {
			return nil, err
		}
		nutrientIDs, err := optionalNutrientIDs(tool, req.Arguments)
		if err != nil {
			return nil, err
		}
		foods, err := d.upstream.GetFoods(ctx, foodIDs, nutrientIDs)
		if err != nil {
			return nil, classifyUpstream(err)
		}
		comparison, err := reorderComparison(foodIDs, foods)
		if err != nil {
			return nil, err
		}
		result = comparison

	case ToolGetNutrientReference:
		number, err := optionalNutrientNumber(tool, req.Arguments)
		if err != nil {
			return nil, err
		}
		refs, err := d.upstream.NutrientReference(ctx)
		if err != nil {
			return nil, classifyUpstream(err)
		}
		if number != "" {
			refs = filterReference(refs, number)
		}
		result = refs

	case ToolGetDataTypes:
		types, err := d.upstream.DataTypes(ctx)
		if err != nil {
			return nil, classifyUpstream(err)
		}
		result = types

	default:
		// Unreachable: ParseTool only yields the variants above.
		return nil, &UnknownToolError{Name: req.Tool}
	}

	return &Response{Tool: tool.String(), Result: result}, nil
}

// classifyUpstream maps collaborator failures onto the error taxonomy:
// a well-formed FoodData Central error reply is an upstream error,
// anything else (transport failure, timeout, cancellation) means the
// upstream was unavailable.
func classifyUpstream(err error) error {
	var statusErr *fdc.StatusError
	if errors.As(err, &statusErr) {
		return &UpstreamError{Status: statusErr.Code, Message: statusErr.Body}
	}
	return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
}

func filterReference(refs []fdc.NutrientRef, number string) []fdc.NutrientRef {
	filtered := make([]fdc.NutrientRef, 0, 1)
	for _, ref := range refs {
		if ref.Number == number {
			filtered = append(filtered, ref)
		}
	}
	return filtered
}
