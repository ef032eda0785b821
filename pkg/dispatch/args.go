package dispatch

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/fdc"
)

func (d *Dispatcher) parseSearchArgs(args map[string]any) (fdc.SearchRequest, error) {
	req := fdc.SearchRequest{PageSize: 25, PageNumber: 1}

	query, ok := stringValue(args["query"])
	if !ok {
		return req, invalidArg(ToolSearchFoods, "query", "required and must be a string")
	}
	if strings.TrimSpace(query) == "" {
		return req, invalidArg(ToolSearchFoods, "query", "must not be empty")
	}
	req.Query = query

	if raw, present := args["data_type"]; present && raw != nil {
		dataType, ok := stringValue(raw)
		if !ok {
			return req, invalidArg(ToolSearchFoods, "data_type", "must be a string")
		}
		if !fdc.IsValidDataType(dataType) {
			return req, invalidArg(ToolSearchFoods, "data_type",
				fmt.Sprintf("must be one of: %s", strings.Join(fdc.ValidDataTypes, ", ")))
		}
		req.DataType = []string{dataType}
	}

	if raw, present := args["page_size"]; present && raw != nil {
		pageSize, ok := intValue(raw)
		if !ok || pageSize < 1 {
			return req, invalidArg(ToolSearchFoods, "page_size", "must be a positive integer")
		}
		// FoodData Central rejects oversized pages; clamp instead.
		if pageSize > d.limits.MaxPageSize {
			pageSize = d.limits.MaxPageSize
		}
		req.PageSize = pageSize
	}

	if raw, present := args["page_number"]; present && raw != nil {
		pageNumber, ok := intValue(raw)
		if !ok || pageNumber < 1 {
			return req, invalidArg(ToolSearchFoods, "page_number", "must be a positive integer")
		}
		req.PageNumber = pageNumber
	}

	return req, nil
}

func requireFoodID(tool Tool, args map[string]any) (int64, error) {
	raw, present := args["food_id"]
	if !present || raw == nil {
		return 0, invalidArg(tool, "food_id", "required")
	}
	id, ok := int64Value(raw)
	if !ok || id <= 0 {
		return 0, invalidArg(tool, "food_id", "must be a positive integer")
	}
	return id, nil
}

func (d *Dispatcher) parseCompareIDs(args map[string]any) ([]int64, error) {
	raw, present := args["food_ids"]
	if !present || raw == nil {
		return nil, invalidArg(ToolCompareFoods, "food_ids", "required")
	}

	ids, ok := int64Slice(raw)
	if !ok {
		return nil, invalidArg(ToolCompareFoods, "food_ids", "must be a list of positive integers")
	}
	if len(ids) < 2 {
		return nil, invalidArg(ToolCompareFoods, "food_ids", "at least two food IDs are required")
	}
	if len(ids) > d.limits.MaxCompareFoods {
		return nil, invalidArg(ToolCompareFoods, "food_ids",
			fmt.Sprintf("at most %d foods can be compared at once", d.limits.MaxCompareFoods))
	}
	for _, id := range ids {
		if id <= 0 {
			return nil, invalidArg(ToolCompareFoods, "food_ids", "must be a list of positive integers")
		}
	}
	return ids, nil
}

func optionalNutrientIDs(tool Tool, args map[string]any) ([]int, error) {
	raw, present := args["nutrient_ids"]
	if !present || raw == nil {
		return nil, nil
	}

	ids64, ok := int64Slice(raw)
	if !ok {
		return nil, invalidArg(tool, "nutrient_ids", "must be a list of positive integers")
	}
	ids := make([]int, len(ids64))
	for i, id := range ids64 {
		if id <= 0 {
			return nil, invalidArg(tool, "nutrient_ids", "must be a list of positive integers")
		}
		ids[i] = int(id)
	}
	return ids, nil
}

func optionalNutrientNumber(tool Tool, args map[string]any) (string, error) {
	raw, present := args["nutrient_id"]
	if !present || raw == nil {
		return "", nil
	}
	if id, ok := int64Value(raw); ok && id > 0 {
		return strconv.FormatInt(id, 10), nil
	}
	if s, ok := stringValue(raw); ok && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s), nil
	}
	return "", invalidArg(tool, "nutrient_id", "must be a nutrient number")
}

// Argument maps arrive either from JSON decoding (float64, []any) or
// from Go callers (int, int64, typed slices); accept both.

func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func intValue(v any) (int, bool) {
	id, ok := int64Value(v)
	if !ok || id > math.MaxInt32 {
		return 0, false
	}
	return int(id), true
}

func int64Value(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case string:
		id, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}

func int64Slice(v any) ([]int64, bool) {
	switch list := v.(type) {
	case []int64:
		return list, true
	case []int:
		out := make([]int64, len(list))
		for i, n := range list {
			out[i] = int64(n)
		}
		return out, true
	case []any:
		out := make([]int64, len(list))
		for i, item := range list {
			id, ok := int64Value(item)
			if !ok {
				return nil, false
			}
			out[i] = id
		}
		return out, true
	default:
		return nil, false
	}
}
