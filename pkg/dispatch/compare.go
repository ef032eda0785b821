package dispatch

import (
	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/fdc"
)

// ComparisonResult is the aggregated outcome of compare_foods. Foods
// are ordered exactly as the caller requested them, regardless of the
// order the upstream returned.
type ComparisonResult struct {
	Order []int64    `json:"order"`
	Foods []fdc.Food `json:"foods"`
}

// reorderComparison re-indexes the upstream results by FDC ID and
// rebuilds them in the requested order. Requested IDs with no matching
// record fail the whole comparison; surplus records for IDs that were
// not requested are dropped.
func reorderComparison(requested []int64, foods []fdc.Food) (*ComparisonResult, error) {
	byID := make(map[int64]fdc.Food, len(foods))
	for _, food := range foods {
		byID[food.FDCID] = food
	}

	result := &ComparisonResult{
		Order: requested,
		Foods: make([]fdc.Food, 0, len(requested)),
	}

	var missing []int64
	for _, id := range requested {
		food, ok := byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		result.Foods = append(result.Foods, food)
	}

	if len(missing) > 0 {
		return nil, &IncompleteComparisonError{Missing: missing}
	}
	return result, nil
}
