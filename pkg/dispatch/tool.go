package dispatch

// Tool is the closed set of operations the dispatcher routes. Keeping
// it a tagged variant rather than a name lookup makes adding or
// removing a tool a compile-time, exhaustive decision.
type Tool int

const (
	ToolSearchFoods Tool = iota
	ToolGetFoodDetails
	ToolGetFoodNutrients
	ToolCompareFoods
	ToolGetNutrientReference
	ToolGetDataTypes
)

var toolNames = map[Tool]string{
	ToolSearchFoods:          "search_foods",
	ToolGetFoodDetails:       "get_food_details",
	ToolGetFoodNutrients:     "get_food_nutrients",
	ToolCompareFoods:         "compare_foods",
	ToolGetNutrientReference: "get_nutrient_reference",
	ToolGetDataTypes:         "get_data_types",
}

func (t Tool) String() string {
	if name, ok := toolNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseTool resolves a wire-level tool name to its variant. Anything
// outside the six supported tools fails before any upstream activity.
func ParseTool(name string) (Tool, error) {
	for tool, toolName := range toolNames {
		if toolName == name {
			return tool, nil
		}
	}
	return 0, &UnknownToolError{Name: name}
}

// Tools returns all supported tools in registration order.
func Tools() []Tool {
	return []Tool{
		ToolSearchFoods,
		ToolGetFoodDetails,
		ToolGetFoodNutrients,
		ToolCompareFoods,
		ToolGetNutrientReference,
		ToolGetDataTypes,
	}
}
