package agent

import (
	"encoding/json"

	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/agent/provider"
	"github.com/openai/openai-go"
)

// Typed argument structs for the six tools. Their reflected schemas are
// what the model sees, so descriptions matter.

type searchFoodsArgs struct {
	Query      string `json:"query" jsonschema_description:"Search keywords for the food database"`
	DataType   string `json:"data_type,omitempty" jsonschema:"enum=Foundation,enum=Branded,enum=Survey (FNDDS),enum=Legacy,enum=Experimental" jsonschema_description:"Optional data source filter"`
	PageSize   int    `json:"page_size,omitempty" jsonschema_description:"Results per page (1-50, default 25)"`
	PageNumber int    `json:"page_number,omitempty" jsonschema_description:"Result page to return, starting at 1"`
}

type foodDetailsArgs struct {
	FoodID int64 `json:"food_id" jsonschema_description:"The FDC ID of the food record"`
}

type foodNutrientsArgs struct {
	FoodID      int64 `json:"food_id" jsonschema_description:"The FDC ID of the food record"`
	NutrientIDs []int `json:"nutrient_ids,omitempty" jsonschema_description:"Optional nutrient numbers to filter by, e.g. 203, 204, 208"`
}

type compareFoodsArgs struct {
	FoodIDs     []int64 `json:"food_ids" jsonschema_description:"FDC IDs of the foods to compare (2-5); output preserves this order"`
	NutrientIDs []int   `json:"nutrient_ids,omitempty" jsonschema_description:"Optional nutrient numbers to restrict the comparison to"`
}

type nutrientReferenceArgs struct {
	NutrientID string `json:"nutrient_id,omitempty" jsonschema_description:"Optional single nutrient number to look up"`
}

type dataTypesArgs struct{}

// ToolDefinitions returns the six nutrition tools in OpenAI function
// format; AnthropicProvider converts them on registration.
func ToolDefinitions() []openai.ChatCompletionToolParam {
	defs := []struct {
		name   string
		desc   string
		params openai.FunctionParameters
	}{
		{"search_foods", "Search for foods in the USDA Food Data Central database.", functionParameters[searchFoodsArgs]()},
		{"get_food_details", "Get detailed nutritional information for a specific food item.", functionParameters[foodDetailsArgs]()},
		{"get_food_nutrients", "Get specific nutrient information for a food item.", functionParameters[foodNutrientsArgs]()},
		{"compare_foods", "Compare nutritional information between multiple foods.", functionParameters[compareFoodsArgs]()},
		{"get_nutrient_reference", "Get reference information for common nutrient IDs.", functionParameters[nutrientReferenceArgs]()},
		{"get_data_types", "Get information about available food data types.", functionParameters[dataTypesArgs]()},
	}

	tools := make([]openai.ChatCompletionToolParam, 0, len(defs))
	for _, def := range defs {
		tools = append(tools, openai.ChatCompletionToolParam{
			Type: openai.F(openai.ChatCompletionToolTypeFunction),
			Function: openai.F(openai.FunctionDefinitionParam{
				Name:        openai.String(def.name),
				Description: openai.String(def.desc),
				Parameters:  openai.F(def.params),
			}),
		})
	}
	return tools
}

func functionParameters[T any]() openai.FunctionParameters {
	data, err := json.Marshal(provider.GenerateSchema[T]())
	if err != nil {
		return openai.FunctionParameters{}
	}

	var params openai.FunctionParameters
	if err := json.Unmarshal(data, &params); err != nil {
		return openai.FunctionParameters{}
	}
	return params
}
