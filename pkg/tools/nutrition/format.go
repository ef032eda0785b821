package nutrition

import (
	"fmt"
	"strings"

	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/dispatch"
	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/fdc"
)

const (
	maxSearchResultsShown = 10
	maxDetailNutrients    = 10
	maxCompareNutrients   = 8
)

func formatFoodSummary(food fdc.Food) string {
	brand := "Generic"
	if food.BrandOwner != "" {
		brand = food.BrandOwner
	}
	published := food.PublishedDate
	if published == "" {
		published = "N/A"
	}
	return fmt.Sprintf("Food: %s\nFDC ID: %d\nData Type: %s\nBrand: %s\nPublished: %s",
		food.Description, food.FDCID, food.DataType, brand, published)
}

func formatSearchResult(result *fdc.SearchResult) string {
	if len(result.Foods) == 0 {
		return "No foods found for your search query."
	}

	total := result.TotalHits
	if total == 0 {
		total = len(result.Foods)
	}

	shown := result.Foods
	if len(shown) > maxSearchResultsShown {
		shown = shown[:maxSearchResultsShown]
	}

	summaries := make([]string, len(shown))
	for i, food := range shown {
		summaries[i] = formatFoodSummary(food)
	}

	var out strings.Builder
	fmt.Fprintf(&out, "Found %d foods. Showing top %d results:\n\n", total, len(shown))
	out.WriteString(strings.Join(summaries, "\n---\n"))

	if total > len(shown) {
		fmt.Fprintf(&out, "\n\n... and %d more results.", total-len(shown))
	}
	return out.String()
}

func formatFoodDetails(food *fdc.Food) string {
	var out strings.Builder

	category := "N/A"
	if food.FoodCategory != nil && food.FoodCategory.Description != "" {
		category = food.FoodCategory.Description
	}

	fmt.Fprintf(&out, "Food: %s\nFDC ID: %d\nData Type: %s\nCategory: %s\n",
		food.Description, food.FDCID, food.DataType, category)

	if food.BrandOwner != "" {
		fmt.Fprintf(&out, "Brand: %s\n", food.BrandOwner)
	}
	if food.Ingredients != "" {
		fmt.Fprintf(&out, "Ingredients: %s\n", food.Ingredients)
	}

	if len(food.FoodNutrients) > 0 {
		out.WriteString("\nNutritional Information (per 100g):\n")
		writeNutrients(&out, food.FoodNutrients, maxDetailNutrients, "  ")
	}

	return out.String()
}

func formatFoodNutrients(food *fdc.Food) string {
	var out strings.Builder
	fmt.Fprintf(&out, "Nutrient information for %s (FDC ID: %d):\n\n", food.Description, food.FDCID)

	if len(food.FoodNutrients) == 0 {
		out.WriteString("No nutrient data available.")
		return out.String()
	}

	writeNutrients(&out, food.FoodNutrients, len(food.FoodNutrients), "")
	return out.String()
}

func formatComparison(result *dispatch.ComparisonResult) string {
	var out strings.Builder
	out.WriteString("Food Comparison:\n\n")

	for _, food := range result.Foods {
		fmt.Fprintf(&out, "=== %s (ID: %d) ===\n", food.Description, food.FDCID)
		writeNutrients(&out, food.FoodNutrients, maxCompareNutrients, "  ")
		out.WriteString("\n")
	}

	return out.String()
}

func formatNutrientReference(refs []fdc.NutrientRef) string {
	if len(refs) == 0 {
		return "No matching nutrient found in the reference table."
	}

	var out strings.Builder
	out.WriteString("Common Nutrient IDs for filtering:\n\n")
	for _, ref := range refs {
		fmt.Fprintf(&out, "%s: %s\n", ref.Number, ref.Name)
	}
	out.WriteString("\nUsage: Use these IDs with get_food_nutrients or compare_foods")
	out.WriteString("\nExample: get_food_nutrients(food_id=123456, nutrient_ids='203,204,208')")
	return out.String()
}

func formatDataTypes(types []fdc.DataTypeInfo) string {
	var out strings.Builder
	out.WriteString("Available Food Data Types:\n\n")
	for _, dt := range types {
		fmt.Fprintf(&out, "%s:\n  %s\n\n", dt.Name, dt.Description)
	}
	out.WriteString("Usage: Use these data type names with search_foods")
	out.WriteString("\nExample: search_foods(query='apple', data_type='Foundation')")
	return out.String()
}

// writeNutrients prints up to limit nutrients with a non-zero amount.
func writeNutrients(out *strings.Builder, nutrients []fdc.FoodNutrient, limit int, indent string) {
	written := 0
	for _, n := range nutrients {
		if written >= limit {
			break
		}
		if n.Amount <= 0 {
			continue
		}
		fmt.Fprintf(out, "%s%s: %g %s\n", indent, n.Nutrient.Name, n.Amount, n.Nutrient.UnitName)
		written++
	}
}
