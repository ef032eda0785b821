package fdc

// ValidDataTypes are the data source names FoodData Central accepts as
// search filters.
var ValidDataTypes = []string{"Foundation", "Branded", "Survey (FNDDS)", "Legacy", "Experimental"}

// IsValidDataType reports whether name is a recognized data source.
func IsValidDataType(name string) bool {
	for _, dt := range ValidDataTypes {
		if dt == name {
			return true
		}
	}
	return false
}

// nutrientReference maps common USDA nutrient numbers to names. The
// numbers match the legacy SR nutrient numbering that FoodData Central
// still accepts as filters.
var nutrientReference = []NutrientRef{
	{Number: "203", Name: "Protein"},
	{Number: "204", Name: "Total lipid (fat)"},
	{Number: "205", Name: "Carbohydrate, by difference"},
	{Number: "208", Name: "Energy (kcal)"},
	{Number: "269", Name: "Sugars, total including NLEA"},
	{Number: "291", Name: "Fiber, total dietary"},
	{Number: "301", Name: "Calcium, Ca"},
	{Number: "303", Name: "Iron, Fe"},
	{Number: "304", Name: "Magnesium, Mg"},
	{Number: "305", Name: "Phosphorus, P"},
	{Number: "306", Name: "Potassium, K"},
	{Number: "307", Name: "Sodium, Na"},
	{Number: "309", Name: "Zinc, Zn"},
	{Number: "320", Name: "Vitamin A, RAE"},
	{Number: "323", Name: "Vitamin E (alpha-tocopherol)"},
	{Number: "324", Name: "Vitamin D (D2 + D3)"},
	{Number: "401", Name: "Vitamin C, total ascorbic acid"},
	{Number: "404", Name: "Thiamin (Vitamin B1)"},
	{Number: "405", Name: "Riboflavin (Vitamin B2)"},
	{Number: "406", Name: "Niacin (Vitamin B3)"},
	{Number: "415", Name: "Vitamin B-6"},
	{Number: "417", Name: "Folate, total"},
	{Number: "418", Name: "Vitamin B-12"},
	{Number: "430", Name: "Vitamin K (phylloquinone)"},
}

// dataTypes describes the food data sources FoodData Central publishes.
var dataTypes = []DataTypeInfo{
	{Name: "Foundation", Description: "Comprehensive nutrient data on a diverse set of foods that provide the foundation for other food composition data"},
	{Name: "Branded", Description: "Label data from branded/packaged foods available in the marketplace"},
	{Name: "Survey (FNDDS)", Description: "Foods from the Food and Nutrient Database for Dietary Studies, used in dietary surveys"},
	{Name: "Legacy", Description: "Historical data from the Standard Reference database"},
	{Name: "Experimental", Description: "Foods from research studies and experimental data"},
}
