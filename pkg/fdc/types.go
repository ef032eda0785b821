package fdc

// Nutrient identifies a single nutrient as FoodData Central reports it.
type Nutrient struct {
	ID       int    `json:"id"`
	Number   string `json:"number"`
	Name     string `json:"name"`
	UnitName string `json:"unitName"`
}

// FoodNutrient is one measured nutrient amount on a food record.
type FoodNutrient struct {
	Nutrient Nutrient `json:"nutrient"`
	Amount   float64  `json:"amount"`
}

type FoodCategory struct {
	Description string `json:"description"`
}

// Food is a single FoodData Central food record. Search results carry
// only the summary fields; detail lookups fill in nutrients, category
// and ingredients.
type Food struct {
	FDCID         int64          `json:"fdcId"`
	Description   string         `json:"description"`
	DataType      string         `json:"dataType"`
	BrandOwner    string         `json:"brandOwner,omitempty"`
	Ingredients   string         `json:"ingredients,omitempty"`
	PublishedDate string         `json:"publishedDate,omitempty"`
	FoodCategory  *FoodCategory  `json:"foodCategory,omitempty"`
	FoodNutrients []FoodNutrient `json:"foodNutrients,omitempty"`
}

// SearchRequest is the POST body for /foods/search.
type SearchRequest struct {
	Query      string   `json:"query"`
	DataType   []string `json:"dataType,omitempty"`
	PageSize   int      `json:"pageSize"`
	PageNumber int      `json:"pageNumber"`
}

// SearchResult is the response envelope for /foods/search.
type SearchResult struct {
	TotalHits   int    `json:"totalHits"`
	CurrentPage int    `json:"currentPage"`
	Foods       []Food `json:"foods"`
}

// NutrientRef is one entry of the common-nutrient reference table.
type NutrientRef struct {
	Number string `json:"number"`
	Name   string `json:"name"`
}

// DataTypeInfo describes one of the FoodData Central data sources.
type DataTypeInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
