package nutrition

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/nutribridge/mcp-server-nutrition-bridge/core"
	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/dispatch"
	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/fdc"
)

// stubInvoker records the request the tool built and replies with a
// canned response.
type stubInvoker struct {
	lastReq dispatch.Request
	calls   int
	resp    *dispatch.Response
	err     error
}

func (s *stubInvoker) Invoke(ctx context.Context, req dispatch.Request) (*dispatch.Response, error) {
	s.lastReq = req
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: struct {
			Name      string         `json:"name"`
			Arguments map[string]any `json:"arguments,omitempty"`
			Meta      *struct {
				ProgressToken mcp.ProgressToken `json:"progressToken,omitempty"`
			} `json:"_meta,omitempty"`
		}{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	switch content := result.Content[0].(type) {
	case mcp.TextContent:
		return content.Text
	case string:
		return content
	}
	return ""
}

func TestRegisterAll(t *testing.T) {
	Convey("Given the full nutrition tool set", t, func() {
		toolSet := RegisterAll(&stubInvoker{})

		Convey("All six tools are present with their wire names", func() {
			So(toolSet, ShouldHaveLength, 6)

			names := make([]string, len(toolSet))
			for i, tool := range toolSet {
				So(tool, ShouldImplement, (*core.Tool)(nil))
				names[i] = tool.Handle().Name
			}

			So(names, ShouldResemble, []string{
				"search_foods",
				"get_food_details",
				"get_food_nutrients",
				"compare_foods",
				"get_nutrient_reference",
				"get_data_types",
			})
		})

		Convey("Tool schemas declare the documented parameters", func() {
			byName := map[string]mcp.Tool{}
			for _, tool := range toolSet {
				byName[tool.Handle().Name] = tool.Handle()
			}

			So(len(byName["search_foods"].InputSchema.Properties), ShouldEqual, 4)
			So(byName["search_foods"].InputSchema.Required, ShouldContain, "query")
			So(len(byName["compare_foods"].InputSchema.Properties), ShouldEqual, 2)
			So(byName["compare_foods"].InputSchema.Required, ShouldContain, "food_ids")
			So(byName["get_food_details"].InputSchema.Required, ShouldContain, "food_id")
			So(len(byName["get_data_types"].InputSchema.Properties), ShouldEqual, 0)
		})
	})
}

func TestSearchFoodsTool(t *testing.T) {
	Convey("Given the search_foods tool over a stub dispatcher", t, func() {
		stub := &stubInvoker{
			resp: &dispatch.Response{
				Tool: "search_foods",
				Result: &fdc.SearchResult{
					TotalHits: 1,
					Foods:     []fdc.Food{{FDCID: 1, Description: "Apple, raw", DataType: "Foundation"}},
				},
			},
		}
		tool := NewSearchFoodsTool(stub)

		Convey("A search renders the matching foods", func() {
			result, err := tool.Handler(context.Background(), callRequest("search_foods", map[string]any{
				"query": "apple",
			}))

			So(err, ShouldBeNil)
			So(stub.calls, ShouldEqual, 1)
			So(stub.lastReq.Tool, ShouldEqual, "search_foods")
			So(stub.lastReq.Arguments["query"], ShouldEqual, "apple")

			text := resultText(result)
			So(text, ShouldContainSubstring, "Found 1 foods")
			So(text, ShouldContainSubstring, "Apple, raw")
			So(text, ShouldContainSubstring, "FDC ID: 1")
		})

		Convey("Dispatcher failures become error results, not handler errors", func() {
			stub.err = &dispatch.InvalidArgumentsError{Tool: "search_foods", Field: "query", Reason: "must not be empty"}

			result, err := tool.Handler(context.Background(), callRequest("search_foods", map[string]any{
				"query": "",
			}))

			So(err, ShouldBeNil)
			So(result.IsError, ShouldBeTrue)
			So(resultText(result), ShouldContainSubstring, "query")
		})
	})
}

func TestCompareFoodsTool(t *testing.T) {
	Convey("Given the compare_foods tool over a stub dispatcher", t, func() {
		stub := &stubInvoker{
			resp: &dispatch.Response{
				Tool: "compare_foods",
				Result: &dispatch.ComparisonResult{
					Order: []int64{2, 1},
					Foods: []fdc.Food{
						{FDCID: 2, Description: "Banana", FoodNutrients: []fdc.FoodNutrient{
							{Nutrient: fdc.Nutrient{Name: "Protein", UnitName: "g"}, Amount: 1.1},
						}},
						{FDCID: 1, Description: "Apple"},
					},
				},
			},
		}
		tool := NewCompareFoodsTool(stub)

		Convey("Comma-separated IDs are parsed in order", func() {
			result, err := tool.Handler(context.Background(), callRequest("compare_foods", map[string]any{
				"food_ids": "2, 1",
			}))

			So(err, ShouldBeNil)
			So(stub.lastReq.Arguments["food_ids"], ShouldResemble, []int64{2, 1})

			text := resultText(result)
			So(text, ShouldContainSubstring, "Food Comparison:")
			So(text, ShouldContainSubstring, "=== Banana (ID: 2) ===")
			So(text, ShouldContainSubstring, "Protein: 1.1 g")
		})

		Convey("Malformed ID lists are rejected before dispatch", func() {
			result, err := tool.Handler(context.Background(), callRequest("compare_foods", map[string]any{
				"food_ids": "1,banana",
			}))

			So(err, ShouldBeNil)
			So(result.IsError, ShouldBeTrue)
			So(stub.calls, ShouldEqual, 0)
		})
	})
}

func TestFoodDetailsTool(t *testing.T) {
	Convey("Given the get_food_details tool over a stub dispatcher", t, func() {
		stub := &stubInvoker{
			resp: &dispatch.Response{
				Tool: "get_food_details",
				Result: &fdc.Food{
					FDCID:       123456,
					Description: "Cheddar cheese",
					DataType:    "Foundation",
				},
			},
		}
		tool := NewFoodDetailsTool(stub)

		Convey("A numeric food_id reaches the dispatcher", func() {
			result, err := tool.Handler(context.Background(), callRequest("get_food_details", map[string]any{
				"food_id": float64(123456),
			}))

			So(err, ShouldBeNil)
			So(stub.calls, ShouldEqual, 1)
			So(stub.lastReq.Arguments["food_id"], ShouldEqual, float64(123456))
			So(resultText(result), ShouldContainSubstring, "Cheddar cheese")
		})

		Convey("A missing food_id is rejected before dispatch", func() {
			result, err := tool.Handler(context.Background(), callRequest("get_food_details", map[string]any{}))

			So(err, ShouldBeNil)
			So(result.IsError, ShouldBeTrue)
			So(stub.calls, ShouldEqual, 0)
			So(resultText(result), ShouldContainSubstring, "invalid parameters")
		})

		Convey("A non-numeric food_id is rejected before dispatch", func() {
			result, err := tool.Handler(context.Background(), callRequest("get_food_details", map[string]any{
				"food_id": "cheese",
			}))

			So(err, ShouldBeNil)
			So(result.IsError, ShouldBeTrue)
			So(stub.calls, ShouldEqual, 0)
		})

		Convey("An upstream 404 reads as a missing resource", func() {
			stub.err = &dispatch.UpstreamError{Status: http.StatusNotFound, Message: "food not found"}

			result, err := tool.Handler(context.Background(), callRequest("get_food_details", map[string]any{
				"food_id": float64(999999),
			}))

			So(err, ShouldBeNil)
			So(result.IsError, ShouldBeTrue)
			So(resultText(result), ShouldContainSubstring, "resource not found")
		})

		Convey("Other upstream failures read as external API errors", func() {
			stub.err = &dispatch.UpstreamError{Status: http.StatusTooManyRequests, Message: "rate limited"}

			result, err := tool.Handler(context.Background(), callRequest("get_food_details", map[string]any{
				"food_id": float64(123456),
			}))

			So(err, ShouldBeNil)
			So(result.IsError, ShouldBeTrue)
			So(resultText(result), ShouldContainSubstring, "external API error")
		})

		Convey("Unreachable upstreams read as external API errors too", func() {
			stub.err = fmt.Errorf("%w: dial tcp: connection refused", dispatch.ErrUpstreamUnavailable)

			result, err := tool.Handler(context.Background(), callRequest("get_food_details", map[string]any{
				"food_id": float64(123456),
			}))

			So(err, ShouldBeNil)
			So(result.IsError, ShouldBeTrue)
			So(resultText(result), ShouldContainSubstring, "external API error")
		})
	})
}

func TestFoodNutrientsTool(t *testing.T) {
	Convey("Given the get_food_nutrients tool over a stub dispatcher", t, func() {
		stub := &stubInvoker{
			resp: &dispatch.Response{
				Tool: "get_food_nutrients",
				Result: &fdc.Food{
					FDCID:       123456,
					Description: "Cheddar cheese",
					FoodNutrients: []fdc.FoodNutrient{
						{Nutrient: fdc.Nutrient{Name: "Protein", UnitName: "g"}, Amount: 24.9},
					},
				},
			},
		}
		tool := NewFoodNutrientsTool(stub)

		Convey("The nutrient filter is parsed from the comma list", func() {
			result, err := tool.Handler(context.Background(), callRequest("get_food_nutrients", map[string]any{
				"food_id":      float64(123456),
				"nutrient_ids": "203, 204",
			}))

			So(err, ShouldBeNil)
			So(stub.lastReq.Arguments["nutrient_ids"], ShouldResemble, []int64{203, 204})
			So(resultText(result), ShouldContainSubstring, "Cheddar cheese")
			So(resultText(result), ShouldContainSubstring, "Protein: 24.9 g")
		})

		Convey("A malformed nutrient list is rejected before dispatch", func() {
			result, err := tool.Handler(context.Background(), callRequest("get_food_nutrients", map[string]any{
				"food_id":      float64(123456),
				"nutrient_ids": "protein",
			}))

			So(err, ShouldBeNil)
			So(result.IsError, ShouldBeTrue)
			So(stub.calls, ShouldEqual, 0)
		})
	})
}

func TestReferenceTools(t *testing.T) {
	Convey("Given the reference tools over a stub dispatcher", t, func() {
		Convey("get_nutrient_reference renders the lookup table", func() {
			stub := &stubInvoker{
				resp: &dispatch.Response{
					Tool:   "get_nutrient_reference",
					Result: []fdc.NutrientRef{{Number: "203", Name: "Protein"}},
				},
			}
			tool := NewNutrientReferenceTool(stub)

			result, err := tool.Handler(context.Background(), callRequest("get_nutrient_reference", map[string]any{}))

			So(err, ShouldBeNil)
			So(resultText(result), ShouldContainSubstring, "203: Protein")
		})

		Convey("get_data_types renders the data source descriptions", func() {
			stub := &stubInvoker{
				resp: &dispatch.Response{
					Tool:   "get_data_types",
					Result: []fdc.DataTypeInfo{{Name: "Foundation", Description: "base data"}},
				},
			}
			tool := NewDataTypesTool(stub)

			result, err := tool.Handler(context.Background(), callRequest("get_data_types", map[string]any{}))

			So(err, ShouldBeNil)
			So(resultText(result), ShouldContainSubstring, "Foundation:")
			So(resultText(result), ShouldContainSubstring, "base data")
		})
	})
}
