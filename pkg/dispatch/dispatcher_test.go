package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/nutribridge/mcp-server-nutrition-bridge/pkg/fdc"
)

// stubCollaborator counts upstream calls and serves canned data, so
// tests can verify that validation failures never reach the upstream.
type stubCollaborator struct {
	calls      int
	lastSearch fdc.SearchRequest
	lastIDs    []int64

	searchResult *fdc.SearchResult
	food         *fdc.Food
	foods        []fdc.Food
	err          error
	block        bool
}

func (s *stubCollaborator) observe(ctx context.Context) error {
	s.calls++
	if s.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return s.err
}

func (s *stubCollaborator) SearchFoods(ctx context.Context, req fdc.SearchRequest) (*fdc.SearchResult, error) {
	s.lastSearch = req
	if err := s.observe(ctx); err != nil {
		return nil, err
	}
	if s.searchResult != nil {
		return s.searchResult, nil
	}
	return &fdc.SearchResult{}, nil
}

func (s *stubCollaborator) GetFood(ctx context.Context, fdcID int64, nutrientIDs []int) (*fdc.Food, error) {
	if err := s.observe(ctx); err != nil {
		return nil, err
	}
	if s.food != nil {
		return s.food, nil
	}
	return &fdc.Food{FDCID: fdcID}, nil
}

func (s *stubCollaborator) GetFoods(ctx context.Context, fdcIDs []int64, nutrientIDs []int) ([]fdc.Food, error) {
	s.lastIDs = fdcIDs
	if err := s.observe(ctx); err != nil {
		return nil, err
	}
	if s.foods != nil {
		return s.foods, nil
	}
	foods := make([]fdc.Food, len(fdcIDs))
	for i, id := range fdcIDs {
		foods[i] = fdc.Food{FDCID: id}
	}
	return foods, nil
}

func (s *stubCollaborator) NutrientReference(ctx context.Context) ([]fdc.NutrientRef, error) {
	if err := s.observe(ctx); err != nil {
		return nil, err
	}
	return []fdc.NutrientRef{{Number: "203", Name: "Protein"}, {Number: "208", Name: "Energy (kcal)"}}, nil
}

func (s *stubCollaborator) DataTypes(ctx context.Context) ([]fdc.DataTypeInfo, error) {
	if err := s.observe(ctx); err != nil {
		return nil, err
	}
	return []fdc.DataTypeInfo{{Name: "Foundation", Description: "base data"}}, nil
}

func TestInvokeRecognizedTools(t *testing.T) {
	Convey("Given a dispatcher over a counting stub", t, func() {
		minimalArgs := map[string]map[string]any{
			"search_foods":           {"query": "apple"},
			"get_food_details":       {"food_id": float64(123456)},
			"get_food_nutrients":     {"food_id": float64(123456)},
			"compare_foods":          {"food_ids": []any{float64(1), float64(2)}},
			"get_nutrient_reference": {},
			"get_data_types":         {},
		}

		Convey("Every recognized tool with minimally valid arguments reaches the upstream", func() {
			for _, tool := range Tools() {
				stub := &stubCollaborator{}
				dispatcher := New(stub)

				resp, err := dispatcher.Invoke(context.Background(), Request{
					Tool:      tool.String(),
					Arguments: minimalArgs[tool.String()],
				})

				So(err, ShouldBeNil)
				So(resp, ShouldNotBeNil)
				So(resp.Tool, ShouldEqual, tool.String())
				So(resp.Result, ShouldNotBeNil)
				So(stub.calls, ShouldEqual, 1)
			}
		})

		Convey("An unrecognized tool name fails without any upstream call", func() {
			stub := &stubCollaborator{}
			dispatcher := New(stub)

			resp, err := dispatcher.Invoke(context.Background(), Request{Tool: "drop_database"})

			So(resp, ShouldBeNil)
			So(errors.Is(err, ErrUnknownTool), ShouldBeTrue)
			So(stub.calls, ShouldEqual, 0)

			var unknownErr *UnknownToolError
			So(errors.As(err, &unknownErr), ShouldBeTrue)
			So(unknownErr.Name, ShouldEqual, "drop_database")
		})
	})
}

func TestInvokeArgumentValidation(t *testing.T) {
	Convey("Given a dispatcher over a counting stub", t, func() {
		stub := &stubCollaborator{}
		dispatcher := New(stub)
		ctx := context.Background()

		Convey("search_foods with an empty query fails before any upstream call", func() {
			_, err := dispatcher.Invoke(ctx, Request{
				Tool:      "search_foods",
				Arguments: map[string]any{"query": "   "},
			})

			So(errors.Is(err, ErrInvalidArguments), ShouldBeTrue)
			So(stub.calls, ShouldEqual, 0)

			var argErr *InvalidArgumentsError
			So(errors.As(err, &argErr), ShouldBeTrue)
			So(argErr.Field, ShouldEqual, "query")
		})

		Convey("search_foods rejects an unrecognized data source", func() {
			_, err := dispatcher.Invoke(ctx, Request{
				Tool:      "search_foods",
				Arguments: map[string]any{"query": "apple", "data_type": "Homemade"},
			})

			var argErr *InvalidArgumentsError
			So(errors.As(err, &argErr), ShouldBeTrue)
			So(argErr.Field, ShouldEqual, "data_type")
			So(stub.calls, ShouldEqual, 0)
		})

		Convey("search_foods clamps oversized pages instead of failing", func() {
			_, err := dispatcher.Invoke(ctx, Request{
				Tool:      "search_foods",
				Arguments: map[string]any{"query": "apple", "page_size": float64(500)},
			})

			So(err, ShouldBeNil)
			So(stub.lastSearch.PageSize, ShouldEqual, DefaultLimits.MaxPageSize)
		})

		Convey("get_food_details requires a positive food_id", func() {
			_, err := dispatcher.Invoke(ctx, Request{
				Tool:      "get_food_details",
				Arguments: map[string]any{"food_id": float64(-1)},
			})

			var argErr *InvalidArgumentsError
			So(errors.As(err, &argErr), ShouldBeTrue)
			So(argErr.Field, ShouldEqual, "food_id")
			So(stub.calls, ShouldEqual, 0)
		})

		Convey("get_food_nutrients rejects non-numeric nutrient IDs", func() {
			_, err := dispatcher.Invoke(ctx, Request{
				Tool:      "get_food_nutrients",
				Arguments: map[string]any{"food_id": float64(1), "nutrient_ids": []any{"protein"}},
			})

			var argErr *InvalidArgumentsError
			So(errors.As(err, &argErr), ShouldBeTrue)
			So(argErr.Field, ShouldEqual, "nutrient_ids")
			So(stub.calls, ShouldEqual, 0)
		})

		Convey("compare_foods requires at least two food IDs", func() {
			_, err := dispatcher.Invoke(ctx, Request{
				Tool:      "compare_foods",
				Arguments: map[string]any{"food_ids": []any{float64(1)}},
			})

			var argErr *InvalidArgumentsError
			So(errors.As(err, &argErr), ShouldBeTrue)
			So(argErr.Field, ShouldEqual, "food_ids")
			So(stub.calls, ShouldEqual, 0)
		})

		Convey("compare_foods rejects more foods than the limit", func() {
			_, err := dispatcher.Invoke(ctx, Request{
				Tool:      "compare_foods",
				Arguments: map[string]any{"food_ids": []int64{1, 2, 3, 4, 5, 6}},
			})

			var argErr *InvalidArgumentsError
			So(errors.As(err, &argErr), ShouldBeTrue)
			So(argErr.Field, ShouldEqual, "food_ids")
			So(stub.calls, ShouldEqual, 0)
		})
	})
}

func TestInvokeUpstreamFailures(t *testing.T) {
	Convey("Given an upstream that fails", t, func() {
		Convey("A well-formed error reply surfaces as an upstream error", func() {
			stub := &stubCollaborator{err: &fdc.StatusError{Code: 429, Body: "rate limited"}}
			dispatcher := New(stub)

			_, err := dispatcher.Invoke(context.Background(), Request{
				Tool:      "search_foods",
				Arguments: map[string]any{"query": "apple"},
			})

			So(errors.Is(err, ErrUpstreamError), ShouldBeTrue)

			var upstreamErr *UpstreamError
			So(errors.As(err, &upstreamErr), ShouldBeTrue)
			So(upstreamErr.Status, ShouldEqual, 429)
		})

		Convey("A transport failure surfaces as upstream unavailable", func() {
			stub := &stubCollaborator{err: errors.New("connection refused")}
			dispatcher := New(stub)

			_, err := dispatcher.Invoke(context.Background(), Request{
				Tool:      "get_food_details",
				Arguments: map[string]any{"food_id": float64(1)},
			})

			So(errors.Is(err, ErrUpstreamUnavailable), ShouldBeTrue)
		})

		Convey("A stalled upstream is abandoned at the caller's deadline", func() {
			stub := &stubCollaborator{block: true}
			dispatcher := New(stub)

			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()

			start := time.Now()
			_, err := dispatcher.Invoke(ctx, Request{
				Tool:      "search_foods",
				Arguments: map[string]any{"query": "apple"},
			})

			So(errors.Is(err, ErrUpstreamUnavailable), ShouldBeTrue)
			So(time.Since(start), ShouldBeLessThan, 2*time.Second)
		})
	})
}

func TestInvokeReferenceFilter(t *testing.T) {
	Convey("Given the nutrient reference tool", t, func() {
		stub := &stubCollaborator{}
		dispatcher := New(stub)

		Convey("A nutrient_id narrows the table to one entry", func() {
			resp, err := dispatcher.Invoke(context.Background(), Request{
				Tool:      "get_nutrient_reference",
				Arguments: map[string]any{"nutrient_id": "203"},
			})

			So(err, ShouldBeNil)
			refs, ok := resp.Result.([]fdc.NutrientRef)
			So(ok, ShouldBeTrue)
			So(refs, ShouldHaveLength, 1)
			So(refs[0].Name, ShouldEqual, "Protein")
		})

		Convey("An unknown nutrient_id yields an empty table, not an error", func() {
			resp, err := dispatcher.Invoke(context.Background(), Request{
				Tool:      "get_nutrient_reference",
				Arguments: map[string]any{"nutrient_id": "999"},
			})

			So(err, ShouldBeNil)
			refs, ok := resp.Result.([]fdc.NutrientRef)
			So(ok, ShouldBeTrue)
			So(refs, ShouldBeEmpty)
		})
	})
}
