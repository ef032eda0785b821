// Package fdc is a client for the USDA FoodData Central REST API.
package fdc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	DefaultBaseURL = "https://api.nal.usda.gov/fdc/v1"
	userAgent      = "nutrition-bridge/1.0"
)

// ErrMissingAPIKey is returned before any request is attempted when the
// client was built without an API key.
var ErrMissingAPIKey = errors.New("fdc: api key not set")

// StatusError is a well-formed non-2xx reply from FoodData Central.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fdc: HTTP %d: %s", e.Code, e.Body)
}

// Client talks to the FoodData Central API. It is safe for concurrent
// use; every call carries the configured API key as a query parameter.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// New creates a FoodData Central client. A zero timeout disables the
// client-side deadline; callers still control cancellation via context.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// SearchFoods queries /foods/search for foods matching the request.
func (c *Client) SearchFoods(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	var result SearchResult
	if err := c.do(ctx, http.MethodPost, "foods/search", nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetFood fetches a single food record by FDC ID. A non-empty
// nutrientIDs list narrows the returned nutrients.
func (c *Client) GetFood(ctx context.Context, fdcID int64, nutrientIDs []int) (*Food, error) {
	params := url.Values{}
	if len(nutrientIDs) > 0 {
		params.Set("nutrients", joinInts(nutrientIDs))
	}

	var food Food
	endpoint := fmt.Sprintf("food/%d", fdcID)
	if err := c.do(ctx, http.MethodGet, endpoint, params, nil, &food); err != nil {
		return nil, err
	}
	return &food, nil
}

// GetFoods fetches multiple food records in one call via POST /foods.
// FoodData Central does not guarantee the response order matches the
// request order.
func (c *Client) GetFoods(ctx context.Context, fdcIDs []int64, nutrientIDs []int) ([]Food, error) {
	body := map[string]any{"fdcIds": fdcIDs}
	if len(nutrientIDs) > 0 {
		body["nutrients"] = nutrientIDs
	}

	var foods []Food
	if err := c.do(ctx, http.MethodPost, "foods", nil, body, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// NutrientReference returns the common-nutrient lookup table. The data
// is served in-process since FoodData Central has no endpoint for it.
func (c *Client) NutrientReference(ctx context.Context) ([]NutrientRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]NutrientRef, len(nutrientReference))
	copy(out, nutrientReference)
	return out, nil
}

// DataTypes returns the descriptions of the available food data sources.
func (c *Client) DataTypes(ctx context.Context) ([]DataTypeInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]DataTypeInfo, len(dataTypes))
	copy(out, dataTypes)
	return out, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, params url.Values, body any, out any) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	reqURL := c.baseURL + "/" + strings.TrimLeft(endpoint, "/") + "?" + params.Encode()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("fdc: failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("fdc: failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("fdc: request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("fdc: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if err := json.Unmarshal(data, out); err != nil {
		log.Error(err)
		return fmt.Errorf("fdc: failed to decode response: %w", err)
	}

	return nil
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
