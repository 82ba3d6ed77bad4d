// Package f1api is a thin client for the free f1api.dev REST API.
package f1api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const DefaultBaseURL = "https://f1api.dev"

// Client wraps one HTTP session with the default JSON headers. The API
// key slot exists for parity with paid backends; f1api.dev ignores it.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

func New(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// DriverChampionship returns the raw driver-standing objects for a
// season. A zero season means the current one.
func (c *Client) DriverChampionship(ctx context.Context, season int) ([]map[string]any, error) {
	payload, err := c.getJSON(ctx, fmt.Sprintf("/api/%s/drivers-championship", seasonPath(season)))
	if err != nil {
		return nil, err
	}
	return listField(payload, "drivers_championship"), nil
}

// ConstructorChampionship returns the raw constructor-standing objects
// for a season.
func (c *Client) ConstructorChampionship(ctx context.Context, season int) ([]map[string]any, error) {
	payload, err := c.getJSON(ctx, fmt.Sprintf("/api/%s/constructors-championship", seasonPath(season)))
	if err != nil {
		return nil, err
	}
	return listField(payload, "constructors_championship"), nil
}

// Races returns the raw race calendar for a season.
func (c *Client) Races(ctx context.Context, season int) ([]map[string]any, error) {
	payload, err := c.getJSON(ctx, "/api/"+seasonPath(season))
	if err != nil {
		return nil, err
	}
	return listField(payload, "race"), nil
}

// RaceResults returns the raw result objects for one round.
func (c *Client) RaceResults(ctx context.Context, year, round int) ([]map[string]any, error) {
	payload, err := c.getJSON(ctx, fmt.Sprintf("/api/%d/%d", year, round))
	if err != nil {
		return nil, err
	}
	return listField(payload, "race"), nil
}

// Drivers returns the raw driver list.
func (c *Client) Drivers(ctx context.Context) ([]map[string]any, error) {
	payload, err := c.getJSON(ctx, "/api/drivers")
	if err != nil {
		return nil, err
	}
	return listField(payload, "drivers"), nil
}

// DriverInfo returns one driver object by id.
func (c *Client) DriverInfo(ctx context.Context, driverID string) (map[string]any, error) {
	return c.getJSON(ctx, "/api/"+driverID)
}

// TeamInfo returns one team object by id.
func (c *Client) TeamInfo(ctx context.Context, teamID string) (map[string]any, error) {
	return c.getJSON(ctx, "/api/"+teamID)
}

// Championship returns the championship object for a season.
func (c *Client) Championship(ctx context.Context, season int) (map[string]any, error) {
	payload, err := c.getJSON(ctx, "/api/"+seasonPath(season))
	if err != nil {
		return nil, err
	}
	if obj, ok := payload["championship"].(map[string]any); ok {
		return obj, nil
	}
	return map[string]any{}, nil
}

func (c *Client) getJSON(ctx context.Context, path string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "building request for %s", path)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetching %s: %s", path, resp.Status)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	return payload, nil
}

// listField extracts the named top-level list. A missing or oddly-typed
// field is an empty list, not an error.
func listField(payload map[string]any, key string) []map[string]any {
	raw, ok := payload[key].([]any)
	if !ok {
		return []map[string]any{}
	}
	items := make([]map[string]any, 0, len(raw))
	for _, v := range raw {
		if obj, ok := v.(map[string]any); ok {
			items = append(items, obj)
		}
	}
	return items
}

func seasonPath(season int) string {
	if season <= 0 {
		return "current"
	}
	return fmt.Sprintf("%d", season)
}
