package f1api

import (
	"context"

	"github.com/hajni77/f1-analytics/pkg/cache"
)

// CachedClient is a pass-through decorator memoizing raw responses for
// the cache's TTL. Only raw payloads are cached; records are built
// fresh per call.
type CachedClient struct {
	api  *Client
	memo *cache.ResponseCache
}

func NewCached(api *Client, memo *cache.ResponseCache) *CachedClient {
	return &CachedClient{api: api, memo: memo}
}

func (c *CachedClient) DriverChampionship(ctx context.Context, season int) ([]map[string]any, error) {
	return cache.Lookup(c.memo, cache.Key("drivers-championship", season), func() ([]map[string]any, error) {
		return c.api.DriverChampionship(ctx, season)
	})
}

func (c *CachedClient) ConstructorChampionship(ctx context.Context, season int) ([]map[string]any, error) {
	return cache.Lookup(c.memo, cache.Key("constructors-championship", season), func() ([]map[string]any, error) {
		return c.api.ConstructorChampionship(ctx, season)
	})
}

func (c *CachedClient) Races(ctx context.Context, season int) ([]map[string]any, error) {
	return cache.Lookup(c.memo, cache.Key("races", season), func() ([]map[string]any, error) {
		return c.api.Races(ctx, season)
	})
}

func (c *CachedClient) RaceResults(ctx context.Context, year, round int) ([]map[string]any, error) {
	return cache.Lookup(c.memo, cache.Key("race-results", year, round), func() ([]map[string]any, error) {
		return c.api.RaceResults(ctx, year, round)
	})
}

func (c *CachedClient) Drivers(ctx context.Context) ([]map[string]any, error) {
	return cache.Lookup(c.memo, cache.Key("drivers"), func() ([]map[string]any, error) {
		return c.api.Drivers(ctx)
	})
}

func (c *CachedClient) DriverInfo(ctx context.Context, driverID string) (map[string]any, error) {
	return cache.Lookup(c.memo, cache.Key("driver-info", driverID), func() (map[string]any, error) {
		return c.api.DriverInfo(ctx, driverID)
	})
}

func (c *CachedClient) TeamInfo(ctx context.Context, teamID string) (map[string]any, error) {
	return cache.Lookup(c.memo, cache.Key("team-info", teamID), func() (map[string]any, error) {
		return c.api.TeamInfo(ctx, teamID)
	})
}

func (c *CachedClient) Championship(ctx context.Context, season int) (map[string]any, error) {
	return cache.Lookup(c.memo, cache.Key("championship", season), func() (map[string]any, error) {
		return c.api.Championship(ctx, season)
	})
}
