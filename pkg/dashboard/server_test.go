package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/hajni77/f1-analytics/pkg/service"
)

type fakeAPI struct {
	driverChampionship []map[string]any
	races              []map[string]any
	raceResults        []map[string]any
	err                error
}

func (f *fakeAPI) DriverChampionship(ctx context.Context, season int) ([]map[string]any, error) {
	return f.driverChampionship, f.err
}

func (f *fakeAPI) ConstructorChampionship(ctx context.Context, season int) ([]map[string]any, error) {
	return nil, f.err
}

func (f *fakeAPI) Races(ctx context.Context, season int) ([]map[string]any, error) {
	return f.races, f.err
}

func (f *fakeAPI) RaceResults(ctx context.Context, year, round int) ([]map[string]any, error) {
	return f.raceResults, f.err
}

func (f *fakeAPI) Drivers(ctx context.Context) ([]map[string]any, error) {
	return nil, f.err
}

func (f *fakeAPI) DriverInfo(ctx context.Context, driverID string) (map[string]any, error) {
	return map[string]any{}, f.err
}

func (f *fakeAPI) TeamInfo(ctx context.Context, teamID string) (map[string]any, error) {
	return map[string]any{}, f.err
}

func (f *fakeAPI) Championship(ctx context.Context, season int) (map[string]any, error) {
	return map[string]any{}, f.err
}

func get(t *testing.T, api *fakeAPI, path string) *httptest.ResponseRecorder {
	t.Helper()
	m := NewManager(service.New(api), nil, nil)
	rec := httptest.NewRecorder()
	m.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestSeasonsPage(t *testing.T) {
	rec := get(t, &fakeAPI{}, "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Seasons") {
		t.Errorf("body missing title:\n%.300s", body)
	}
	if !strings.Contains(body, "2024") {
		t.Error("body should list season years")
	}
}

func TestDriverStandingsPage(t *testing.T) {
	api := &fakeAPI{
		driverChampionship: []map[string]any{
			{
				"driverId": "hamilton",
				"position": float64(3),
				"points":   float64(234),
				"Driver":   map[string]any{"name": "Lewis", "surname": "Hamilton"},
				"Constructor": map[string]any{
					"teamId":   "mercedes",
					"teamName": "Mercedes",
				},
			},
		},
	}
	rec := get(t, api, "/standings/drivers?season=2024")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Hamilton", "Mercedes", "234", "/charts/drivers.svg?season=2024"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestDriverStandingsPageFallsBackToIDs(t *testing.T) {
	api := &fakeAPI{
		driverChampionship: []map[string]any{
			{"driverId": "hamilton", "teamId": "mercedes", "position": float64(3)},
		},
	}
	rec := get(t, api, "/standings/drivers?season=2024")

	body := rec.Body.String()
	if !strings.Contains(body, "hamilton") || !strings.Contains(body, "mercedes") {
		t.Errorf("body should show raw ids when nested records are absent:\n%.500s", body)
	}
}

func TestDriverStandingsPageWarnsOnError(t *testing.T) {
	rec := get(t, &fakeAPI{err: errors.New("upstream down")}, "/standings/drivers?season=2024")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, errors render as a warning panel", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Could not fetch driver standings") {
		t.Error("body should carry the warning message")
	}
}

func TestDriverStandingsPageNoData(t *testing.T) {
	rec := get(t, &fakeAPI{driverChampionship: []map[string]any{}}, "/standings/drivers?season=1999")

	if !strings.Contains(rec.Body.String(), "No data to display.") {
		t.Error("empty standings should show the no-data message")
	}
}

func TestCalendarPage(t *testing.T) {
	api := &fakeAPI{
		races: []map[string]any{
			{
				"raceName": "Italian Grand Prix",
				"round":    float64(16),
				"circuit": map[string]any{
					"circuitName": "Monza",
					"country":     "Italy",
				},
				"schedule": map[string]any{
					"race": map[string]any{"date": "2024-09-01"},
				},
			},
		},
	}
	rec := get(t, api, "/calendar?season=2024")

	body := rec.Body.String()
	for _, want := range []string{"Italian Grand Prix", "Monza", "2024-09-01"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestRaceResultsPage(t *testing.T) {
	api := &fakeAPI{
		raceResults: []map[string]any{
			{
				"position": float64(1),
				"points":   float64(25),
				"status":   "Finished",
				"lapTime":  "1:20.486",
				"Driver":   map[string]any{"name": "Charles", "surname": "Leclerc"},
			},
		},
	}
	rec := get(t, api, "/results/2024/16")

	body := rec.Body.String()
	if !strings.Contains(body, "Leclerc") {
		t.Error("body missing driver")
	}
	if !strings.Contains(body, "1m 20.486s") {
		t.Error("lap times should be reformatted for display")
	}
}

func TestDriverChart(t *testing.T) {
	api := &fakeAPI{
		driverChampionship: []map[string]any{
			{
				"driverId": "verstappen",
				"teamId":   "red_bull",
				"points":   float64(393),
				"Driver":   map[string]any{"name": "Max", "surname": "Verstappen"},
			},
		},
	}
	rec := get(t, api, "/charts/drivers.svg?season=2024")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "<svg") {
		t.Error("body is not an svg document")
	}
}

func TestChartBadGatewayOnError(t *testing.T) {
	rec := get(t, &fakeAPI{err: errors.New("upstream down")}, "/charts/teams.svg?season=2024")
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

func TestWebSocketRouteAbsentWithoutLive(t *testing.T) {
	rec := get(t, &fakeAPI{}, "/ws/standings")
	if rec.Code == http.StatusOK {
		t.Error("websocket route should not be registered without a live manager")
	}
}
