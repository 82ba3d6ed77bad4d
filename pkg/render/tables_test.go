package render

import (
	"strings"
	"testing"

	"github.com/hajni77/f1-analytics/pkg/model"
)

func TestDriverStandingsTable(t *testing.T) {
	rendered := DriverStandingsTable([]model.DriverStanding{
		{
			Position: 1,
			Points:   393.5,
			Wins:     9,
			DriverID: "max_verstappen",
			Driver:   &model.Driver{Name: "Max", Surname: "Verstappen"},
			Team:     &model.Team{Name: "Red Bull Racing"},
		},
	})

	for _, want := range []string{"POS", "DRIVER", "M. Verstappen", "Red Bull Racing", "393.5"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("table missing %q:\n%s", want, rendered)
		}
	}
}

func TestDriverStandingsTableFallsBackToIDs(t *testing.T) {
	rendered := DriverStandingsTable([]model.DriverStanding{
		{Position: 1, DriverID: "max_verstappen", TeamID: "red_bull"},
	})

	if !strings.Contains(rendered, "max_verstappen") {
		t.Errorf("table should show the raw driver id:\n%s", rendered)
	}
	if !strings.Contains(rendered, "red_bull") {
		t.Errorf("table should show the raw team id:\n%s", rendered)
	}
}

func TestTeamStandingsTable(t *testing.T) {
	rendered := TeamStandingsTable([]model.TeamStanding{
		{Position: 1, Points: 608, Wins: 6, Team: &model.Team{Name: "McLaren"}},
	})

	if !strings.Contains(rendered, "McLaren") || !strings.Contains(rendered, "608") {
		t.Errorf("table = \n%s", rendered)
	}
	if strings.Contains(rendered, "608.0") {
		t.Error("whole points should render without decimals")
	}
}

func TestCalendarTable(t *testing.T) {
	race, err := model.RaceFromAPI(map[string]any{
		"raceName": "Italian Grand Prix",
		"round":    float64(16),
		"circuit": map[string]any{
			"circuitName": "Monza",
			"country":     "Italy",
		},
		"schedule": map[string]any{
			"race": map[string]any{"date": "2024-09-01"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rendered := CalendarTable([]model.Race{race})
	for _, want := range []string{"Italian Grand Prix", "Monza", "Italy", "2024-09-01"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("table missing %q:\n%s", want, rendered)
		}
	}
}

func TestCalendarTableUnscheduledRace(t *testing.T) {
	race, err := model.RaceFromAPI(map[string]any{"round": float64(24)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rendered := CalendarTable([]model.Race{race})
	if !strings.Contains(rendered, "Round 24") {
		t.Errorf("table should use the name fallback:\n%s", rendered)
	}
}

func TestRaceResultsTable(t *testing.T) {
	lapTime := "1:20.486"
	rendered := RaceResultsTable([]model.RaceResult{
		{
			Position: 1,
			Points:   25,
			Status:   "Finished",
			LapTime:  &lapTime,
			Driver:   &model.Driver{Name: "Charles", Surname: "Leclerc"},
			Team:     &model.Team{Name: "Ferrari"},
		},
	})

	for _, want := range []string{"C. Leclerc", "Ferrari", "1m 20.486s", "Finished", "25"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("table missing %q:\n%s", want, rendered)
		}
	}
}
