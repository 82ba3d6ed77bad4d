// Package render turns typed records into text tables shared by the
// Telegram surface and the dashboard's preformatted views.
package render

import (
	"bytes"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/hajni77/f1-analytics/pkg/helper"
	"github.com/hajni77/f1-analytics/pkg/model"
)

func newTable(b *bytes.Buffer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(b)
	t.SetStyle(table.StyleRounded)
	t.AppendSeparator()
	return t
}

// DriverStandingsTable renders the drivers' championship. Rows without
// a nested driver object fall back to the raw ids.
func DriverStandingsTable(standings []model.DriverStanding) string {
	var b bytes.Buffer
	t := newTable(&b)
	t.AppendHeader(table.Row{"POS", "DRIVER", "TEAM", "PTS", "WINS"})
	for _, s := range standings {
		driver := s.DriverID
		if s.Driver != nil {
			driver = helper.DriverShortName(s.Driver.Name, s.Driver.Surname)
		}
		team := s.TeamID
		if s.Team != nil {
			team = s.Team.Name
		}
		t.AppendRow(table.Row{s.Position, driver, team, formatPoints(s.Points), s.Wins})
	}
	t.Render()
	return b.String()
}

// TeamStandingsTable renders the constructors' championship.
func TeamStandingsTable(standings []model.TeamStanding) string {
	var b bytes.Buffer
	t := newTable(&b)
	t.AppendHeader(table.Row{"POS", "TEAM", "PTS", "WINS"})
	for _, s := range standings {
		team := s.TeamID
		if s.Team != nil {
			team = s.Team.Name
		}
		t.AppendRow(table.Row{s.Position, team, formatPoints(s.Points), s.Wins})
	}
	t.Render()
	return b.String()
}

// CalendarTable renders one season's race calendar.
func CalendarTable(races []model.Race) string {
	var b bytes.Buffer
	t := newTable(&b)
	t.AppendHeader(table.Row{"RND", "RACE", "CIRCUIT", "COUNTRY", "DATE"})
	for _, r := range races {
		date := "-"
		if r.Schedule != nil && r.Schedule.Race.Date != nil {
			date = r.Schedule.Race.Date.Format(model.DateLayout)
		}
		t.AppendRow(table.Row{r.Round, r.Name, r.Circuit.Name, r.Circuit.Country, date})
	}
	t.Render()
	return b.String()
}

// RaceResultsTable renders one round's classified results.
func RaceResultsTable(results []model.RaceResult) string {
	var b bytes.Buffer
	t := newTable(&b)
	t.AppendHeader(table.Row{"POS", "DRIVER", "TEAM", "TIME", "STATUS", "PTS"})
	for _, r := range results {
		driver := "-"
		if r.Driver != nil {
			driver = helper.DriverShortName(r.Driver.Name, r.Driver.Surname)
		}
		team := "-"
		if r.Team != nil {
			team = r.Team.Name
		}
		lapTime := "-"
		if r.LapTime != nil {
			lapTime = helper.FormatLapTime(*r.LapTime)
		}
		t.AppendRow(table.Row{r.Position, driver, team, lapTime, r.Status, formatPoints(r.Points)})
	}
	t.Render()
	return b.String()
}

func formatPoints(points float64) string {
	if points == float64(int(points)) {
		return fmt.Sprintf("%d", int(points))
	}
	return fmt.Sprintf("%.1f", points)
}
