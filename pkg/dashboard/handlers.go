package dashboard

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/hajni77/f1-analytics/pkg/charts"
	"github.com/hajni77/f1-analytics/pkg/flatten"
	"github.com/hajni77/f1-analytics/pkg/helper"
)

var driverStandingColumns = []Column{
	{"position", "Pos"},
	{"driver.name", "Name"},
	{"driver.surname", "Surname"},
	{"team.teamName", "Team"},
	{"points", "Points"},
	{"wins", "Wins"},
}

var teamStandingColumns = []Column{
	{"position", "Pos"},
	{"team.teamName", "Team"},
	{"team.country", "Country"},
	{"points", "Points"},
	{"wins", "Wins"},
}

var calendarColumns = []Column{
	{"round", "Round"},
	{"raceName", "Race"},
	{"circuit.circuitName", "Circuit"},
	{"circuit.country", "Country"},
	{"schedule.race.date", "Date"},
}

var resultColumns = []Column{
	{"position", "Pos"},
	{"driver.name", "Name"},
	{"driver.surname", "Surname"},
	{"team.teamName", "Team"},
	{"lapTime", "Time"},
	{"status", "Status"},
	{"points", "Points"},
}

func (m *Manager) handleSeasons(w http.ResponseWriter, r *http.Request) {
	seasons := m.svc.SeasonYears(time.Now())
	p := page{
		Title:   "Seasons",
		Columns: []Column{{"year", "Year"}},
		Rows:    flatten.Rows(seasons),
	}
	m.renderPage(w, p)
}

func (m *Manager) handleDriverStandings(w http.ResponseWriter, r *http.Request) {
	season := m.season(r)
	p := page{
		Title:    fmt.Sprintf("Drivers' championship %d", season),
		Season:   season,
		Years:    m.years(),
		Columns:  driverStandingColumns,
		ChartURL: fmt.Sprintf("/charts/drivers.svg?season=%d", season),
		Live:     m.live != nil && season == time.Now().Year(),
	}

	rows, err := m.svc.DriverStandingRows(r.Context(), season)
	if err != nil {
		p.Warning = "Could not fetch driver standings. The data source may be unavailable."
		log.Errorf("fetching driver standings: %s", err)
	} else {
		p.Rows = fallbackRows(rows, map[string]string{
			"driver.surname": "driverId",
			"team.teamName":  "teamId",
		})
	}
	m.renderPage(w, p)
}

func (m *Manager) handleTeamStandings(w http.ResponseWriter, r *http.Request) {
	season := m.season(r)
	p := page{
		Title:    fmt.Sprintf("Constructors' championship %d", season),
		Season:   season,
		Years:    m.years(),
		Columns:  teamStandingColumns,
		ChartURL: fmt.Sprintf("/charts/teams.svg?season=%d", season),
	}

	rows, err := m.svc.TeamStandingRows(r.Context(), season)
	if err != nil {
		p.Warning = "Could not fetch constructor standings. The data source may be unavailable."
		log.Errorf("fetching team standings: %s", err)
	} else {
		p.Rows = fallbackRows(rows, map[string]string{
			"team.teamName": "teamId",
		})
	}
	m.renderPage(w, p)
}

func (m *Manager) handleCalendar(w http.ResponseWriter, r *http.Request) {
	season := m.season(r)
	p := page{
		Title:   fmt.Sprintf("Race calendar %d", season),
		Season:  season,
		Years:   m.years(),
		Columns: calendarColumns,
	}

	rows, err := m.svc.CalendarRows(r.Context(), season)
	if err != nil {
		p.Warning = "Could not fetch the race calendar. The data source may be unavailable."
		log.Errorf("fetching calendar: %s", err)
	} else {
		p.Rows = rows
	}
	m.renderPage(w, p)
}

func (m *Manager) handleRaceResults(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, _ := strconv.Atoi(vars["year"])
	round, _ := strconv.Atoi(vars["round"])

	p := page{
		Title:   fmt.Sprintf("Results %d, round %d", year, round),
		Columns: resultColumns,
	}

	rows, err := m.svc.RaceResultRows(r.Context(), year, round)
	if err != nil {
		p.Warning = "Could not fetch race results. The data source may be unavailable."
		log.Errorf("fetching race results: %s", err)
	} else {
		for _, row := range rows {
			if lapTime, ok := row["lapTime"].(string); ok {
				row["lapTime"] = helper.FormatLapTime(lapTime)
			}
		}
		p.Rows = rows
	}
	m.renderPage(w, p)
}

func (m *Manager) handleDriverChart(w http.ResponseWriter, r *http.Request) {
	season := m.season(r)
	standings, err := m.svc.DriverStandings(r.Context(), season)
	if err != nil {
		http.Error(w, "chart unavailable", http.StatusBadGateway)
		return
	}

	bars := make([]charts.Bar, 0, len(standings))
	for i, s := range standings {
		label := s.DriverID
		if s.Driver != nil {
			label = helper.DriverCode(s.Driver.Name, s.Driver.Surname)
		}
		bars = append(bars, charts.Bar{
			Label: label,
			Value: s.Points,
			Color: charts.TeamColor(s.TeamID, i),
		})
	}
	m.writeChart(w, fmt.Sprintf("Points, drivers' championship %d", season), bars)
}

func (m *Manager) handleTeamChart(w http.ResponseWriter, r *http.Request) {
	season := m.season(r)
	standings, err := m.svc.TeamStandings(r.Context(), season)
	if err != nil {
		http.Error(w, "chart unavailable", http.StatusBadGateway)
		return
	}

	bars := make([]charts.Bar, 0, len(standings))
	for i, s := range standings {
		label := s.TeamID
		if s.Team != nil {
			label = s.Team.Name
		}
		bars = append(bars, charts.Bar{
			Label: label,
			Value: s.Points,
			Color: charts.TeamColor(s.TeamID, i),
		})
	}
	m.writeChart(w, fmt.Sprintf("Points, constructors' championship %d", season), bars)
}

func (m *Manager) handleSetSeason(w http.ResponseWriter, r *http.Request) {
	season, err := strconv.Atoi(r.FormValue("season"))
	if err == nil && m.store != nil {
		if err := m.store.SetDefaultSeason(season); err != nil {
			log.Errorf("storing default season: %s", err)
		}
	}
	http.Redirect(w, r, "/standings/drivers", http.StatusSeeOther)
}

func (m *Manager) writeChart(w http.ResponseWriter, title string, bars []charts.Bar) {
	svg, err := charts.BarChart(title, bars)
	if err != nil {
		log.Errorf("rendering chart: %s", err)
		http.Error(w, "chart unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

func (m *Manager) renderPage(w http.ResponseWriter, p page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, p); err != nil {
		log.Errorf("rendering page %q: %s", p.Title, err)
	}
}

// season picks the requested season: query param first, then the stored
// preference, then the current year.
func (m *Manager) season(r *http.Request) int {
	if raw := r.URL.Query().Get("season"); raw != "" {
		if season, err := strconv.Atoi(raw); err == nil {
			return season
		}
	}
	if m.store != nil {
		if season, err := m.store.DefaultSeason(); err == nil && season > 0 {
			return season
		}
	}
	return time.Now().Year()
}

func (m *Manager) years() []int {
	seasons := m.svc.SeasonYears(time.Now())
	years := make([]int, 0, len(seasons))
	for _, s := range seasons {
		years = append(years, s.Year)
	}
	return years
}

// fallbackRows substitutes raw-id values for display keys whose nested
// record was absent from the payload.
func fallbackRows(rows []map[string]any, fallbacks map[string]string) []map[string]any {
	for _, row := range rows {
		for key, idKey := range fallbacks {
			if _, ok := row[key]; ok {
				continue
			}
			if id, ok := row[idKey]; ok {
				row[key] = id
			}
		}
	}
	return rows
}
