// Package service orchestrates the transport and the record
// normalization for every presentation surface.
package service

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/hajni77/f1-analytics/pkg/flatten"
	"github.com/hajni77/f1-analytics/pkg/model"
)

// FirstSeason is the earliest year offered by the season selector.
const FirstSeason = 2000

// ErrNoUpcomingRace is returned when the season's calendar has no race
// left after the given instant. Empty standings or calendars are not
// errors; they render as a "no data" state.
var ErrNoUpcomingRace = errors.New("no upcoming race in this season")

// statsAPI is the transport surface the service consumes; satisfied by
// both f1api.Client and f1api.CachedClient.
type statsAPI interface {
	DriverChampionship(ctx context.Context, season int) ([]map[string]any, error)
	ConstructorChampionship(ctx context.Context, season int) ([]map[string]any, error)
	Races(ctx context.Context, season int) ([]map[string]any, error)
	RaceResults(ctx context.Context, year, round int) ([]map[string]any, error)
	Drivers(ctx context.Context) ([]map[string]any, error)
	DriverInfo(ctx context.Context, driverID string) (map[string]any, error)
	TeamInfo(ctx context.Context, teamID string) (map[string]any, error)
	Championship(ctx context.Context, season int) (map[string]any, error)
}

type Service struct {
	api statsAPI
}

func New(api statsAPI) *Service {
	return &Service{api: api}
}

// DriverStandings returns the drivers' championship table for a season
// (zero season = current).
func (s *Service) DriverStandings(ctx context.Context, season int) ([]model.DriverStanding, error) {
	raw, err := s.api.DriverChampionship(ctx, season)
	if err != nil {
		return nil, err
	}
	standings := make([]model.DriverStanding, 0, len(raw))
	for _, data := range raw {
		standings = append(standings, model.DriverStandingFromAPI(data))
	}
	return standings, nil
}

// TeamStandings returns the constructors' championship table.
func (s *Service) TeamStandings(ctx context.Context, season int) ([]model.TeamStanding, error) {
	raw, err := s.api.ConstructorChampionship(ctx, season)
	if err != nil {
		return nil, err
	}
	standings := make([]model.TeamStanding, 0, len(raw))
	for _, data := range raw {
		standings = append(standings, model.TeamStandingFromAPI(data))
	}
	return standings, nil
}

// Calendar returns the season's races ordered by round.
func (s *Service) Calendar(ctx context.Context, season int) ([]model.Race, error) {
	raw, err := s.api.Races(ctx, season)
	if err != nil {
		return nil, err
	}
	races := make([]model.Race, 0, len(raw))
	for _, data := range raw {
		race, err := model.RaceFromAPI(data)
		if err != nil {
			return nil, err
		}
		races = append(races, race)
	}
	sort.Slice(races, func(i, j int) bool { return races[i].Round < races[j].Round })
	return races, nil
}

// RaceResults returns the classified results for one round.
func (s *Service) RaceResults(ctx context.Context, year, round int) ([]model.RaceResult, error) {
	raw, err := s.api.RaceResults(ctx, year, round)
	if err != nil {
		return nil, err
	}
	results := make([]model.RaceResult, 0, len(raw))
	for _, data := range raw {
		results = append(results, model.RaceResultFromAPI(data))
	}
	return results, nil
}

// Drivers returns the full driver list.
func (s *Service) Drivers(ctx context.Context) ([]model.Driver, error) {
	raw, err := s.api.Drivers(ctx)
	if err != nil {
		return nil, err
	}
	drivers := make([]model.Driver, 0, len(raw))
	for _, data := range raw {
		drivers = append(drivers, model.DriverFromAPI(data))
	}
	return drivers, nil
}

// DriverDetail returns one driver by id.
func (s *Service) DriverDetail(ctx context.Context, driverID string) (model.Driver, error) {
	data, err := s.api.DriverInfo(ctx, driverID)
	if err != nil {
		return model.Driver{}, err
	}
	return model.DriverFromAPI(data), nil
}

// TeamDetail returns one team by id.
func (s *Service) TeamDetail(ctx context.Context, teamID string) (model.Team, error) {
	data, err := s.api.TeamInfo(ctx, teamID)
	if err != nil {
		return model.Team{}, err
	}
	return model.TeamFromAPI(data), nil
}

// ChampionshipInfo returns the championship record for a season.
func (s *Service) ChampionshipInfo(ctx context.Context, season int) (model.Championship, error) {
	data, err := s.api.Championship(ctx, season)
	if err != nil {
		return model.Championship{}, err
	}
	return model.ChampionshipFromAPI(data), nil
}

// NextRace returns the first race of the season whose race session is
// scheduled on or after now.
func (s *Service) NextRace(ctx context.Context, now time.Time) (model.Race, error) {
	races, err := s.Calendar(ctx, now.Year())
	if err != nil {
		return model.Race{}, err
	}
	today := now.Truncate(24 * time.Hour)
	for _, race := range races {
		if race.Schedule == nil || race.Schedule.Race.Date == nil {
			continue
		}
		if !race.Schedule.Race.Date.Before(today) {
			return race, nil
		}
	}
	return model.Race{}, ErrNoUpcomingRace
}

// SeasonYears lists the selectable seasons, newest first.
func (s *Service) SeasonYears(now time.Time) []model.Season {
	years := make([]model.Season, 0, now.Year()-FirstSeason+1)
	for year := now.Year(); year >= FirstSeason; year-- {
		years = append(years, model.Season{Year: year})
	}
	return years
}

// DriverStandingRows returns the drivers' table as flat rows.
func (s *Service) DriverStandingRows(ctx context.Context, season int) ([]map[string]any, error) {
	standings, err := s.DriverStandings(ctx, season)
	if err != nil {
		return nil, err
	}
	return flatten.Rows(standings), nil
}

// TeamStandingRows returns the constructors' table as flat rows.
func (s *Service) TeamStandingRows(ctx context.Context, season int) ([]map[string]any, error) {
	standings, err := s.TeamStandings(ctx, season)
	if err != nil {
		return nil, err
	}
	return flatten.Rows(standings), nil
}

// CalendarRows returns the calendar as flat rows.
func (s *Service) CalendarRows(ctx context.Context, season int) ([]map[string]any, error) {
	races, err := s.Calendar(ctx, season)
	if err != nil {
		return nil, err
	}
	return flatten.Rows(races), nil
}

// RaceResultRows returns one round's results as flat rows.
func (s *Service) RaceResultRows(ctx context.Context, year, round int) ([]map[string]any, error) {
	results, err := s.RaceResults(ctx, year, round)
	if err != nil {
		return nil, err
	}
	return flatten.Rows(results), nil
}

// Warmup pre-fetches the season's heavyweight responses into the cache
// decorator, reporting progress per step.
func (s *Service) Warmup(ctx context.Context, season int, step func(name string)) error {
	fetches := []struct {
		name string
		call func() error
	}{
		{"drivers championship", func() error { _, err := s.DriverStandings(ctx, season); return err }},
		{"constructors championship", func() error { _, err := s.TeamStandings(ctx, season); return err }},
		{"calendar", func() error { _, err := s.Calendar(ctx, season); return err }},
	}
	for _, f := range fetches {
		if err := f.call(); err != nil {
			return err
		}
		if step != nil {
			step(f.name)
		}
		log.Debugf("warmed up %s for season %d", f.name, season)
	}
	return nil
}
