package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// Championship identifies one season-long championship.
type Championship struct {
	ID   string
	Name string
	Year int
	URL  *string
}

func ChampionshipFromAPI(data map[string]any) Championship {
	return Championship{
		ID:   stringField(data, "championshipId"),
		Name: stringField(data, "championshipName"),
		Year: intField(data, "year"),
		URL:  stringPtrField(data, "url"),
	}
}

func (c Championship) FlatFields() map[string]any {
	fields := map[string]any{
		"championshipId":   c.ID,
		"championshipName": c.Name,
		"year":             c.Year,
	}
	if c.URL != nil {
		fields["url"] = *c.URL
	}
	return fields
}

// Race is one round of a season. Name falls back to "Round N" when the
// API omits raceName.
type Race struct {
	ID             string
	Name           string
	Round          int
	Season         int
	Circuit        Circuit
	ChampionshipID *string
	Schedule       *RaceSchedule
	Laps           *int
	URL            *string
	FastLap        *FastLap
	WinnerDriverID *string
	WinnerTeamID   *string
}

func RaceFromAPI(data map[string]any) (Race, error) {
	round := intField(data, "round")
	name := stringField(data, "raceName")
	if name == "" {
		name = fmt.Sprintf("Round %d", round)
	}

	circuitObj, _ := subObject(data, "circuit")
	circuit := CircuitFromAPI(circuitObj)

	var schedule *RaceSchedule
	if obj, ok := subObject(data, "schedule"); ok {
		rs, err := RaceScheduleFromAPI(obj)
		if err != nil {
			return Race{}, errors.Wrapf(err, "race %q schedule", name)
		}
		schedule = &rs
	}

	var fastLap *FastLap
	if obj, ok := subObject(data, "fast_lap"); ok {
		fl := FastLapFromAPI(obj)
		fastLap = &fl
	}

	return Race{
		ID:             stringField(data, "raceId"),
		Name:           name,
		Round:          round,
		Season:         intField(data, "season"),
		Circuit:        circuit,
		ChampionshipID: stringPtrField(data, "championshipId"),
		Schedule:       schedule,
		Laps:           intPtrField(data, "laps"),
		URL:            stringPtrField(data, "url"),
		FastLap:        fastLap,
		WinnerDriverID: stringPtrField(data, "winner"),
		WinnerTeamID:   stringPtrField(data, "teamWinner"),
	}, nil
}

func (r Race) FlatFields() map[string]any {
	fields := map[string]any{
		"raceId":   r.ID,
		"raceName": r.Name,
		"round":    r.Round,
		"season":   r.Season,
		"circuit":  r.Circuit,
	}
	if r.ChampionshipID != nil {
		fields["championshipId"] = *r.ChampionshipID
	}
	if r.Schedule != nil {
		fields["schedule"] = *r.Schedule
	}
	if r.Laps != nil {
		fields["laps"] = *r.Laps
	}
	if r.URL != nil {
		fields["url"] = *r.URL
	}
	if r.FastLap != nil {
		fields["fast_lap"] = *r.FastLap
	}
	if r.WinnerDriverID != nil {
		fields["winner"] = *r.WinnerDriverID
	}
	if r.WinnerTeamID != nil {
		fields["teamWinner"] = *r.WinnerTeamID
	}
	return fields
}

// Season is a championship year.
type Season struct {
	Year int
}

func SeasonFromAPI(data map[string]any) Season {
	return Season{Year: intField(data, "year")}
}

func (s Season) FlatFields() map[string]any {
	return map[string]any{"year": s.Year}
}
