package model

import (
	"time"

	"github.com/pkg/errors"
)

// DateLayout is the calendar date format used by the API.
const DateLayout = "2006-01-02"

// SessionSchedule is one weekend session slot. Date is nil when the
// session is not scheduled; a present but malformed date string is a
// hard error, because a defaulted date would be indistinguishable from
// "not scheduled".
type SessionSchedule struct {
	Date *time.Time
	Time *string
}

func SessionScheduleFromAPI(data map[string]any) (SessionSchedule, error) {
	s := SessionSchedule{
		Time: stringPtrField(data, "time"),
	}
	dateStr := stringField(data, "date")
	if dateStr == "" {
		return s, nil
	}
	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return s, errors.Wrapf(err, "parsing session date %q", dateStr)
	}
	s.Date = &date
	return s, nil
}

func (s SessionSchedule) FlatFields() map[string]any {
	fields := map[string]any{}
	if s.Date != nil {
		fields["date"] = s.Date.Format(DateLayout)
	}
	if s.Time != nil {
		fields["time"] = *s.Time
	}
	return fields
}

// RaceSchedule aggregates the weekend slots. The five regular sessions
// are always present (possibly with empty slots); the sprint pair only
// exists on sprint weekends.
type RaceSchedule struct {
	Race        SessionSchedule
	Qualy       SessionSchedule
	FP1         SessionSchedule
	FP2         SessionSchedule
	FP3         SessionSchedule
	SprintQualy *SessionSchedule
	SprintRace  *SessionSchedule
}

func RaceScheduleFromAPI(data map[string]any) (RaceSchedule, error) {
	var rs RaceSchedule
	var err error

	sessions := []struct {
		key  string
		dest *SessionSchedule
	}{
		{"race", &rs.Race},
		{"qualy", &rs.Qualy},
		{"fp1", &rs.FP1},
		{"fp2", &rs.FP2},
		{"fp3", &rs.FP3},
	}
	for _, s := range sessions {
		obj, _ := subObject(data, s.key)
		*s.dest, err = SessionScheduleFromAPI(obj)
		if err != nil {
			return rs, errors.Wrapf(err, "session %s", s.key)
		}
	}

	for _, s := range []struct {
		key  string
		dest **SessionSchedule
	}{
		{"sprintQualy", &rs.SprintQualy},
		{"sprintRace", &rs.SprintRace},
	} {
		obj, ok := subObject(data, s.key)
		if !ok {
			continue
		}
		session, err := SessionScheduleFromAPI(obj)
		if err != nil {
			return rs, errors.Wrapf(err, "session %s", s.key)
		}
		*s.dest = &session
	}
	return rs, nil
}

func (rs RaceSchedule) FlatFields() map[string]any {
	fields := map[string]any{
		"race":  rs.Race,
		"qualy": rs.Qualy,
		"fp1":   rs.FP1,
		"fp2":   rs.FP2,
		"fp3":   rs.FP3,
	}
	if rs.SprintQualy != nil {
		fields["sprintQualy"] = *rs.SprintQualy
	}
	if rs.SprintRace != nil {
		fields["sprintRace"] = *rs.SprintRace
	}
	return fields
}

// FastLap is the fastest-lap attribution for one race.
type FastLap struct {
	Time     *string
	DriverID *string
	TeamID   *string
}

func FastLapFromAPI(data map[string]any) FastLap {
	return FastLap{
		Time:     stringPtrField(data, "fast_lap"),
		DriverID: stringPtrField(data, "fast_lap_driver_id"),
		TeamID:   stringPtrField(data, "fast_lap_team_id"),
	}
}

func (f FastLap) FlatFields() map[string]any {
	fields := map[string]any{}
	if f.Time != nil {
		fields["fast_lap"] = *f.Time
	}
	if f.DriverID != nil {
		fields["fast_lap_driver_id"] = *f.DriverID
	}
	if f.TeamID != nil {
		fields["fast_lap_team_id"] = *f.TeamID
	}
	return fields
}
