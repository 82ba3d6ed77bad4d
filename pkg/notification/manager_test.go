package notification

import (
	"context"
	"testing"
	"time"

	"github.com/hajni77/f1-analytics/pkg/model"
	"github.com/hajni77/f1-analytics/pkg/service"
	"github.com/hajni77/f1-analytics/pkg/settings"
)

type calendarAPI struct {
	races []map[string]any
}

func (f *calendarAPI) DriverChampionship(ctx context.Context, season int) ([]map[string]any, error) {
	return nil, nil
}

func (f *calendarAPI) ConstructorChampionship(ctx context.Context, season int) ([]map[string]any, error) {
	return nil, nil
}

func (f *calendarAPI) Races(ctx context.Context, season int) ([]map[string]any, error) {
	return f.races, nil
}

func (f *calendarAPI) RaceResults(ctx context.Context, year, round int) ([]map[string]any, error) {
	return nil, nil
}

func (f *calendarAPI) Drivers(ctx context.Context) ([]map[string]any, error) {
	return nil, nil
}

func (f *calendarAPI) DriverInfo(ctx context.Context, driverID string) (map[string]any, error) {
	return map[string]any{}, nil
}

func (f *calendarAPI) TeamInfo(ctx context.Context, teamID string) (map[string]any, error) {
	return map[string]any{}, nil
}

func (f *calendarAPI) Championship(ctx context.Context, season int) (map[string]any, error) {
	return map[string]any{}, nil
}

type countingLister struct {
	calls    int
	sessions []string
}

func (l *countingLister) ListSubscribersForSession(sessionType string) ([]settings.Subscriber, error) {
	l.calls++
	l.sessions = append(l.sessions, sessionType)
	return nil, nil
}

func TestCheckAnnouncesOnceWithinLead(t *testing.T) {
	now := time.Date(2024, 9, 1, 12, 40, 0, 0, time.UTC)
	races := []map[string]any{{
		"raceId": "monza_2024",
		"round":  float64(16),
		"season": float64(2024),
		"schedule": map[string]any{
			"race": map[string]any{
				"date": now.Format(model.DateLayout),
				"time": "13:00:00Z",
			},
		},
	}}

	lister := &countingLister{}
	m := NewManager(context.Background(), nil, service.New(&calendarAPI{races: races}), lister, 30*time.Minute)

	m.check(now)
	if lister.calls != 1 {
		t.Fatalf("lister called %d times, want 1", lister.calls)
	}
	if lister.sessions[0] != settings.Race {
		t.Errorf("session = %q, want race", lister.sessions[0])
	}

	// same tick window again, already announced
	m.check(now.Add(time.Minute))
	if lister.calls != 1 {
		t.Errorf("lister called %d times, reminders must not repeat", lister.calls)
	}
}

func TestCheckOutsideLeadWindow(t *testing.T) {
	now := time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)
	races := []map[string]any{{
		"raceId": "monza_2024",
		"round":  float64(16),
		"schedule": map[string]any{
			"race": map[string]any{
				"date": now.Format(model.DateLayout),
				"time": "13:00:00Z",
			},
		},
	}}

	lister := &countingLister{}
	m := NewManager(context.Background(), nil, service.New(&calendarAPI{races: races}), lister, 30*time.Minute)

	m.check(now)
	if lister.calls != 0 {
		t.Errorf("lister called %d times, the session is hours away", lister.calls)
	}
}

func TestCheckSeasonOver(t *testing.T) {
	lister := &countingLister{}
	m := NewManager(context.Background(), nil, service.New(&calendarAPI{}), lister, 30*time.Minute)

	m.check(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC))
	if lister.calls != 0 {
		t.Errorf("lister called %d times with no upcoming race", lister.calls)
	}
}

func TestSessionStart(t *testing.T) {
	date := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	sessionTime := "13:00:00Z"

	tests := []struct {
		name    string
		session model.SessionSchedule
		ok      bool
		want    time.Time
	}{
		{
			"date and time",
			model.SessionSchedule{Date: &date, Time: &sessionTime},
			true,
			time.Date(2024, 9, 1, 13, 0, 0, 0, time.UTC),
		},
		{
			"date only",
			model.SessionSchedule{Date: &date},
			true,
			date,
		},
		{
			"no date",
			model.SessionSchedule{},
			false,
			time.Time{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, ok := sessionStart(tt.session)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && !start.Equal(tt.want) {
				t.Errorf("start = %v, want %v", start, tt.want)
			}
		})
	}
}

func TestSessionStartBadTimeFallsBackToDate(t *testing.T) {
	date := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	badTime := "one o'clock"
	start, ok := sessionStart(model.SessionSchedule{Date: &date, Time: &badTime})
	if !ok || !start.Equal(date) {
		t.Errorf("start = %v, %v", start, ok)
	}
}

func TestUpcomingSessionsSprintWeekend(t *testing.T) {
	sprintDate := time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC)
	race := model.Race{
		Schedule: &model.RaceSchedule{
			SprintRace: &model.SessionSchedule{Date: &sprintDate},
		},
	}

	sessions := upcomingSessions(race)
	if _, ok := sessions[settings.Sprint]; !ok {
		t.Error("sprint weekend should expose the sprint slot")
	}

	race.Schedule.SprintRace = nil
	sessions = upcomingSessions(race)
	if _, ok := sessions[settings.Sprint]; ok {
		t.Error("regular weekend should not expose a sprint slot")
	}
}
