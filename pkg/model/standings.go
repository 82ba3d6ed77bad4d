package model

// DriverStanding is one row of the drivers' championship table. Driver
// and Team are only built when the payload nests the full objects;
// DriverID/TeamID always carry the raw identifiers.
type DriverStanding struct {
	ClassificationID int
	DriverID         string
	TeamID           string
	Position         int
	Points           float64
	Wins             int
	Driver           *Driver
	Team             *Team
}

func DriverStandingFromAPI(data map[string]any) DriverStanding {
	var driver *Driver
	if obj, ok := subObject(data, "Driver"); ok {
		d := DriverFromAPI(obj)
		driver = &d
	}
	var team *Team
	if obj, ok := subObject(data, "Constructor"); ok {
		t := TeamFromAPI(obj)
		team = &t
	}
	return DriverStanding{
		ClassificationID: intField(data, "classificationId"),
		DriverID:         stringField(data, "driverId"),
		TeamID:           stringField(data, "teamId"),
		Position:         intField(data, "position"),
		Points:           floatField(data, "points"),
		Wins:             intField(data, "wins"),
		Driver:           driver,
		Team:             team,
	}
}

func (s DriverStanding) FlatFields() map[string]any {
	fields := map[string]any{
		"classificationId": s.ClassificationID,
		"driverId":         s.DriverID,
		"teamId":           s.TeamID,
		"position":         s.Position,
		"points":           s.Points,
		"wins":             s.Wins,
	}
	if s.Driver != nil {
		fields["driver"] = *s.Driver
	}
	if s.Team != nil {
		fields["team"] = *s.Team
	}
	return fields
}

// TeamStanding is one row of the constructors' championship table.
type TeamStanding struct {
	ClassificationID int
	TeamID           string
	Position         int
	Points           float64
	Wins             int
	Team             *Team
}

func TeamStandingFromAPI(data map[string]any) TeamStanding {
	var team *Team
	if obj, ok := subObject(data, "Constructor"); ok {
		t := TeamFromAPI(obj)
		team = &t
	}
	return TeamStanding{
		ClassificationID: intField(data, "classificationId"),
		TeamID:           stringField(data, "teamId"),
		Position:         intField(data, "position"),
		Points:           floatField(data, "points"),
		Wins:             intField(data, "wins"),
		Team:             team,
	}
}

func (s TeamStanding) FlatFields() map[string]any {
	fields := map[string]any{
		"classificationId": s.ClassificationID,
		"teamId":           s.TeamID,
		"position":         s.Position,
		"points":           s.Points,
		"wins":             s.Wins,
	}
	if s.Team != nil {
		fields["team"] = *s.Team
	}
	return fields
}

// RaceResult is one driver's classified result in a race.
type RaceResult struct {
	Position int
	Points   float64
	Status   string
	LapTime  *string
	Driver   *Driver
	Team     *Team
}

func RaceResultFromAPI(data map[string]any) RaceResult {
	var driver *Driver
	if obj, ok := subObject(data, "Driver"); ok {
		d := DriverFromAPI(obj)
		driver = &d
	}
	var team *Team
	if obj, ok := subObject(data, "Constructor"); ok {
		t := TeamFromAPI(obj)
		team = &t
	}
	return RaceResult{
		Position: intField(data, "position"),
		Points:   floatField(data, "points"),
		Status:   stringField(data, "status"),
		LapTime:  stringPtrField(data, "lapTime"),
		Driver:   driver,
		Team:     team,
	}
}

func (r RaceResult) FlatFields() map[string]any {
	fields := map[string]any{
		"position": r.Position,
		"points":   r.Points,
		"status":   r.Status,
	}
	if r.LapTime != nil {
		fields["lapTime"] = *r.LapTime
	}
	if r.Driver != nil {
		fields["driver"] = *r.Driver
	}
	if r.Team != nil {
		fields["team"] = *r.Team
	}
	return fields
}
