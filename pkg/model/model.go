package model

// Team is a Formula 1 constructor.
type Team struct {
	ID                        string
	Name                      string
	Country                   string
	FirstAppearance           int
	ConstructorsChampionships int
	DriversChampionships      int
	URL                       *string
}

func TeamFromAPI(data map[string]any) Team {
	return Team{
		ID:                        stringField(data, "teamId"),
		Name:                      stringField(data, "teamName"),
		Country:                   stringField(data, "country"),
		FirstAppearance:           intField(data, "firstAppareance"),
		ConstructorsChampionships: intField(data, "constructorsChampionships"),
		DriversChampionships:      intField(data, "driversChampionships"),
		URL:                       stringPtrField(data, "url"),
	}
}

func (t Team) FlatFields() map[string]any {
	fields := map[string]any{
		"teamId":                    t.ID,
		"teamName":                  t.Name,
		"country":                   t.Country,
		"firstAppareance":           t.FirstAppearance,
		"constructorsChampionships": t.ConstructorsChampionships,
		"driversChampionships":      t.DriversChampionships,
	}
	if t.URL != nil {
		fields["url"] = *t.URL
	}
	return fields
}

// Driver is a Formula 1 driver. Team is only set when the payload
// carried a nested team object; the raw team id on the owning record
// remains the fallback otherwise.
type Driver struct {
	ShortName   string
	Number      string
	Name        string
	Surname     string
	Nationality string
	Team        *Team
}

func DriverFromAPI(data map[string]any) Driver {
	var team *Team
	if obj, ok := subObject(data, "team"); ok {
		t := TeamFromAPI(obj)
		team = &t
	}
	return Driver{
		ShortName:   stringField(data, "shortName"),
		Number:      stringField(data, "number"),
		Name:        stringField(data, "name"),
		Surname:     stringField(data, "surname"),
		Nationality: stringField(data, "nationality"),
		Team:        team,
	}
}

func (d Driver) FlatFields() map[string]any {
	fields := map[string]any{
		"shortName":   d.ShortName,
		"number":      d.Number,
		"name":        d.Name,
		"surname":     d.Surname,
		"nationality": d.Nationality,
	}
	if d.Team != nil {
		fields["team"] = *d.Team
	}
	return fields
}

// Circuit is a race track. The API serves country either as a plain
// string or as an object exposing a name field, depending on the
// endpoint variant.
type Circuit struct {
	ID                 string
	Name               string
	Country            string
	City               *string
	Length             *string
	LapRecord          *string
	FirstYear          *int
	Corners            *int
	FastestLapDriverID *string
	FastestLapTeamID   *string
	FastestLapYear     *int
	URL                *string
}

func CircuitFromAPI(data map[string]any) Circuit {
	country := stringField(data, "country")
	if obj, ok := subObject(data, "country"); ok {
		country = stringField(obj, "name")
	}
	return Circuit{
		ID:                 stringField(data, "circuitId"),
		Name:               stringField(data, "circuitName", "name"),
		Country:            country,
		City:               stringPtrField(data, "city"),
		Length:             stringPtrField(data, "circuitLength"),
		LapRecord:          stringPtrField(data, "lapRecord"),
		FirstYear:          intPtrField(data, "firstParticipationYear"),
		Corners:            intPtrField(data, "corners"),
		FastestLapDriverID: stringPtrField(data, "fastestLapDriverId"),
		FastestLapTeamID:   stringPtrField(data, "fastestLapTeamId"),
		FastestLapYear:     intPtrField(data, "fastestLapYear"),
		URL:                stringPtrField(data, "url"),
	}
}

func (c Circuit) FlatFields() map[string]any {
	fields := map[string]any{
		"circuitId":   c.ID,
		"circuitName": c.Name,
		"country":     c.Country,
	}
	if c.City != nil {
		fields["city"] = *c.City
	}
	if c.Length != nil {
		fields["circuitLength"] = *c.Length
	}
	if c.LapRecord != nil {
		fields["lapRecord"] = *c.LapRecord
	}
	if c.FirstYear != nil {
		fields["firstParticipationYear"] = *c.FirstYear
	}
	if c.Corners != nil {
		fields["corners"] = *c.Corners
	}
	if c.FastestLapDriverID != nil {
		fields["fastestLapDriverId"] = *c.FastestLapDriverID
	}
	if c.FastestLapTeamID != nil {
		fields["fastestLapTeamId"] = *c.FastestLapTeamID
	}
	if c.FastestLapYear != nil {
		fields["fastestLapYear"] = *c.FastestLapYear
	}
	if c.URL != nil {
		fields["url"] = *c.URL
	}
	return fields
}
