package charts

import "image/color"

// Team liveries, keyed by team id. Teams outside the map cycle through
// the default palette.
var teamColors = map[string]color.RGBA{
	"mercedes":     {0x00, 0xd2, 0xbe, 0xff},
	"red_bull":     {0x06, 0x00, 0xef, 0xff},
	"ferrari":      {0xdc, 0x00, 0x00, 0xff},
	"mclaren":      {0xff, 0x87, 0x00, 0xff},
	"alpine":       {0x00, 0x90, 0xff, 0xff},
	"aston_martin": {0x00, 0x6f, 0x62, 0xff},
	"williams":     {0x00, 0x5a, 0xff, 0xff},
	"rb":           {0x90, 0x00, 0x00, 0xff},
	"haas":         {0xb6, 0xba, 0xbd, 0xff},
	"sauber":       {0x52, 0xe2, 0x52, 0xff},
}

var defaultPalette = []color.RGBA{
	{0x1f, 0x77, 0xb4, 0xff},
	{0xff, 0x7f, 0x0e, 0xff},
	{0x2c, 0xa0, 0x2c, 0xff},
	{0xd6, 0x27, 0x28, 0xff},
	{0x94, 0x67, 0xbd, 0xff},
	{0x8c, 0x56, 0x4b, 0xff},
	{0xe3, 0x77, 0xc2, 0xff},
	{0x7f, 0x7f, 0x7f, 0xff},
	{0xbc, 0xbd, 0x22, 0xff},
	{0x17, 0xbe, 0xcf, 0xff},
}

// TeamColor picks the livery for a team id, falling back to the
// palette slot for the given index.
func TeamColor(teamID string, index int) color.RGBA {
	if c, ok := teamColors[teamID]; ok {
		return c
	}
	return defaultPalette[index%len(defaultPalette)]
}
