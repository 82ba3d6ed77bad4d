package helper

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// FormatLapTime rewrites a "M:SS.mmm" lap time as "1m 23.456s" for
// display. Anything that does not parse is returned untouched.
func FormatLapTime(lapTime string) string {
	if lapTime == "" {
		return ""
	}
	parts := strings.Split(lapTime, ":")
	if len(parts) != 2 {
		return lapTime
	}
	minutes, err := strconv.Atoi(parts[0])
	if err != nil {
		return lapTime
	}
	seconds, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return lapTime
	}
	return fmt.Sprintf("%dm %.3fs", minutes, seconds)
}

// DriverShortName formats a driver as "L. Hamilton".
func DriverShortName(name, surname string) string {
	if name == "" {
		return surname
	}
	if surname == "" {
		return name
	}
	return fmt.Sprintf("%s. %s", strings.ToUpper(name[:1]), surname)
}

// DriverCode builds a three-letter code from the driver name, used in
// narrow table columns when the API gives no shortName.
func DriverCode(name, surname string) string {
	if surname == "" {
		if name == "" {
			return ""
		}
		if len(name) > 3 {
			return strings.ToUpper(name[:3])
		}
		return strings.ToUpper(name)
	}
	code := ""
	if name != "" {
		code = name[:1]
	}
	if len(surname) > 2 {
		code += surname[:2]
	} else {
		code += surname
	}
	return strings.ToUpper(code)
}

// ToID hashes a name into a short stable identifier.
func ToID(name string) string {
	h := fnv.New32a()
	h.Write([]byte(name))
	return fmt.Sprint(h.Sum32())
}
