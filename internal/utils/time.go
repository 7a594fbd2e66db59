package utils

import (
	"time"
)

// LoadLocation resolves a configured timezone name. Empty and unknown names
// fall back to the local zone.
func LoadLocation(name string) *time.Location {
	if name == "" || name == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}

// FormatIn returns the provided time formatted in the given location.
func FormatIn(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(time.RFC1123)
}
