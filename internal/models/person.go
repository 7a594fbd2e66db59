package models

import (
	"fmt"
	"strings"
)

type Sex int

const (
	Male Sex = iota
	Female
)

func (s Sex) String() string {
	if s == Female {
		return "female"
	}
	return "male"
}

func ParseSex(v string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "m", "male", "man":
		return Male, nil
	case "f", "female", "woman":
		return Female, nil
	}
	return Male, fmt.Errorf("unknown sex %q (want male or female)", v)
}

// Anthropometrics is one snapshot of body measurements. Height is in
// centimeters and weight in kilograms regardless of the display unit.
type Anthropometrics struct {
	AgeYears float64 `json:"age_years"`
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
	Sex      Sex     `json:"sex"`
}

// Valid reports whether height and weight are usable.
func (a Anthropometrics) Valid() bool {
	return a.HeightCm > 0 && a.WeightKg > 0
}

// WithAgeRange returns a copy with the age clamped to [lo, hi].
func (a Anthropometrics) WithAgeRange(lo, hi float64) Anthropometrics {
	if a.AgeYears < lo {
		a.AgeYears = lo
	}
	if a.AgeYears > hi {
		a.AgeYears = hi
	}
	return a
}
