package units

import (
	"fmt"
	"math"
	"strings"
)

const (
	LbPerKg = 2.2046226218
	CmPerIn = 2.54

	// Approximate energy density of body-mass change.
	KcalPerKg = 7700
	KcalPerLb = 3500
)

type System int

const (
	Metric System = iota
	Imperial
)

func (s System) String() string {
	if s == Imperial {
		return "imperial"
	}
	return "metric"
}

// MassUnit returns the short mass label for the system ("kg" or "lb").
func (s System) MassUnit() string {
	if s == Imperial {
		return "lb"
	}
	return "kg"
}

func ParseSystem(v string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "metric", "kg", "si":
		return Metric, nil
	case "imperial", "lb", "lbs", "us":
		return Imperial, nil
	}
	return Metric, fmt.Errorf("unknown unit system %q (want metric or imperial)", v)
}

func KgToLb(kg float64) float64 {
	return kg * LbPerKg
}

func LbToKg(lb float64) float64 {
	return lb / LbPerKg
}

// ToKg converts a mass given in the system's unit to kilograms.
func ToKg(s System, v float64) float64 {
	if s == Imperial {
		return LbToKg(v)
	}
	return v
}

// FromKg converts kilograms to the system's unit.
func FromKg(s System, kg float64) float64 {
	if s == Imperial {
		return KgToLb(kg)
	}
	return kg
}

// CmToFtIn splits a height into whole feet and inches, rounding to the nearest inch first.
func CmToFtIn(cm float64) (ft, in int) {
	total := int(math.Round(cm / CmPerIn))
	ft = total / 12
	return ft, total - ft*12
}

func FtInToCm(ft, in int) float64 {
	return math.Round(float64(ft*12+in) * CmPerIn)
}

// RoundToIncrement rounds value to the nearest multiple of step. A non-positive step is a no-op.
func RoundToIncrement(value, step float64) float64 {
	if step <= 0 {
		return value
	}
	return math.Round(value/step) * step
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// KcalPerUnitMass is the energy of one unit of body mass in the system's unit.
func KcalPerUnitMass(s System) float64 {
	if s == Imperial {
		return KcalPerLb
	}
	return KcalPerKg
}

// DisplayMass converts kilograms to the system's unit, rounded to 0.1 as shown.
// Reading a displayed pound value back stays within 0.1 kg of the input.
func DisplayMass(kg float64, s System) float64 {
	return Round1(FromKg(s, kg))
}

// FormatMass renders kilograms in the system's display unit, one decimal.
func FormatMass(kg float64, s System) string {
	return fmt.Sprintf("%.1f %s", DisplayMass(kg, s), s.MassUnit())
}

// FormatHeight renders centimeters as "175 cm" or "5 ft 9 in".
func FormatHeight(cm float64, s System) string {
	if s == Imperial {
		ft, in := CmToFtIn(cm)
		return fmt.Sprintf("%d ft %d in", ft, in)
	}
	return fmt.Sprintf("%.0f cm", cm)
}
