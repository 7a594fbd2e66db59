// Package bmi computes body mass index, adult categories and child/teen
// BMI-for-age percentiles.
//
// Percentiles come from an LMS growth reference when a Provider has a row for
// the requested sex and month, and from an IOTF-style cutoff table otherwise.
// Nothing in this package returns an error: degenerate inputs produce the
// Unavailable category.
package bmi

import (
	"math"

	"github.com/misterclayt0n/fitcalc/internal/units"
)

const (
	MinAge = 2
	MaxAge = 80
	// From this age on, adult categories apply regardless of reference data.
	AdultAge = 20

	AdultHealthyMin = 18.5
	AdultHealthyMax = 24.9
)

// Unavailable is how an uncategorized value is rendered.
const Unavailable = "—"

// Compute returns weight / height² in kg/m², rounded to one decimal.
// Non-positive inputs give 0.
func Compute(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	return units.Round1(weightKg / (m * m))
}

// ComputeImperial uses the 703·lb/in² form on whole pounds and inches.
func ComputeImperial(lb, inches float64) float64 {
	if lb <= 0 || inches <= 0 {
		return 0
	}
	return units.Round1(703 * lb / (inches * inches))
}

// WeightForBMI is the body weight in kg that gives bmi at the given height.
func WeightForBMI(bmi, heightCm float64) float64 {
	m := heightCm / 100
	return bmi * m * m
}

func usable(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

type AdultCategory int

const (
	AdultUnavailable AdultCategory = iota
	Underweight
	Normal
	Overweight
	ObesityI
	ObesityII
	ObesityIII
)

var adultNames = [...]string{
	AdultUnavailable: Unavailable,
	Underweight:      "Underweight",
	Normal:           "Normal",
	Overweight:       "Overweight",
	ObesityI:         "Obesity (Class I)",
	ObesityII:        "Obesity (Class II)",
	ObesityIII:       "Obesity (Class III)",
}

func (c AdultCategory) String() string {
	if c < 0 || int(c) >= len(adultNames) {
		return Unavailable
	}
	return adultNames[c]
}

// AdultCategoryFor maps a BMI to its adult band. Bands are closed-open,
// the top band is open-ended.
func AdultCategoryFor(bmi float64) AdultCategory {
	if !usable(bmi) {
		return AdultUnavailable
	}
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return Normal
	case bmi < 30:
		return Overweight
	case bmi < 35:
		return ObesityI
	case bmi < 40:
		return ObesityII
	default:
		return ObesityIII
	}
}

type PercentileCategory int

const (
	PercentileUnavailable PercentileCategory = iota
	ChildUnderweight
	Healthy
	ChildOverweight
	Obesity
)

var percentileNames = [...]string{
	PercentileUnavailable: Unavailable,
	ChildUnderweight:      "Underweight",
	Healthy:               "Healthy weight",
	ChildOverweight:       "Overweight",
	Obesity:               "Obesity",
}

func (c PercentileCategory) String() string {
	if c < 0 || int(c) >= len(percentileNames) {
		return Unavailable
	}
	return percentileNames[c]
}

// PercentileCategoryFor maps a BMI-for-age percentile to its band:
// <5, 5 to <85, 85 to <95, and 95 and above.
func PercentileCategoryFor(p float64) PercentileCategory {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return PercentileUnavailable
	}
	switch {
	case p < 5:
		return ChildUnderweight
	case p < 85:
		return Healthy
	case p < 95:
		return ChildOverweight
	default:
		return Obesity
	}
}
