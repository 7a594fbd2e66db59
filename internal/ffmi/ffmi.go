package ffmi

import (
	"github.com/misterclayt0n/fitcalc/internal/models"
	"github.com/misterclayt0n/fitcalc/internal/units"
)

const (
	// Reference height for the normalized index, in meters.
	referenceHeightM = 1.8
	heightSlope      = 6.1

	SpectrumMin = 12.0
	SpectrumMax = 28.0
)

var categoryNames = []string{"Below average", "Average", "Fit", "Muscular", "Very muscular", "Exceptional"}

var (
	maleThresholds   = []float64{17, 19, 21, 23, 25}
	femaleThresholds = []float64{14, 16, 18, 20, 22}
)

// Thresholds returns the lower bounds of the five upper categories for sex.
func Thresholds(sex models.Sex) []float64 {
	if sex == models.Female {
		return femaleThresholds
	}
	return maleThresholds
}

// Categories lists category names from lowest to highest.
func Categories() []string {
	return categoryNames
}

type Result struct {
	BMI        float64
	LeanMassKg float64
	FFMI       float64
	Normalized float64
	Category   string
	// Position of Normalized on the 12-28 spectrum, 0-100.
	SpectrumPct float64
}

// Calculate derives fat-free mass, FFMI and FFMI normalized to 1.8 m.
// Each step is rounded to one decimal before the next, and the category is
// read from the normalized value. Body fat is clamped to 0-100%.
func Calculate(in models.Anthropometrics, bodyFatPct float64) Result {
	if !in.Valid() {
		return Result{}
	}
	h := in.HeightCm / 100
	bf := units.Clamp(bodyFatPct, 0, 100) / 100

	r := Result{
		BMI:        units.Round1(in.WeightKg / (h * h)),
		LeanMassKg: units.Round1(in.WeightKg * (1 - bf)),
	}
	r.FFMI = units.Round1(r.LeanMassKg / (h * h))
	r.Normalized = units.Round1(r.FFMI + heightSlope*(referenceHeightM-h))
	r.Category = Category(r.Normalized, in.Sex)
	r.SpectrumPct = SpectrumPosition(r.Normalized)
	return r
}

func Category(normalized float64, sex models.Sex) string {
	i := 0
	for _, t := range Thresholds(sex) {
		if normalized < t {
			break
		}
		i++
	}
	return categoryNames[i]
}

func SpectrumPosition(normalized float64) float64 {
	v := units.Clamp(normalized, SpectrumMin, SpectrumMax)
	return (v - SpectrumMin) / (SpectrumMax - SpectrumMin) * 100
}
