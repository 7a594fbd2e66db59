package onerm

import (
	"math"

	"github.com/misterclayt0n/fitcalc/internal/units"
)

const (
	MinReps = 1
	MaxReps = 20
	MinRPE  = 6
	MaxRPE  = 10

	// Reps in reserve counted from RPE are capped at this value.
	maxRIR = 4

	TrainingMaxShare = 0.90
)

// Formula is one published 1RM estimator. w is the working weight, r the reps to failure.
type Formula struct {
	Name     string
	Estimate func(w, r float64) float64
}

var Formulas = []Formula{
	{"Epley", func(w, r float64) float64 { return w * (1 + r/30) }},
	{"Brzycki", func(w, r float64) float64 { return w * 36 / (37 - r) }},
	{"Lander", func(w, r float64) float64 { return w / (1.013 - 0.0267123*r) }},
	{"Lombardi", func(w, r float64) float64 { return w * math.Pow(r, 0.10) }},
	{"Mayhew", func(w, r float64) float64 { return 100 * w / (52.2 + 41.9*math.Exp(-0.055*r)) }},
	{"O'Conner", func(w, r float64) float64 { return w * (1 + 0.025*r) }},
	{"Wathan", func(w, r float64) float64 { return 100 * w / (48.8 + 53.8*math.Exp(-0.075*r)) }},
	{"McGlothin", func(w, r float64) float64 { return 100 * w / (101.3 - 2.67123*r) }},
}

type Estimate struct {
	Formula string
	Kg      float64
}

// EffectiveReps estimates reps to failure. With RPE, reps in reserve are
// 10 - RPE (0..4) and the total is kept within 1..20.
func EffectiveReps(reps int, rpe float64, useRPE bool) float64 {
	if !useRPE {
		return float64(reps)
	}
	rir := units.Clamp(10-rpe, 0, maxRIR)
	return units.Clamp(float64(reps)+rir, MinReps, MaxReps)
}

// EstimateAll runs every formula and keeps only finite, positive results.
func EstimateAll(weightKg, reps float64) []Estimate {
	out := make([]Estimate, 0, len(Formulas))
	for _, f := range Formulas {
		kg := f.Estimate(weightKg, reps)
		if math.IsNaN(kg) || math.IsInf(kg, 0) || kg <= 0 {
			continue
		}
		out = append(out, Estimate{Formula: f.Name, Kg: kg})
	}
	return out
}

// Average is the arithmetic mean of the estimates, 0 when there are none.
func Average(estimates []Estimate) float64 {
	if len(estimates) == 0 {
		return 0
	}
	var sum float64
	for _, e := range estimates {
		sum += e.Kg
	}
	return sum / float64(len(estimates))
}

func TrainingMax(avgKg float64) float64 {
	return avgKg * TrainingMaxShare
}

type PercentRow struct {
	Percent int
	Kg      float64
}

// PercentTable lists 50% to 100% of the 1RM in steps of 5.
func PercentTable(avgKg float64) []PercentRow {
	rows := make([]PercentRow, 0, 11)
	for p := 50; p <= 100; p += 5 {
		rows = append(rows, PercentRow{Percent: p, Kg: avgKg * float64(p) / 100})
	}
	return rows
}

type RepsRow struct {
	Reps int
	Kg   float64
}

// LoadForReps inverts Epley: the load that allows reps at a given 1RM.
func LoadForReps(oneRM float64, reps int) float64 {
	return oneRM / (1 + float64(reps)/30)
}

// RepsTable lists the Epley load for 1 to 12 reps.
func RepsTable(avgKg float64) []RepsRow {
	rows := make([]RepsRow, 0, 12)
	for r := 1; r <= 12; r++ {
		rows = append(rows, RepsRow{Reps: r, Kg: LoadForReps(avgKg, r)})
	}
	return rows
}
