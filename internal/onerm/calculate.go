package onerm

import (
	"fmt"
	"math"
	"slices"

	"github.com/misterclayt0n/fitcalc/internal/units"
)

var (
	MetricIncrements   = []float64{0.5, 1, 2.5, 5}
	ImperialIncrements = []float64{1, 2.5, 5, 10}
)

// DefaultIncrement is the rounding step a unit system starts with.
func DefaultIncrement(s units.System) float64 {
	if s == units.Imperial {
		return 5
	}
	return 2.5
}

// ValidIncrement reports whether step is one of the offered plate increments for s.
func ValidIncrement(s units.System, step float64) bool {
	if s == units.Imperial {
		return slices.Contains(ImperialIncrements, step)
	}
	return slices.Contains(MetricIncrements, step)
}

// Input is one snapshot of the 1RM form. Weight is in the units of System.
type Input struct {
	Weight    float64
	Reps      int
	RPE       float64
	UseRPE    bool
	System    units.System
	Increment float64
}

type Result struct {
	WorkingKg     float64
	EffectiveReps float64
	Estimates     []Estimate
	AverageKg     float64
	TrainingMaxKg float64
	Percentages   []PercentRow
	RepsLoads     []RepsRow
}

// Calculate recomputes every derived value for one input snapshot. All
// values in the result are kilograms.
func Calculate(in Input) Result {
	r := Result{
		WorkingKg:     units.ToKg(in.System, in.Weight),
		EffectiveReps: EffectiveReps(in.Reps, in.RPE, in.UseRPE),
	}
	r.Estimates = EstimateAll(r.WorkingKg, r.EffectiveReps)
	r.AverageKg = Average(r.Estimates)
	r.TrainingMaxKg = TrainingMax(r.AverageKg)
	r.Percentages = PercentTable(r.AverageKg)
	r.RepsLoads = RepsTable(r.AverageKg)
	return r
}

// DisplayLoad converts kg to the display unit first and rounds to step there.
func DisplayLoad(kg float64, s units.System, step float64) float64 {
	return units.RoundToIncrement(units.FromKg(s, kg), step)
}

// FormatLoad renders a load the way the tables show it: one decimal in kg,
// whole pounds in lb.
func FormatLoad(kg float64, s units.System, step float64) string {
	v := DisplayLoad(kg, s, step)
	if s == units.Imperial {
		return fmt.Sprintf("%d lb", int(math.Round(v)))
	}
	return fmt.Sprintf("%.1f kg", v)
}
