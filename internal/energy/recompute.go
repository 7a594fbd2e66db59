package energy

import "math"

type Mode int

const (
	// ModeCalculate derives calories from body data, activity and goal.
	ModeCalculate Mode = iota
	// ModeCustom takes the calorie target as given.
	ModeCustom
)

// MacroInput is one snapshot of the macro form. The caller owns it; every
// change goes through Recompute.
type MacroInput struct {
	Calories   CalorieInput
	Mode       Mode
	CustomKcal float64

	Macros MacroSplit
	// Locked makes carbs follow the calorie target.
	Locked bool
	// Diet, when set, replaces protein and fat before carbs are balanced.
	Diet string
}

type MacroResult struct {
	Plan       CaloriePlan
	TargetKcal float64
	Macros     MacroSplit

	MacroKcal float64
	// DiffKcal is target minus the calories of the split.
	DiffKcal float64
	// CarbsFloored is set when locked and protein plus fat already reach the target.
	CarbsFloored bool

	ProteinShare int
	FatShare     int
	CarbsShare   int
}

// Recompute derives every dependent value of the macro view from in:
// calories first, then the diet preset, then carbs when locked.
func Recompute(in MacroInput) (MacroResult, error) {
	var r MacroResult
	r.Plan = PlanCalories(in.Calories)
	if in.Mode == ModeCustom {
		r.TargetKcal = math.Max(0, math.Round(in.CustomKcal))
	} else {
		r.TargetKcal = r.Plan.TargetKcal
	}

	r.Macros = in.Macros
	if in.Diet != "" {
		d, err := FindDiet(in.Diet)
		if err != nil {
			return MacroResult{}, err
		}
		r.Macros = d.Apply(r.Macros, in.Calories.Person.WeightKg, r.TargetKcal)
	}

	if in.Locked {
		r.Macros.CarbsG, r.CarbsFloored = ReconcileCarbs(r.TargetKcal, r.Macros.ProteinG, r.Macros.FatG)
		r.CarbsFloored = r.CarbsFloored && r.Macros.CarbsG == 0
	}

	r.MacroKcal = r.Macros.Calories()
	r.DiffKcal = r.TargetKcal - r.MacroKcal
	r.ProteinShare = Share(r.Macros.ProteinKcal(), r.TargetKcal)
	r.FatShare = Share(r.Macros.FatKcal(), r.TargetKcal)
	r.CarbsShare = Share(r.Macros.CarbsKcal(), r.TargetKcal)
	return r, nil
}
