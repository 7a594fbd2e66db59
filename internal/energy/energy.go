// Package energy estimates daily energy needs and balances macronutrients
// against a calorie target.
package energy

import (
	"math"

	"github.com/misterclayt0n/fitcalc/internal/models"
	"github.com/misterclayt0n/fitcalc/internal/units"
)

const (
	MinAge = 15
	MaxAge = 80

	minTargetKcal = 1000
	maxTargetKcal = 6000
	kcalSwing     = 1500
)

// BMR is the Mifflin-St Jeor basal metabolic rate, rounded to whole kcal.
func BMR(weightKg, heightCm, ageYears float64, sex models.Sex) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*ageYears
	if sex == models.Male {
		return math.Round(base + 5)
	}
	return math.Round(base - 161)
}

func TDEE(bmr, multiplier float64) float64 {
	return bmr * multiplier
}

// TargetCalories adds the daily share of the weekly mass change to tdee.
// rate is in mass units per week, kcalPerUnit the energy of one such unit.
func TargetCalories(tdee, rate, kcalPerUnit float64) float64 {
	return math.Max(0, math.Round(tdee+kcalPerUnit*rate/7))
}

// RateFromCalories is the inverse of TargetCalories, to two decimals.
func RateFromCalories(tdee, kcal, kcalPerUnit float64) float64 {
	if kcalPerUnit == 0 {
		return 0
	}
	return units.Round2((kcal - tdee) * 7 / kcalPerUnit)
}

// ConvertRate keeps a weekly goal rate equivalent across a unit switch.
func ConvertRate(rate float64, from, to units.System) float64 {
	if from == to {
		return rate
	}
	if to == units.Imperial {
		return units.Round2(rate * units.LbPerKg)
	}
	return units.Round2(rate / units.LbPerKg)
}

type Bounds struct {
	Min  float64
	Max  float64
	Step float64
}

// Contains reports whether v lies within [Min, Max].
func (b Bounds) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// CalorieBounds is the target-calorie slider range around tdee.
func CalorieBounds(tdee float64) Bounds {
	return Bounds{
		Min:  math.Max(minTargetKcal, tdee-kcalSwing),
		Max:  math.Min(maxTargetKcal, tdee+kcalSwing),
		Step: 10,
	}
}

// RateBounds is the goal-rate slider range; loss is allowed to be faster than gain.
func RateBounds(s units.System) Bounds {
	if s == units.Imperial {
		return Bounds{Min: -2.5, Max: 1.5, Step: 0.5}
	}
	return Bounds{Min: -1.25, Max: 0.75, Step: 0.25}
}

// GoalLabel describes the direction of a weekly rate.
func GoalLabel(rate float64) string {
	switch {
	case rate == 0:
		return "Maintain"
	case rate < 0:
		return "Lose"
	default:
		return "Gain"
	}
}

// CalorieInput is one snapshot of the calorie form. GoalRate is in the
// mass unit of System per week. When HasTarget is set the target calories
// drive and the rate is derived from them.
type CalorieInput struct {
	Person     models.Anthropometrics
	Activity   ActivityLevel
	System     units.System
	GoalRate   float64
	TargetKcal float64
	HasTarget  bool
}

type CaloriePlan struct {
	AgeYears    float64
	BMR         float64
	TDEE        float64
	TargetKcal  float64
	GoalRate    float64
	KcalPerUnit float64
	Calories    Bounds
	Rates       Bounds
}

// PlanCalories recomputes the calorie view for one input snapshot. Age is
// clamped to 15..80. The base TDEE is rounded to whole kcal.
func PlanCalories(in CalorieInput) CaloriePlan {
	p := in.Person.WithAgeRange(MinAge, MaxAge)
	plan := CaloriePlan{
		AgeYears:    p.AgeYears,
		BMR:         BMR(p.WeightKg, p.HeightCm, p.AgeYears, p.Sex),
		KcalPerUnit: units.KcalPerUnitMass(in.System),
		Rates:       RateBounds(in.System),
	}
	plan.TDEE = math.Round(TDEE(plan.BMR, in.Activity.Multiplier()))
	plan.Calories = CalorieBounds(plan.TDEE)

	if in.HasTarget {
		plan.TargetKcal = math.Max(0, math.Round(in.TargetKcal))
		plan.GoalRate = RateFromCalories(plan.TDEE, plan.TargetKcal, plan.KcalPerUnit)
		return plan
	}
	plan.GoalRate = in.GoalRate
	plan.TargetKcal = TargetCalories(plan.TDEE, in.GoalRate, plan.KcalPerUnit)
	return plan
}
