package energy

import (
	"fmt"
	"math"
	"strings"

	"github.com/misterclayt0n/fitcalc/internal/units"
)

const (
	KcalPerGramProtein = 4
	KcalPerGramFat     = 9
	KcalPerGramCarbs   = 4

	MaxCarbsG = 1000

	MinProteinG = 40
	MaxProteinG = 300
	MinFatG     = 20
	MaxFatG     = 200
)

type MacroSplit struct {
	ProteinG float64
	FatG     float64
	CarbsG   float64
}

func (m MacroSplit) ProteinKcal() float64 { return m.ProteinG * KcalPerGramProtein }
func (m MacroSplit) FatKcal() float64 { return m.FatG * KcalPerGramFat }
func (m MacroSplit) CarbsKcal() float64 { return m.CarbsG * KcalPerGramCarbs }

// Calories is the energy of the split: protein×4 + fat×9 + carbs×4.
func (m MacroSplit) Calories() float64 {
	return m.ProteinKcal() + m.FatKcal() + m.CarbsKcal()
}

// Share is the whole-percent share of part in total, 0 for a non-positive total.
func Share(partKcal, totalKcal float64) int {
	if totalKcal <= 0 {
		return 0
	}
	return int(math.Round(partKcal / totalKcal * 100))
}

// GramsPerKg relates a gram amount to body weight, 0 for a non-positive weight.
func GramsPerKg(grams, weightKg float64) float64 {
	if weightKg <= 0 {
		return 0
	}
	return grams / weightKg
}

// ReconcileCarbs fills the calories left after protein and fat with carbs,
// clamped to 0..1000 g. floored reports that protein and fat alone reach
// the target, leaving no room for carbs.
func ReconcileCarbs(targetKcal, proteinG, fatG float64) (carbsG float64, floored bool) {
	remaining := targetKcal - (proteinG*KcalPerGramProtein + fatG*KcalPerGramFat)
	carbsG = units.Clamp(math.Round(remaining/KcalPerGramCarbs), 0, MaxCarbsG)
	return carbsG, remaining <= 0
}

// Diet is a macro preset: protein by body weight, fat as a share of calories.
type Diet struct {
	Key           string
	Label         string
	ProteinGPerKg float64
	FatShare      float64
	Blurb         string
}

const DietCustom = "custom"

var Diets = []Diet{
	{"balanced", "Balanced", 1.8, 0.30, "~1.8 g/kg protein, ~30% kcal fat, rest carbs."},
	{"high-protein", "High Protein", 2.2, 0.25, "More protein, moderate fat (~25%)."},
	{"low-fat", "Low Fat", 2.0, 0.20, "Lower fat (~20%) to push more carbs."},
	{"endurance", "Endurance / High-Carb", 1.6, 0.25, "Prioritizes carbs for training."},
	{"cut", "Cut (Lean Out)", 2.4, 0.25, "Higher protein for satiety/retention."},
	{"keto", "Keto-ish", 1.8, 0.65, "High fat (~65%), minimal carbs."},
	{DietCustom, "Custom (no preset)", 0, 0, "No automatic changes to macros."},
}

func FindDiet(key string) (Diet, error) {
	key = strings.NewReplacer("_", "-", " ", "-").Replace(strings.ToLower(strings.TrimSpace(key)))
	for _, d := range Diets {
		if d.Key == key {
			return d, nil
		}
	}
	return Diet{}, fmt.Errorf("unknown diet preset %q", key)
}

// Apply sets protein and fat for the preset. The custom preset leaves m unchanged.
func (d Diet) Apply(m MacroSplit, weightKg, targetKcal float64) MacroSplit {
	if d.Key == DietCustom || d.Key == "" {
		return m
	}
	m.ProteinG = units.Clamp(math.Round(weightKg*d.ProteinGPerKg), MinProteinG, MaxProteinG)
	m.FatG = units.Clamp(math.Round(math.Max(0, targetKcal)*d.FatShare/KcalPerGramFat), MinFatG, MaxFatG)
	return m
}
