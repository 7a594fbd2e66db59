package models

import "time"

const (
	KindBMI      = "bmi"
	KindCalories = "calories"
	KindMacros   = "macros"
	KindFFMI     = "ffmi"
	KindOneRM    = "1rm"
)

// Calculation is one saved calculator run.
type Calculation struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Input     string    `json:"input"`
	Result    string    `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile holds the last-used measurements so calculators can default from it.
type Profile struct {
	Sex       string    `toml:"sex"`
	AgeYears  float64   `toml:"age_years"`
	HeightCm  float64   `toml:"height_cm"`
	WeightKg  float64   `toml:"weight_kg"`
	Units     string    `toml:"units"`
	// GoalRate is the weekly weight change in the mass unit of Units.
	GoalRate  float64   `toml:"goal_rate"`
	UpdatedAt time.Time `toml:"updated_at"`
}

// Anthropometrics converts the saved profile; an unparseable sex falls back to male.
func (p Profile) Anthropometrics() Anthropometrics {
	sex, _ := ParseSex(p.Sex)
	return Anthropometrics{
		AgeYears: p.AgeYears,
		HeightCm: p.HeightCm,
		WeightKg: p.WeightKg,
		Sex:      sex,
	}
}

//
// For TOML parsing only
//

// LMSEntryTOML is one month of a growth reference in a dataset file.
type LMSEntryTOML struct {
	L float64 `toml:"l" yaml:"l" json:"l"`
	M float64 `toml:"m" yaml:"m" json:"m"`
	S float64 `toml:"s" yaml:"s" json:"s"`
}

// LMSDatasetTOML is the on-disk reference dataset: 228 entries per sex, months 24 to 251.
type LMSDatasetTOML struct {
	Male   []LMSEntryTOML `toml:"male" yaml:"male" json:"male"`
	Female []LMSEntryTOML `toml:"female" yaml:"female" json:"female"`
}
