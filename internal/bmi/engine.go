package bmi

import (
	"math"

	"github.com/misterclayt0n/fitcalc/internal/models"
	"github.com/misterclayt0n/fitcalc/internal/units"
)

type Method int

const (
	MethodNone Method = iota
	MethodLMS
	MethodProxy
)

func (m Method) String() string {
	switch m {
	case MethodLMS:
		return "LMS reference"
	case MethodProxy:
		return "IOTF-style proxy"
	}
	return "none"
}

// Percentile is a child/teen BMI-for-age result. Z is NaN on the proxy path.
type Percentile struct {
	Value    float64
	Z        float64
	Category PercentileCategory
	Method   Method
}

// Thresholds are the BMI values at the 5th, 85th and 95th percentile.
type Thresholds struct {
	P5     float64
	P85    float64
	P95    float64
	Method Method
}

var (
	z5  = NormalQuantile(0.05)
	z85 = NormalQuantile(0.85)
	z95 = NormalQuantile(0.95)
)

// Engine evaluates BMI against an optional LMS reference. The zero value and
// an engine built with a nil provider both work, always via the proxy.
type Engine struct {
	provider Provider
}

func NewEngine(p Provider) *Engine {
	return &Engine{provider: p}
}

func (e *Engine) lookup(ageYears float64, sex models.Sex) (LMS, bool) {
	if e == nil || e.provider == nil {
		return LMS{}, false
	}
	row, ok := e.provider.Lookup(sex, MonthForAge(ageYears))
	if !ok || !row.Valid() {
		return LMS{}, false
	}
	return row, true
}

// ChildPercentile places bmi on the BMI-for-age distribution for sex at ageYears.
func (e *Engine) ChildPercentile(ageYears float64, sex models.Sex, bmi float64) Percentile {
	row, ok := e.lookup(ageYears, sex)
	return childPercentile(row, ok, ageYears, sex, bmi)
}

func childPercentile(row LMS, ok bool, ageYears float64, sex models.Sex, bmi float64) Percentile {
	if !usable(bmi) {
		return Percentile{Value: math.NaN(), Z: math.NaN(), Category: PercentileUnavailable}
	}

	if ok {
		z := row.ZScore(bmi)
		if !math.IsNaN(z) && !math.IsInf(z, 0) {
			p := units.Clamp(100*NormalCDF(z), 0, 100)
			return Percentile{Value: p, Z: z, Category: PercentileCategoryFor(p), Method: MethodLMS}
		}
	}

	p := units.Clamp(ProxyPercentile(bmi, ProxyCutoffs(ageYears, sex)), 0, 100)
	return Percentile{Value: p, Z: math.NaN(), Category: PercentileCategoryFor(p), Method: MethodProxy}
}

// Thresholds returns the BMI at the 5th, 85th and 95th percentile for sex
// and age, by inverting the LMS transform or from the proxy cutoffs.
func (e *Engine) Thresholds(ageYears float64, sex models.Sex) Thresholds {
	row, ok := e.lookup(ageYears, sex)
	return thresholds(row, ok, ageYears, sex)
}

func thresholds(row LMS, ok bool, ageYears float64, sex models.Sex) Thresholds {
	if ok {
		t := Thresholds{
			P5:     row.ValueAt(z5),
			P85:    row.ValueAt(z85),
			P95:    row.ValueAt(z95),
			Method: MethodLMS,
		}
		if usable(t.P5) && usable(t.P85) && usable(t.P95) {
			return t
		}
	}

	c := ProxyCutoffs(ageYears, sex)
	return Thresholds{P5: c.Underweight, P85: c.Overweight, P95: c.Obesity, Method: MethodProxy}
}

// Assessment is everything the BMI view shows for one input snapshot.
type Assessment struct {
	BMI      float64
	AgeYears float64
	Adult    bool

	AdultCategory AdultCategory
	Percentile    Percentile
	Thresholds    Thresholds

	// Healthy weight range for the given height, in kg.
	HealthyMinKg float64
	HealthyMaxKg float64
}

// Category is the label that applies to this assessment.
func (a Assessment) Category() string {
	if a.Adult {
		return a.AdultCategory.String()
	}
	return a.Percentile.Category.String()
}

// Assess computes BMI and its interpretation. Age is clamped to 2..80; from
// age 20 adult categories always apply.
func (e *Engine) Assess(in models.Anthropometrics) Assessment {
	return e.assess(in, Compute(in.WeightKg, in.HeightCm))
}

// AssessImperial is Assess with BMI taken from whole pounds and inches
// (703·lb/in²) instead of kilograms and centimeters.
func (e *Engine) AssessImperial(in models.Anthropometrics, lb, inches float64) Assessment {
	return e.assess(in, ComputeImperial(math.Round(lb), math.Round(inches)))
}

func (e *Engine) assess(in models.Anthropometrics, bmi float64) Assessment {
	in = in.WithAgeRange(MinAge, MaxAge)
	a := Assessment{
		BMI:      bmi,
		AgeYears: in.AgeYears,
		Adult:    in.AgeYears >= AdultAge,
	}

	if a.Adult {
		a.AdultCategory = AdultCategoryFor(a.BMI)
		a.Percentile = Percentile{Value: math.NaN(), Z: math.NaN()}
		if in.HeightCm > 0 {
			a.HealthyMinKg = WeightForBMI(AdultHealthyMin, in.HeightCm)
			a.HealthyMaxKg = WeightForBMI(AdultHealthyMax, in.HeightCm)
		}
		return a
	}

	// Percentile and cutoffs share one lookup.
	row, ok := e.lookup(in.AgeYears, in.Sex)
	a.Percentile = childPercentile(row, ok, in.AgeYears, in.Sex, a.BMI)
	a.Thresholds = thresholds(row, ok, in.AgeYears, in.Sex)
	if in.HeightCm > 0 {
		a.HealthyMinKg = WeightForBMI(a.Thresholds.P5, in.HeightCm)
		a.HealthyMaxKg = WeightForBMI(a.Thresholds.P85, in.HeightCm)
	}
	return a
}
