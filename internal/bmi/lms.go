package bmi

import (
	"math"

	"github.com/misterclayt0n/fitcalc/internal/models"
)

const (
	MinMonth = 24
	MaxMonth = 251
	// Entries per sex in a complete reference.
	MonthsPerSex = MaxMonth - MinMonth + 1
)

// LMS holds the Box-Cox power, median and coefficient of variation of the
// reference distribution for one sex and month.
type LMS struct {
	L float64
	M float64
	S float64
}

// Valid rejects rows that cannot be used for the transform.
func (r LMS) Valid() bool {
	for _, v := range []float64{r.L, r.M, r.S} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.M > 0 && r.S > 0
}

// Provider serves reference rows. ok is false when the row is unknown,
// which sends the engine to the proxy table.
type Provider interface {
	Lookup(sex models.Sex, month int) (LMS, bool)
}

// MonthForAge converts an age in years to the nearest reference month,
// clamped to the supported range.
func MonthForAge(ageYears float64) int {
	m := int(math.Round(ageYears * 12))
	if m < MinMonth {
		return MinMonth
	}
	if m > MaxMonth {
		return MaxMonth
	}
	return m
}

// ZScore applies the LMS power transform.
func (r LMS) ZScore(bmi float64) float64 {
	if isZero(r.L) {
		return math.Log(bmi/r.M) / r.S
	}
	return (math.Pow(bmi/r.M, r.L) - 1) / (r.L * r.S)
}

// ValueAt inverts the transform: the BMI whose Z-score is z.
// It returns NaN when the inverse is undefined for this row.
func (r LMS) ValueAt(z float64) float64 {
	if isZero(r.L) {
		return r.M * math.Exp(r.S*z)
	}
	base := 1 + r.L*r.S*z
	if base <= 0 {
		return math.NaN()
	}
	return r.M * math.Pow(base, 1/r.L)
}

func isZero(v float64) bool {
	return math.Abs(v) < 1e-12
}
