package bmi

import (
	"math"

	"github.com/misterclayt0n/fitcalc/internal/models"
)

// Cutoffs are the BMI values that play the role of adult 18.5, 25 and 30 at a
// given child age. They mark the 5th, 85th and 95th percentile in the proxy.
type Cutoffs struct {
	Underweight float64
	Overweight  float64
	Obesity     float64
}

const (
	proxyMinAge = 2
	proxyMaxAge = 19

	// Outer ends of the first and last proxy band.
	proxyFloorBMI   = 10.0
	proxyCeilingGap = 10.0
)

// Indexed by integer age minus proxyMinAge.
var proxyMale = [...]Cutoffs{
	{14.6, 18.4, 20.1}, // 2
	{14.2, 17.9, 19.6},
	{13.9, 17.6, 19.3},
	{13.8, 17.9, 20.0}, // 5
	{13.8, 18.6, 21.1},
	{13.9, 19.3, 22.3},
	{14.1, 20.1, 23.5},
	{14.4, 20.9, 24.6},
	{14.8, 21.8, 25.6}, // 10
	{15.2, 22.6, 26.6},
	{15.7, 23.4, 27.5},
	{16.3, 24.1, 28.3},
	{16.9, 24.7, 29.0},
	{17.4, 25.2, 29.6}, // 15
	{17.9, 25.6, 30.1},
	{18.2, 26.0, 30.5},
	{18.5, 26.4, 30.8},
	{18.7, 26.7, 31.1}, // 19
}

var proxyFemale = [...]Cutoffs{
	{14.4, 18.0, 19.8}, // 2
	{14.0, 17.6, 19.4},
	{13.7, 17.4, 19.3},
	{13.6, 17.7, 20.1}, // 5
	{13.6, 18.3, 21.2},
	{13.7, 19.1, 22.5},
	{14.0, 19.9, 23.8},
	{14.4, 20.8, 25.0},
	{14.8, 21.7, 26.1}, // 10
	{15.3, 22.6, 27.1},
	{15.8, 23.4, 28.0},
	{16.3, 24.1, 28.8},
	{16.8, 24.7, 29.4},
	{17.2, 25.2, 29.9}, // 15
	{17.5, 25.6, 30.3},
	{17.7, 25.9, 30.6},
	{17.9, 26.2, 30.9},
	{18.0, 26.4, 31.1}, // 19
}

// ProxyCutoffs interpolates the anchor table linearly at ageYears, clamped to 2..19.
func ProxyCutoffs(ageYears float64, sex models.Sex) Cutoffs {
	table := proxyMale[:]
	if sex == models.Female {
		table = proxyFemale[:]
	}

	age := math.Max(proxyMinAge, math.Min(proxyMaxAge, ageYears))
	lo := int(math.Floor(age)) - proxyMinAge
	if lo >= len(table)-1 {
		return table[len(table)-1]
	}
	frac := age - math.Floor(age)
	a, b := table[lo], table[lo+1]
	return Cutoffs{
		Underweight: lerp(a.Underweight, b.Underweight, frac),
		Overweight:  lerp(a.Overweight, b.Overweight, frac),
		Obesity:     lerp(a.Obesity, b.Obesity, frac),
	}
}

// ProxyPercentile places bmi inside the four bands
// [floor,u]→[0,5], [u,ow]→[5,85], [ow,ob]→[85,95], [ob,ceil]→[95,100].
// The bands are a smooth display approximation, not a clinical method.
func ProxyPercentile(bmi float64, c Cutoffs) float64 {
	ceiling := c.Obesity + proxyCeilingGap
	switch {
	case bmi <= proxyFloorBMI:
		return 0
	case bmi < c.Underweight:
		return band(bmi, proxyFloorBMI, c.Underweight, 0, 5)
	case bmi < c.Overweight:
		return band(bmi, c.Underweight, c.Overweight, 5, 85)
	case bmi < c.Obesity:
		return band(bmi, c.Overweight, c.Obesity, 85, 95)
	case bmi < ceiling:
		return band(bmi, c.Obesity, ceiling, 95, 100)
	default:
		return 100
	}
}

func band(x, x0, x1, y0, y1 float64) float64 {
	if x1 <= x0 {
		return y0
	}
	return y0 + (x-x0)/(x1-x0)*(y1-y0)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
