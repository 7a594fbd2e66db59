package onerm

import (
	"math"
	"testing"

	"github.com/misterclayt0n/fitcalc/internal/units"
)

const tolerance = 1e-9

func TestEffectiveReps(t *testing.T) {
	tests := []struct {
		name   string
		reps   int
		rpe    float64
		useRPE bool
		want   float64
	}{
		{"rpe ignored", 5, 8, false, 5},
		{"rpe 10 to failure", 5, 10, true, 5},
		{"rpe 8", 5, 8, true, 7},
		{"rpe 8.5", 5, 8.5, true, 6.5},
		{"rir capped at 4", 5, 5, true, 9},
		{"clamped high", 19, 6, true, 20},
		{"clamped low", 0, 10, true, 1},
		{"rpe above 10", 3, 11, true, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveReps(tt.reps, tt.rpe, tt.useRPE); got != tt.want {
				t.Errorf("EffectiveReps(%d, %v, %v) = %v, want %v", tt.reps, tt.rpe, tt.useRPE, got, tt.want)
			}
		})
	}
}

func TestEstimateAll(t *testing.T) {
	want := map[string]float64{
		"Epley":     116.66666666666667,
		"Brzycki":   112.5,
		"Lander":    113.70891767872342,
		"Lombardi":  117.4618943088019,
		"Mayhew":    119.01068045151959,
		"O'Conner":  112.5,
		"Wathan":    116.58250529118924,
		"McGlothin": 113.70891767872341,
	}

	got := EstimateAll(100, 5)
	if len(got) != len(Formulas) {
		t.Fatalf("got %d estimates, want %d", len(got), len(Formulas))
	}
	for _, e := range got {
		if math.Abs(e.Kg-want[e.Formula]) > tolerance {
			t.Errorf("%s = %v, want %v", e.Formula, e.Kg, want[e.Formula])
		}
	}
}

func TestEstimateAllDropsDegenerate(t *testing.T) {
	got := EstimateAll(100, 37)
	for _, e := range got {
		if e.Formula == "Brzycki" {
			t.Errorf("Brzycki kept at 37 reps: %v", e.Kg)
		}
		if math.IsInf(e.Kg, 0) || e.Kg <= 0 {
			t.Errorf("%s kept with %v", e.Formula, e.Kg)
		}
	}
	if len(got) != len(Formulas)-1 {
		t.Errorf("got %d estimates at 37 reps, want %d", len(got), len(Formulas)-1)
	}

	if got := EstimateAll(0, 5); len(got) != 0 {
		t.Errorf("zero weight kept %d estimates", len(got))
	}
	if got := Average(nil); got != 0 {
		t.Errorf("Average(nil) = %v, want 0", got)
	}
}

func TestCalculateRegression(t *testing.T) {
	r := Calculate(Input{Weight: 100, Reps: 5, System: units.Metric})

	const wantAvg = 115.26744775945303
	if math.Abs(r.AverageKg-wantAvg) > tolerance {
		t.Errorf("average = %v, want %v", r.AverageKg, wantAvg)
	}
	if r.TrainingMaxKg != r.AverageKg*0.90 {
		t.Errorf("training max = %v, want exactly 0.9 x %v", r.TrainingMaxKg, r.AverageKg)
	}

	if len(r.RepsLoads) != 12 || r.RepsLoads[0].Reps != 1 {
		t.Fatalf("reps table = %+v", r.RepsLoads)
	}
	if got, want := r.RepsLoads[0].Kg, r.AverageKg/(1+1.0/30); got != want {
		t.Errorf("reps=1 load = %v, want %v", got, want)
	}
	if math.Abs(r.RepsLoads[0].Kg-111.54914299301906) > tolerance {
		t.Errorf("reps=1 load = %v", r.RepsLoads[0].Kg)
	}

	if len(r.Percentages) != 11 {
		t.Fatalf("percent table has %d rows", len(r.Percentages))
	}
	if r.Percentages[0].Percent != 50 || r.Percentages[10].Percent != 100 {
		t.Errorf("percent table bounds = %d..%d", r.Percentages[0].Percent, r.Percentages[10].Percent)
	}
	if math.Abs(r.Percentages[10].Kg-r.AverageKg) > tolerance {
		t.Errorf("100%% row = %v, want %v", r.Percentages[10].Kg, r.AverageKg)
	}
}

func TestCalculateImperialInput(t *testing.T) {
	r := Calculate(Input{Weight: 225, Reps: 5, System: units.Imperial})
	if math.Abs(r.WorkingKg-225/units.LbPerKg) > tolerance {
		t.Errorf("working kg = %v", r.WorkingKg)
	}
	metric := Calculate(Input{Weight: r.WorkingKg, Reps: 5})
	if math.Abs(metric.AverageKg-r.AverageKg) > tolerance {
		t.Errorf("imperial average %v != metric average %v", r.AverageKg, metric.AverageKg)
	}
}

func TestFormatLoad(t *testing.T) {
	tests := []struct {
		name string
		kg   float64
		sys  units.System
		step float64
		want string
	}{
		{"metric plates", 116.66666666666667, units.Metric, 2.5, "117.5 kg"},
		{"metric fine", 116.66666666666667, units.Metric, 0.5, "116.5 kg"},
		{"imperial", 100, units.Imperial, 5, "220 lb"},
		{"imperial ten", 115.26744775945303, units.Imperial, 10, "250 lb"},
		{"no rounding", 100, units.Metric, 0, "100.0 kg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLoad(tt.kg, tt.sys, tt.step); got != tt.want {
				t.Errorf("FormatLoad(%v, %v, %v) = %q, want %q", tt.kg, tt.sys, tt.step, got, tt.want)
			}
		})
	}
}

func TestIncrements(t *testing.T) {
	if DefaultIncrement(units.Metric) != 2.5 || DefaultIncrement(units.Imperial) != 5 {
		t.Error("unexpected default increments")
	}
	if !ValidIncrement(units.Metric, 0.5) || ValidIncrement(units.Metric, 10) {
		t.Error("metric increments")
	}
	if !ValidIncrement(units.Imperial, 10) || ValidIncrement(units.Imperial, 0.5) {
		t.Error("imperial increments")
	}
}
