package cmd

import (
	"fmt"
	"math"

	"github.com/misterclayt0n/fitcalc/internal/bmi"
	"github.com/misterclayt0n/fitcalc/internal/models"
	"github.com/misterclayt0n/fitcalc/internal/units"
	"github.com/spf13/cobra"
)

var (
	bmiBody bodyFlags
	bmiSave bool
)

// finite maps NaN and infinities to nil so a record stays JSON-encodable.
func finite(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

var bmiCmd = &cobra.Command{
	Use:   "bmi",
	Short: "Compute BMI with adult categories or child/teen BMI-for-age percentiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := unitSystem(cmd)
		if err != nil {
			return err
		}
		person, err := bmiBody.resolve(cmd, sys)
		if err != nil {
			return err
		}

		engine := newEngine(cmd)
		var a bmi.Assessment
		if sys == units.Imperial {
			lb, inches := bmiBody.imperialInputs(cmd, person)
			a = engine.AssessImperial(person, lb, inches)
		} else {
			a = engine.Assess(person)
		}
		out := cmd.OutOrStdout()

		printBoxedHeader(out, "BMI")
		printMetric(out, "BMI", fmt.Sprintf("%.1f kg/m²", a.BMI))
		printMetric(out, "Category", boldGreen(a.Category()))
		printMetric(out, "Age", fmt.Sprintf("%.1f years", a.AgeYears))

		if a.Adult {
			if a.AdultCategory == bmi.AdultUnavailable {
				fmt.Fprintln(out, red("  Height and weight must be positive."))
			}
		} else {
			p := a.Percentile
			printMetric(out, "Percentile", fmtNum(p.Value))
			if !math.IsNaN(p.Z) {
				printMetric(out, "Z-score", fmt.Sprintf("%.2f", p.Z))
			}
			printMetric(out, "Method", magenta(p.Method.String()))
			t := a.Thresholds
			fmt.Fprintf(out, "  %s: 5th %s · 85th %s · 95th %s (%s)\n",
				yellowBold("BMI cutoffs"), fmtNum(t.P5), fmtNum(t.P85), fmtNum(t.P95), t.Method)
		}

		if a.HealthyMinKg > 0 {
			printMetric(out, "Healthy weight", fmt.Sprintf("%s – %s",
				units.FormatMass(a.HealthyMinKg, sys), units.FormatMass(a.HealthyMaxKg, sys)))
		}

		if !bmiSave {
			return nil
		}
		return saveRun(cmd, models.KindBMI, person, map[string]interface{}{
			"bmi":        a.BMI,
			"category":   a.Category(),
			"adult":      a.Adult,
			"percentile": finite(a.Percentile.Value),
			"z":          finite(a.Percentile.Z),
			"method":     a.Percentile.Method.String(),
		})
	},
}

func init() {
	rootCmd.AddCommand(bmiCmd)
	bmiBody.register(bmiCmd)
	bmiCmd.Flags().BoolVar(&bmiSave, "save", false, "Save this run to history")
}
