package cmd

import (
	"fmt"
	"strings"

	"github.com/misterclayt0n/fitcalc/internal/export"
	"github.com/misterclayt0n/fitcalc/internal/models"
	"github.com/misterclayt0n/fitcalc/internal/onerm"
	"github.com/misterclayt0n/fitcalc/internal/units"
	"github.com/spf13/cobra"
)

var (
	ormWeight    float64
	ormReps      int
	ormRPE       float64
	ormIncrement float64
	ormXLSX      string
	ormSave      bool
)

// roundIncrement picks --increment, then the configured increment, then the
// default for s. Increments not offered for s are rejected.
func roundIncrement(cmd *cobra.Command, s units.System) (float64, error) {
	if cmd.Flags().Changed("increment") {
		if !onerm.ValidIncrement(s, ormIncrement) {
			return 0, fmt.Errorf("increment %g is not offered for %s units", ormIncrement, s)
		}
		return ormIncrement, nil
	}
	if step := cfg.Display.RoundIncrement; onerm.ValidIncrement(s, step) {
		return step, nil
	}
	return onerm.DefaultIncrement(s), nil
}

var oneRMCmd = &cobra.Command{
	Use:   "one-rm",
	Short: "Estimate a one-rep max with eight formulas and print load tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := unitSystem(cmd)
		if err != nil {
			return err
		}
		step, err := roundIncrement(cmd, sys)
		if err != nil {
			return err
		}
		if ormReps < onerm.MinReps || ormReps > onerm.MaxReps {
			return fmt.Errorf("reps must be between %d and %d", onerm.MinReps, onerm.MaxReps)
		}
		useRPE := cmd.Flags().Changed("rpe")
		if useRPE && (ormRPE < onerm.MinRPE || ormRPE > onerm.MaxRPE) {
			return fmt.Errorf("RPE must be between %d and %d", onerm.MinRPE, onerm.MaxRPE)
		}

		in := onerm.Input{
			Weight:    ormWeight,
			Reps:      ormReps,
			RPE:       ormRPE,
			UseRPE:    useRPE,
			System:    sys,
			Increment: step,
		}
		r := onerm.Calculate(in)
		out := cmd.OutOrStdout()
		load := func(kg float64) string { return onerm.FormatLoad(kg, sys, step) }

		printBoxedHeader(out, "ONE-REP MAX")
		if useRPE {
			printMetric(out, "Reps to failure", fmt.Sprintf("%.0f (RPE %.1f)", r.EffectiveReps, ormRPE))
		}
		if len(r.Estimates) == 0 {
			fmt.Fprintln(out, red("  No formula produced an estimate for this input."))
			return nil
		}

		fmt.Fprintln(out, boldGreen("Estimates:"))
		for _, e := range r.Estimates {
			fmt.Fprintf(out, "  %-10s %s\n", e.Formula, load(e.Kg))
		}
		printMetric(out, "Average 1RM", boldGreen(load(r.AverageKg)))
		printMetric(out, "Training max (90%)", load(r.TrainingMaxKg))
		fmt.Fprintln(out)

		fmt.Fprintln(out, boldCyan("Percentages:"))
		fmt.Fprintf(out, "  %-6s | %-10s\n", "%", "Load")
		fmt.Fprintln(out, "  "+strings.Repeat("─", 20))
		for _, p := range r.Percentages {
			fmt.Fprintf(out, "  %-6d | %-10s\n", p.Percent, load(p.Kg))
		}
		fmt.Fprintln(out)

		fmt.Fprintln(out, boldCyan("Reps:"))
		fmt.Fprintf(out, "  %-6s | %-10s\n", "Reps", "Load")
		fmt.Fprintln(out, "  "+strings.Repeat("─", 20))
		for _, rr := range r.RepsLoads {
			fmt.Fprintf(out, "  %-6d | %-10s\n", rr.Reps, load(rr.Kg))
		}

		if ormXLSX != "" {
			if err := export.WriteOneRM(ormXLSX, r, sys, step); err != nil {
				return err
			}
			fmt.Fprintf(out, "✅ Workbook written to %s\n", ormXLSX)
		}

		if !ormSave {
			return nil
		}
		return saveRun(cmd, models.KindOneRM, in, map[string]interface{}{
			"average_kg":      r.AverageKg,
			"training_max_kg": r.TrainingMaxKg,
			"estimates":       r.Estimates,
		})
	},
}

func init() {
	rootCmd.AddCommand(oneRMCmd)
	f := oneRMCmd.Flags()
	f.Float64VarP(&ormWeight, "weight", "w", 0, "Working weight in kg, or lb with --units imperial")
	f.IntVarP(&ormReps, "reps", "r", 0, "Reps performed (1-20)")
	f.Float64Var(&ormRPE, "rpe", 0, "RPE of the set (6-10); counts reps in reserve")
	f.Float64Var(&ormIncrement, "increment", 0, "Rounding step for loads (kg: 0.5, 1, 2.5, 5; lb: 1, 2.5, 5, 10)")
	f.StringVar(&ormXLSX, "xlsx", "", "Also write the tables to this .xlsx workbook")
	f.BoolVar(&ormSave, "save", false, "Save this run to history")
	oneRMCmd.MarkFlagRequired("weight")
	oneRMCmd.MarkFlagRequired("reps")
}
