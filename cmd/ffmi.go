package cmd

import (
	"fmt"
	"strings"

	"github.com/misterclayt0n/fitcalc/internal/ffmi"
	"github.com/misterclayt0n/fitcalc/internal/models"
	"github.com/misterclayt0n/fitcalc/internal/units"
	"github.com/spf13/cobra"
)

var (
	ffmiBody    bodyFlags
	ffmiBodyFat float64
	ffmiSave    bool
)

var ffmiCmd = &cobra.Command{
	Use:   "ffmi",
	Short: "Compute fat-free mass index, normalized to 1.8 m, from weight and body fat",
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := unitSystem(cmd)
		if err != nil {
			return err
		}
		person, err := ffmiBody.resolve(cmd, sys)
		if err != nil {
			return err
		}

		r := ffmi.Calculate(person, ffmiBodyFat)
		out := cmd.OutOrStdout()

		printBoxedHeader(out, "FFMI")
		if !person.Valid() {
			fmt.Fprintln(out, red("  Height and weight must be positive."))
			return nil
		}
		printMetric(out, "Lean mass", units.FormatMass(r.LeanMassKg, sys))
		printMetric(out, "BMI", fmt.Sprintf("%.1f", r.BMI))
		printMetric(out, "FFMI", fmt.Sprintf("%.1f", r.FFMI))
		printMetric(out, "Normalized FFMI", boldGreen(fmt.Sprintf("%.1f", r.Normalized)))
		printMetric(out, "Category", r.Category)
		fmt.Fprintf(out, "  %.0f %s %.0f\n", ffmi.SpectrumMin, spectrumBar(r.SpectrumPct), ffmi.SpectrumMax)

		var bands []string
		th := ffmi.Thresholds(person.Sex)
		for i, name := range ffmi.Categories() {
			switch {
			case i == 0:
				bands = append(bands, fmt.Sprintf("%s <%.0f", name, th[0]))
			default:
				bands = append(bands, fmt.Sprintf("%s %.0f+", name, th[i-1]))
			}
		}
		fmt.Fprintf(out, "  %s\n", magenta(strings.Join(bands, " · ")))

		if !ffmiSave {
			return nil
		}
		return saveRun(cmd, models.KindFFMI, map[string]interface{}{
			"person":   person,
			"body_fat": ffmiBodyFat,
		}, r)
	},
}

func init() {
	rootCmd.AddCommand(ffmiCmd)
	ffmiBody.register(ffmiCmd)
	ffmiCmd.Flags().Float64VarP(&ffmiBodyFat, "body-fat", "b", 0, "Body fat percentage")
	ffmiCmd.MarkFlagRequired("body-fat")
	ffmiCmd.Flags().BoolVar(&ffmiSave, "save", false, "Save this run to history")
}
