package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/misterclayt0n/fitcalc/internal/energy"
	"github.com/misterclayt0n/fitcalc/internal/models"
	"github.com/spf13/cobra"
)

var (
	macroBody   bodyFlags
	macroGoal   goalFlags
	macroCustom float64
	macroSplit  energy.MacroSplit
	macroLocked bool
	macroDiet   string
	macroSave   bool
)

var macrosCmd = &cobra.Command{
	Use:   "macros",
	Short: "Balance protein, fat and carbs against a calorie target",
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := unitSystem(cmd)
		if err != nil {
			return err
		}

		in := energy.MacroInput{
			Macros: macroSplit,
			Locked: macroLocked,
			Diet:   macroDiet,
		}
		if cmd.Flags().Changed("custom") {
			if cmd.Flags().Changed("rate") || cmd.Flags().Changed("target") {
				return errors.New("--custom cannot be combined with --rate or --target")
			}
			in.Mode = energy.ModeCustom
			in.CustomKcal = macroCustom
		}

		// Body data only matters when calories are calculated or a preset
		// scales protein by weight.
		if in.Mode == energy.ModeCalculate || macroDiet != "" {
			person, err := macroBody.resolve(cmd, sys)
			if err != nil {
				return err
			}
			in.Calories, err = macroGoal.input(cmd, person, sys)
			if err != nil {
				return err
			}
		}

		r, err := energy.Recompute(in)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printBoxedHeader(out, "MACROS")
		if in.Mode == energy.ModeCalculate {
			printPlan(cmd, in.Calories, r.Plan)
		} else {
			printMetric(out, "Target", boldGreen(fmt.Sprintf("%.0f kcal/day", r.TargetKcal)))
		}
		fmt.Fprintln(out)

		weight := in.Calories.Person.WeightKg
		fmt.Fprintf(out, "  %-8s | %-8s | %-6s | %-5s | %-6s\n", "Macro", "Grams", "kcal", "%", "g/kg")
		fmt.Fprintln(out, "  "+strings.Repeat("─", 46))
		rows := []struct {
			name  string
			grams float64
			kcal  float64
			share int
		}{
			{"Protein", r.Macros.ProteinG, r.Macros.ProteinKcal(), r.ProteinShare},
			{"Fat", r.Macros.FatG, r.Macros.FatKcal(), r.FatShare},
			{"Carbs", r.Macros.CarbsG, r.Macros.CarbsKcal(), r.CarbsShare},
		}
		for _, row := range rows {
			perKg := "—"
			if weight > 0 {
				perKg = fmt.Sprintf("%.1f", energy.GramsPerKg(row.grams, weight))
			}
			fmt.Fprintf(out, "  %-8s | %-8.0f | %-6.0f | %-5d | %-6s\n", row.name, row.grams, row.kcal, row.share, perKg)
		}
		fmt.Fprintln(out)
		printMetric(out, "Macro calories", fmt.Sprintf("%.0f kcal (%+.0f vs target)", r.MacroKcal, -r.DiffKcal))

		if r.CarbsFloored {
			fmt.Fprintln(out, red("  Protein and fat already reach the target; carbs are at 0 g."))
		}

		if !macroSave {
			return nil
		}
		return saveRun(cmd, models.KindMacros, in, r)
	},
}

func init() {
	rootCmd.AddCommand(macrosCmd)
	macroBody.register(macrosCmd)
	macroGoal.register(macrosCmd)

	var diets []string
	for _, d := range energy.Diets {
		diets = append(diets, d.Key)
	}

	f := macrosCmd.Flags()
	f.Float64Var(&macroCustom, "custom", 0, "Use this calorie target as given instead of calculating it")
	f.Float64VarP(&macroSplit.ProteinG, "protein", "p", 150, "Protein in grams")
	f.Float64VarP(&macroSplit.FatG, "fat", "f", 70, "Fat in grams")
	f.Float64VarP(&macroSplit.CarbsG, "carbs", "c", 250, "Carbs in grams (ignored while locked)")
	f.BoolVar(&macroLocked, "lock", true, "Derive carbs from the calorie target")
	f.StringVar(&macroDiet, "diet", "", "Diet preset: "+strings.Join(diets, ", "))
	f.BoolVar(&macroSave, "save", false, "Save this run to history")
}
