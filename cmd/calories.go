package cmd

import (
	"errors"
	"fmt"

	"github.com/misterclayt0n/fitcalc/internal/energy"
	"github.com/misterclayt0n/fitcalc/internal/models"
	"github.com/misterclayt0n/fitcalc/internal/units"
	"github.com/misterclayt0n/fitcalc/internal/utils"
	"github.com/spf13/cobra"
)

// goalFlags pick the calorie target: a weekly rate or an explicit target.
type goalFlags struct {
	activity string
	rate     float64
	target   float64
}

func (g *goalFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&g.activity, "activity", "moderate", "Activity: sedentary, light, moderate, active, very-active or 1-5")
	cmd.Flags().Float64Var(&g.rate, "rate", 0, "Weekly weight change in kg, or lb with --units imperial (negative to lose)")
	cmd.Flags().Float64Var(&g.target, "target", 0, "Daily calorie target; the weekly rate is derived from it")
}

func (g *goalFlags) input(cmd *cobra.Command, person models.Anthropometrics, sys units.System) (energy.CalorieInput, error) {
	if cmd.Flags().Changed("rate") && cmd.Flags().Changed("target") {
		return energy.CalorieInput{}, errors.New("--rate and --target are mutually exclusive")
	}
	activity, err := energy.ParseActivity(g.activity)
	if err != nil {
		return energy.CalorieInput{}, err
	}
	in := energy.CalorieInput{
		Person:     person,
		Activity:   activity,
		System:     sys,
		GoalRate:   g.rate,
		TargetKcal: g.target,
		HasTarget:  cmd.Flags().Changed("target"),
	}
	if !cmd.Flags().Changed("rate") && !in.HasTarget {
		if p, err := utils.LoadProfile(); err == nil {
			in.GoalRate = utils.GoalRateIn(p, sys)
		}
	}
	return in, nil
}

func printPlan(cmd *cobra.Command, in energy.CalorieInput, plan energy.CaloriePlan) {
	out := cmd.OutOrStdout()
	unit := in.System.MassUnit()

	printMetric(out, "Activity", fmt.Sprintf("%s (×%.3g) %s", in.Activity, in.Activity.Multiplier(), magenta(in.Activity.Description())))
	printMetric(out, "BMR", fmt.Sprintf("%.0f kcal", plan.BMR))
	printMetric(out, "Maintenance (TDEE)", fmt.Sprintf("%.0f kcal", plan.TDEE))
	printMetric(out, "Goal", fmt.Sprintf("%s %+.2f %s/week", energy.GoalLabel(plan.GoalRate), plan.GoalRate, unit))
	printMetric(out, "Target", boldGreen(fmt.Sprintf("%.0f kcal/day", plan.TargetKcal)))

	if !plan.Calories.Contains(plan.TargetKcal) {
		fmt.Fprintf(out, "  %s target is outside the usual %.0f–%.0f kcal range\n",
			red("!"), plan.Calories.Min, plan.Calories.Max)
	}
	if !plan.Rates.Contains(plan.GoalRate) {
		fmt.Fprintf(out, "  %s rate is outside the usual %.2f to %.2f %s/week range\n",
			red("!"), plan.Rates.Min, plan.Rates.Max, unit)
	}
}

var (
	calBody bodyFlags
	calGoal goalFlags
	calSave bool
)

var caloriesCmd = &cobra.Command{
	Use:   "calories",
	Short: "Estimate BMR, maintenance calories and a daily target for a weekly goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := unitSystem(cmd)
		if err != nil {
			return err
		}
		person, err := calBody.resolve(cmd, sys)
		if err != nil {
			return err
		}
		in, err := calGoal.input(cmd, person, sys)
		if err != nil {
			return err
		}

		plan := energy.PlanCalories(in)
		printBoxedHeader(cmd.OutOrStdout(), "CALORIES")
		printPlan(cmd, in, plan)

		if !calSave {
			return nil
		}
		return saveRun(cmd, models.KindCalories, in, plan)
	},
}

func init() {
	rootCmd.AddCommand(caloriesCmd)
	calBody.register(caloriesCmd)
	calGoal.register(caloriesCmd)
	caloriesCmd.Flags().BoolVar(&calSave, "save", false, "Save this run to history")
}
