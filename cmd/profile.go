package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/misterclayt0n/fitcalc/internal/energy"
	"github.com/misterclayt0n/fitcalc/internal/models"
	"github.com/misterclayt0n/fitcalc/internal/units"
	"github.com/misterclayt0n/fitcalc/internal/utils"
	"github.com/spf13/cobra"
)

var (
	profileBody bodyFlags
	profileRate float64
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the saved measurements calculators default to",
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save or update sex, age, height and weight",
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := unitSystem(cmd)
		if err != nil {
			return err
		}
		person, err := profileBody.resolve(cmd, sys)
		if err != nil {
			return err
		}

		p := &models.Profile{
			Sex:       person.Sex.String(),
			AgeYears:  person.AgeYears,
			HeightCm:  person.HeightCm,
			WeightKg:  person.WeightKg,
			Units:     sys.String(),
			GoalRate:  profileRate,
			UpdatedAt: time.Now().UTC(),
		}
		if !cmd.Flags().Changed("rate") {
			// Keep the previous goal, restated in the new units.
			if old, err := utils.LoadProfile(); err == nil {
				p.GoalRate = utils.GoalRateIn(old, sys)
			}
		}
		if err := utils.SaveProfile(p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✅ Profile saved")
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the saved profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := utils.LoadProfile()
		if errors.Is(err, utils.ErrNoProfile) {
			fmt.Fprintln(cmd.OutOrStdout(), magenta("No profile saved. Use `fitcalc profile set`."))
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		sys, err := units.ParseSystem(p.Units)
		if err != nil {
			sys = units.Metric
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, boldGreen("Profile:"))
		printMetric(out, "Sex", p.Sex)
		printMetric(out, "Age", fmt.Sprintf("%.1f years", p.AgeYears))
		printMetric(out, "Height", units.FormatHeight(p.HeightCm, sys))
		printMetric(out, "Weight", units.FormatMass(p.WeightKg, sys))
		printMetric(out, "Goal", fmt.Sprintf("%s %+.2f %s/week", energy.GoalLabel(p.GoalRate), p.GoalRate, sys.MassUnit()))
		printMetric(out, "Updated", utils.FormatIn(p.UpdatedAt, utils.LoadLocation(cfg.Display.Timezone)))
		return nil
	},
}

var profileClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the saved profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := utils.ClearProfile(); err != nil {
			return fmt.Errorf("failed to clear profile: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✅ Profile cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd, profileClearCmd)
	profileBody.register(profileSetCmd)
	profileSetCmd.Flags().Float64Var(&profileRate, "rate", 0, "Weekly goal in kg, or lb with --units imperial; calories and macros default to it")
}
