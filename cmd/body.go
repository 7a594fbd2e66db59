package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/misterclayt0n/fitcalc/internal/models"
	"github.com/misterclayt0n/fitcalc/internal/units"
	"github.com/misterclayt0n/fitcalc/internal/utils"
	"github.com/spf13/cobra"
)

// bodyFlags are the measurement flags shared by bmi, calories, macros and
// ffmi. Anything not given on the command line comes from the saved profile.
type bodyFlags struct {
	sex      string
	age      float64
	weight   float64
	heightCm float64
	feet     int
	inches   int
}

func (b *bodyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&b.sex, "sex", "s", "", "Sex: male or female")
	cmd.Flags().Float64VarP(&b.age, "age", "a", 0, "Age in years")
	cmd.Flags().Float64VarP(&b.weight, "weight", "w", 0, "Body weight in kg, or lb with --units imperial")
	cmd.Flags().Float64Var(&b.heightCm, "height", 0, "Height in cm (metric)")
	cmd.Flags().IntVar(&b.feet, "ft", 0, "Height, feet part (imperial)")
	cmd.Flags().IntVar(&b.inches, "in", 0, "Height, inches part (imperial)")
}

// resolve merges the flags over the profile and converts to metric.
func (b *bodyFlags) resolve(cmd *cobra.Command, sys units.System) (models.Anthropometrics, error) {
	var base models.Anthropometrics
	haveProfile := false
	if p, err := utils.LoadProfile(); err == nil {
		base = p.Anthropometrics()
		haveProfile = true
	} else if !errors.Is(err, os.ErrNotExist) {
		log.Printf("ignoring unreadable profile: %v", err)
	}

	flags := cmd.Flags()
	if flags.Changed("sex") {
		sex, err := models.ParseSex(b.sex)
		if err != nil {
			return base, err
		}
		base.Sex = sex
	}
	if flags.Changed("age") {
		base.AgeYears = b.age
	}
	if flags.Changed("weight") {
		base.WeightKg = units.ToKg(sys, b.weight)
	}

	switch {
	case flags.Changed("ft") || flags.Changed("in"):
		base.HeightCm = units.FtInToCm(b.feet, b.inches)
	case flags.Changed("height"):
		if sys == units.Imperial {
			return base, errors.New("--height is in cm; use --ft and --in with imperial units")
		}
		base.HeightCm = b.heightCm
	}

	if !haveProfile {
		var missing []string
		for _, name := range []string{"age", "weight"} {
			if !flags.Changed(name) {
				missing = append(missing, "--"+name)
			}
		}
		if !flags.Changed("height") && !flags.Changed("ft") && !flags.Changed("in") {
			missing = append(missing, "--height (or --ft/--in)")
		}
		if len(missing) > 0 {
			return base, fmt.Errorf("missing %v (or save a profile with `fitcalc profile set`)", missing)
		}
	}
	return base, nil
}

// imperialInputs returns weight in pounds and height in inches for the
// 703·lb/in² formula: the raw flags when given, the profile otherwise.
func (b *bodyFlags) imperialInputs(cmd *cobra.Command, person models.Anthropometrics) (lb, inches float64) {
	flags := cmd.Flags()
	lb = units.KgToLb(person.WeightKg)
	if flags.Changed("weight") {
		lb = b.weight
	}
	inches = person.HeightCm / units.CmPerIn
	if flags.Changed("ft") || flags.Changed("in") {
		inches = float64(b.feet*12 + b.inches)
	}
	return lb, inches
}
