package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/misterclayt0n/fitcalc/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// setup isolates config, profile and database lookups from the real user.
func setup(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FITCALC_DATABASE_URL", "")
	t.Setenv("DEV_MODE", "")
	color.NoColor = true
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestBMICommand(t *testing.T) {
	setup(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "adult",
			args: []string{"bmi", "--sex", "male", "--age", "30", "--weight", "70", "--height", "175"},
			want: []string{"22.9 kg/m²", "Normal", "Healthy weight"},
		},
		{
			name: "child via proxy",
			args: []string{"bmi", "--sex", "male", "--age", "10", "--weight", "52", "--height", "150"},
			want: []string{"23.1 kg/m²", "Overweight", "IOTF-style proxy", "BMI cutoffs"},
		},
		{
			name: "imperial",
			args: []string{"bmi", "-u", "imperial", "--sex", "female", "--age", "40", "--weight", "150", "--ft", "5", "--in", "6"},
			want: []string{"24.2 kg/m²", "Normal", " lb"},
		},
		{
			name: "imperial uses whole pounds and inches",
			args: []string{"bmi", "--units", "imperial", "--age", "30", "--sex", "male", "--weight", "154", "--ft", "5", "--in", "9"},
			want: []string{"22.7 kg/m²", "Normal"},
		},
		{
			name: "missing dataset falls back",
			args: []string{"bmi", "--lms", "/nonexistent/lms.toml", "--sex", "female", "--age", "8", "--weight", "25", "--height", "128"},
			want: []string{"IOTF-style proxy"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("bmi: %v\n%s", err, out)
			}
			assertContains(t, out, tt.want...)
		})
	}
}

func TestBMICommandErrors(t *testing.T) {
	setup(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no profile and no flags", []string{"bmi"}},
		{"bad sex", []string{"bmi", "--sex", "x", "--age", "30", "--weight", "70", "--height", "175"}},
		{"bad units", []string{"bmi", "-u", "stone", "--age", "30", "--weight", "70", "--height", "175"}},
		{"cm with imperial", []string{"bmi", "-u", "imperial", "--age", "30", "--weight", "150", "--height", "175"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSaveWithoutDatabase(t *testing.T) {
	setup(t)
	_, err := execute(t, "bmi", "--age", "30", "--weight", "70", "--height", "175", "--save")
	if !errors.Is(err, storage.ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
	if _, err := execute(t, "history"); !errors.Is(err, storage.ErrNotConfigured) {
		t.Errorf("history err = %v, want ErrNotConfigured", err)
	}
}

func TestOneRMCommand(t *testing.T) {
	setup(t)
	xlsx := filepath.Join(t.TempDir(), "loads.xlsx")

	out, err := execute(t, "one-rm", "--weight", "100", "--reps", "5", "--xlsx", xlsx)
	if err != nil {
		t.Fatalf("one-rm: %v\n%s", err, out)
	}
	assertContains(t, out, "Epley", "McGlothin", "Average 1RM", "115.0 kg", "Training max (90%)", "Workbook written")
	if _, err := os.Stat(xlsx); err != nil {
		t.Errorf("workbook not written: %v", err)
	}

	out, err = execute(t, "one-rm", "-u", "imperial", "--weight", "225", "--reps", "3", "--rpe", "8")
	if err != nil {
		t.Fatalf("one-rm imperial: %v", err)
	}
	assertContains(t, out, "Reps to failure", "5 (RPE 8.0)", " lb")
}

func TestOneRMCommandErrors(t *testing.T) {
	setup(t)

	tests := []struct {
		name string
		args []string
	}{
		{"missing reps", []string{"one-rm", "--weight", "100"}},
		{"reps out of range", []string{"one-rm", "--weight", "100", "--reps", "25"}},
		{"rpe out of range", []string{"one-rm", "--weight", "100", "--reps", "5", "--rpe", "4"}},
		{"increment not offered", []string{"one-rm", "--weight", "100", "--reps", "5", "--increment", "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCaloriesCommand(t *testing.T) {
	setup(t)

	out, err := execute(t, "calories", "--sex", "male", "--age", "30", "--weight", "80", "--height", "180", "--rate", "-0.5")
	if err != nil {
		t.Fatalf("calories: %v", err)
	}
	// BMR 1780, TDEE 1780*1.55, target 2759 - 7700*0.5/7.
	assertContains(t, out, "1780 kcal", "2759 kcal", "2209 kcal/day", "Lose")

	out, err = execute(t, "calories", "--sex", "male", "--age", "30", "--weight", "80", "--height", "180", "--target", "2759")
	if err != nil {
		t.Fatalf("calories target: %v", err)
	}
	assertContains(t, out, "Maintain")

	if _, err := execute(t, "calories", "--age", "30", "--weight", "80", "--height", "180", "--rate", "-0.5", "--target", "2000"); err == nil {
		t.Error("--rate with --target should fail")
	}
	if _, err := execute(t, "calories", "--age", "30", "--weight", "80", "--height", "180", "--activity", "9"); err == nil {
		t.Error("activity 9 should fail")
	}
}

func TestMacrosCommand(t *testing.T) {
	setup(t)

	out, err := execute(t, "macros", "--custom", "2000", "--protein", "150", "--fat", "70")
	if err != nil {
		t.Fatalf("macros: %v", err)
	}
	// (2000 - 600 - 630) / 4 = 192.5, rounded up.
	assertContains(t, out, "2000 kcal/day", "193")

	out, err = execute(t, "macros", "--custom", "1000", "--protein", "200", "--fat", "100")
	if err != nil {
		t.Fatalf("macros floored: %v", err)
	}
	assertContains(t, out, "carbs are at 0 g")

	out, err = execute(t, "macros", "--sex", "male", "--age", "30", "--weight", "80", "--height", "180", "--diet", "balanced")
	if err != nil {
		t.Fatalf("macros diet: %v", err)
	}
	// 80 kg * 1.8 g/kg.
	assertContains(t, out, "2759 kcal", "144")

	if _, err := execute(t, "macros", "--custom", "2000", "--target", "1800"); err == nil {
		t.Error("--custom with --target should fail")
	}
	if _, err := execute(t, "macros", "--custom", "2000", "--diet", "paleo", "--age", "30", "--weight", "80", "--height", "180"); err == nil {
		t.Error("unknown diet should fail")
	}
}

func TestFFMICommand(t *testing.T) {
	setup(t)

	out, err := execute(t, "ffmi", "--sex", "male", "--age", "30", "--weight", "80", "--height", "180", "--body-fat", "15")
	if err != nil {
		t.Fatalf("ffmi: %v", err)
	}
	assertContains(t, out, "68.0 kg", "Normalized FFMI", "21.0", "Muscular")

	if _, err := execute(t, "ffmi", "--age", "30", "--weight", "80", "--height", "180"); err == nil {
		t.Error("missing --body-fat should fail")
	}
}

func TestProfileCommands(t *testing.T) {
	setup(t)

	out, err := execute(t, "profile", "show")
	if err != nil {
		t.Fatalf("profile show: %v", err)
	}
	assertContains(t, out, "No profile saved")

	if _, err := execute(t, "profile", "set", "--sex", "female", "--age", "35", "--weight", "60", "--height", "165"); err != nil {
		t.Fatalf("profile set: %v", err)
	}

	out, err = execute(t, "profile", "show")
	if err != nil {
		t.Fatalf("profile show: %v", err)
	}
	assertContains(t, out, "female", "165 cm", "60.0 kg")

	// Calculators default to the profile; flags override single fields.
	out, err = execute(t, "bmi")
	if err != nil {
		t.Fatalf("bmi from profile: %v", err)
	}
	assertContains(t, out, "22.0 kg/m²")

	out, err = execute(t, "bmi", "--weight", "70")
	if err != nil {
		t.Fatalf("bmi override: %v", err)
	}
	assertContains(t, out, "25.7 kg/m²", "Overweight")

	if _, err := execute(t, "profile", "clear"); err != nil {
		t.Fatalf("profile clear: %v", err)
	}
	if _, err := execute(t, "profile", "clear"); err == nil {
		t.Error("clearing twice should fail")
	}
	if _, err := execute(t, "bmi"); err == nil {
		t.Error("bmi without profile or flags should fail")
	}
}

func TestLMSShowWithDataset(t *testing.T) {
	setup(t)
	path := filepath.Join(t.TempDir(), "lms.yaml")
	data := "male:\n  - {l: -1, m: 16, s: 0.08}\nfemale: []\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "lms", "show", "--lms", path, "--age", "2")
	if err != nil {
		t.Fatalf("lms show: %v", err)
	}
	assertContains(t, out, "month 24")

	var male, female string
	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.Contains(line, "female"):
			female = line
		case strings.Contains(line, "male"):
			male = line
		}
	}
	if !strings.Contains(male, "LMS") {
		t.Errorf("male row should use LMS: %q", male)
	}
	if !strings.Contains(female, "proxy") {
		t.Errorf("female row should use proxy: %q", female)
	}

	if _, err := execute(t, "lms", "import", path); !errors.Is(err, storage.ErrNotConfigured) {
		t.Errorf("lms import err = %v, want ErrNotConfigured", err)
	}
}

func TestInitWithoutDatabase(t *testing.T) {
	setup(t)

	out, err := execute(t, "init")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	assertContains(t, out, "Config written", "No database configured")

	out, err = execute(t, "init")
	if err != nil {
		t.Fatalf("init again: %v", err)
	}
	assertContains(t, out, "Config already exists")
}

func TestProfileGoalRateFollowsUnits(t *testing.T) {
	setup(t)

	if _, err := execute(t, "profile", "set", "--sex", "male", "--age", "30", "--weight", "80", "--height", "180", "--rate", "-0.5"); err != nil {
		t.Fatalf("profile set: %v", err)
	}

	out, err := execute(t, "calories")
	if err != nil {
		t.Fatalf("calories: %v", err)
	}
	assertContains(t, out, "Lose -0.50 kg/week", "2209 kcal/day")

	// -0.5 kg/week restated in pounds.
	out, err = execute(t, "calories", "-u", "imperial")
	if err != nil {
		t.Fatalf("calories imperial: %v", err)
	}
	assertContains(t, out, "Lose -1.10 lb/week")

	// An explicit rate wins over the profile.
	out, err = execute(t, "calories", "--rate", "0")
	if err != nil {
		t.Fatalf("calories rate 0: %v", err)
	}
	assertContains(t, out, "Maintain", "2759 kcal/day")

	// Re-saving in imperial without --rate keeps the goal.
	if _, err := execute(t, "profile", "set", "-u", "imperial"); err != nil {
		t.Fatalf("profile set imperial: %v", err)
	}
	out, err = execute(t, "profile", "show")
	if err != nil {
		t.Fatalf("profile show: %v", err)
	}
	assertContains(t, out, "Lose -1.10 lb/week", "176.4 lb")
}
