package utils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/misterclayt0n/fitcalc/internal/models"
	"github.com/misterclayt0n/fitcalc/internal/units"
)

func TestProfileLifecycle(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := LoadProfile(); !errors.Is(err, ErrNoProfile) {
		t.Fatalf("LoadProfile in a fresh home = %v, want ErrNoProfile", err)
	}

	p := &models.Profile{
		Sex:       "female",
		AgeYears:  31,
		HeightCm:  165,
		WeightKg:  60.5,
		Units:     "imperial",
		UpdatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	got, err := LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if !got.UpdatedAt.Equal(p.UpdatedAt) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, p.UpdatedAt)
	}
	got.UpdatedAt = p.UpdatedAt
	if *got != *p {
		t.Errorf("LoadProfile = %+v, want %+v", got, p)
	}
	a := got.Anthropometrics()
	if a.Sex != models.Female || a.WeightKg != 60.5 {
		t.Errorf("anthropometrics = %+v", a)
	}

	if err := ClearProfile(); err != nil {
		t.Fatalf("ClearProfile: %v", err)
	}
	if _, err := LoadProfile(); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadProfile after clear = %v, want not-exist", err)
	}
	if err := ClearProfile(); !errors.Is(err, ErrNoProfile) {
		t.Errorf("second ClearProfile = %v, want ErrNoProfile", err)
	}
}

func TestSaveProfileRejectsInvalid(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	valid := models.Profile{Sex: "male", AgeYears: 30, HeightCm: 180, WeightKg: 80, Units: "metric"}
	tests := []struct {
		name   string
		modify func(p *models.Profile)
	}{
		{"unknown sex", func(p *models.Profile) { p.Sex = "x" }},
		{"unknown units", func(p *models.Profile) { p.Units = "stone" }},
		{"zero height", func(p *models.Profile) { p.HeightCm = 0 }},
		{"negative weight", func(p *models.Profile) { p.WeightKg = -1 }},
		{"zero age", func(p *models.Profile) { p.AgeYears = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.modify(&p)
			if err := SaveProfile(&p); err == nil {
				t.Error("expected error")
			}
		})
	}
	if _, err := LoadProfile(); !errors.Is(err, ErrNoProfile) {
		t.Errorf("rejected saves left a profile behind: %v", err)
	}

	p := valid
	if err := SaveProfile(&p); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	if p.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not stamped")
	}
}

func TestLoadProfileRejectsHandEditedFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "fitcalc")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	data := "sex = \"male\"\nage_years = 30\nheight_cm = -5\nweight_kg = 80\nunits = \"metric\"\n"
	if err := os.WriteFile(filepath.Join(dir, "profile.toml"), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProfile(); err == nil || errors.Is(err, ErrNoProfile) {
		t.Errorf("LoadProfile = %v, want a validation error", err)
	}
}

func TestGoalRateIn(t *testing.T) {
	p := &models.Profile{Units: "metric", GoalRate: -0.5}
	if got := GoalRateIn(p, units.Imperial); got != -1.1 {
		t.Errorf("metric -0.5 in imperial = %v, want -1.1", got)
	}
	if got := GoalRateIn(p, units.Metric); got != -0.5 {
		t.Errorf("metric -0.5 in metric = %v", got)
	}
	p = &models.Profile{Units: "imperial", GoalRate: 1}
	if got := GoalRateIn(p, units.Metric); got != 0.45 {
		t.Errorf("imperial 1 in metric = %v, want 0.45", got)
	}
}

func TestLoadLocation(t *testing.T) {
	if LoadLocation("") != time.Local || LoadLocation("Nowhere/City") != time.Local {
		t.Error("fallback should be the local zone")
	}
	loc := LoadLocation("UTC")
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := FormatIn(ts, loc); got != "Fri, 02 Jan 2026 03:04:05 UTC" {
		t.Errorf("FormatIn = %q", got)
	}
}
