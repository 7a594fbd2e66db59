package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/fitcalc/internal/config"
	"github.com/misterclayt0n/fitcalc/internal/energy"
	"github.com/misterclayt0n/fitcalc/internal/models"
	"github.com/misterclayt0n/fitcalc/internal/units"
)

const profileFile = "profile.toml"

// ErrNoProfile is returned when no profile has been saved. It matches fs.ErrNotExist.
var ErrNoProfile = fmt.Errorf("no profile saved: %w", fs.ErrNotExist)

func getProfilePath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, profileFile), nil
}

// validateProfile rejects profiles the calculators could not use.
func validateProfile(p *models.Profile) error {
	if _, err := models.ParseSex(p.Sex); err != nil {
		return err
	}
	if _, err := units.ParseSystem(p.Units); err != nil {
		return err
	}
	if !p.Anthropometrics().Valid() {
		return errors.New("height and weight must be positive")
	}
	if p.AgeYears <= 0 {
		return errors.New("age must be positive")
	}
	return nil
}

// SaveProfile validates p, stamps UpdatedAt when unset and replaces the
// profile file. The file is written next to the old one and renamed over
// it, so a failed write leaves the previous profile intact.
func SaveProfile(p *models.Profile) error {
	if err := validateProfile(p); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}

	path, err := getProfilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), profileFile+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(p); err != nil {
		tmp.Close()
		return fmt.Errorf("encoding profile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// LoadProfile reads the saved profile. A missing file gives ErrNoProfile.
func LoadProfile() (*models.Profile, error) {
	path, err := getProfilePath()
	if err != nil {
		return nil, err
	}

	var p models.Profile
	if _, err := toml.DecodeFile(path, &p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoProfile
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := validateProfile(&p); err != nil {
		return nil, fmt.Errorf("invalid profile in %s: %w", path, err)
	}
	return &p, nil
}

// GoalRateIn returns the saved weekly goal rate expressed in s.
func GoalRateIn(p *models.Profile, s units.System) float64 {
	from, err := units.ParseSystem(p.Units)
	if err != nil {
		return p.GoalRate
	}
	return energy.ConvertRate(p.GoalRate, from, s)
}

func ClearProfile() error {
	path, err := getProfilePath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNoProfile
		}
		return err
	}
	return nil
}
