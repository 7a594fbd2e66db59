package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	appDir   = "fitcalc"
	fileName = "config.toml"

	devConnectionString = "file:./local.db?cache=shared&mode=rwc"
)

type Config struct {
	DB      DBConfig      `toml:"database"`
	Display DisplayConfig `toml:"display"`
	LMS     LMSConfig     `toml:"lms"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
}

type DisplayConfig struct {
	Units          string  `toml:"units"`           // "metric" or "imperial".
	RoundIncrement float64 `toml:"round_increment"` // 0 means the unit system's default.
	Timezone       string  `toml:"timezone"`        // IANA name used for history timestamps.
}

type LMSConfig struct {
	DatasetPath string `toml:"dataset_path"`
}

func Default() *Config {
	return &Config{
		Display: DisplayConfig{Units: "metric", Timezone: "Local"},
	}
}

// Returns the directory holding the config, profile and dumps.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appDir), nil
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Reads the configuration from the config file. A missing file gives the defaults.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = devConnectionString
	}

	return cfg, nil
}

// Writes cfg to the config file, creating the directory when needed.
func Save(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
