package cmd

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/duskhall/hoard"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Settings holds the CLI configuration. The engine itself takes explicit
// values; only the calling layer reads these.
type Settings struct {
	// SaveFile is the path of the JSONL savegame.
	SaveFile string `yaml:"save_file"`
	// StartingGold seeds a fresh hoard when no savegame exists yet.
	StartingGold float64 `yaml:"starting_gold"`
	// CurrentYear is the in-game year used for age and maturity reports.
	CurrentYear int `yaml:"current_year"`
	// Verbose enables engine debug logging on stderr.
	Verbose bool `yaml:"verbose"`
}

// LoadSettings reads settings from a YAML file, then applies environment
// variable overrides and defaults. A missing file is not an error; the
// defaults stand alone.
func LoadSettings(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parse settings: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("HOARD_SAVE_FILE"); v != "" {
		s.SaveFile = v
	}
	if v := os.Getenv("HOARD_STARTING_GOLD"); v != "" {
		if gold, err := strconv.ParseFloat(v, 64); err == nil {
			s.StartingGold = gold
		}
	}
	if v := os.Getenv("HOARD_CURRENT_YEAR"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			s.CurrentYear = year
		}
	}
	if v := os.Getenv("HOARD_VERBOSE"); v != "" {
		s.Verbose = v == "1" || v == "true"
	}

	// Defaults
	if s.SaveFile == "" {
		s.SaveFile = "hoard.jsonl"
	}
	if s.StartingGold == 0 {
		s.StartingGold = 1000
	}
	if s.CurrentYear == 0 {
		s.CurrentYear = 1200
	}

	return s, nil
}

var (
	settingsOnce sync.Once
	settings     *Settings
)

// AppSettings returns the process-wide settings, loading them on first use
// from hoard.yaml (or $HOARD_CONFIG). Load errors fall back to defaults with
// a warning; a broken config file should not brick the game.
func AppSettings() *Settings {
	settingsOnce.Do(func() {
		path := os.Getenv("HOARD_CONFIG")
		if path == "" {
			path = "hoard.yaml"
		}
		var err error
		settings, err = LoadSettings(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
			settings, _ = LoadSettings(os.DevNull)
		}
		if settings.Verbose {
			hoard.SetLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger())
		}
	})
	return settings
}
