package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the settings shared by the nsget, nswatch and nsrecord
// commands. Thresholds are always stored in mg/dL; units only affect display.
type Config struct {
	URL         string
	AccessToken string
	APISecret   string

	Units          string
	RefreshSeconds int

	TargetLow  int
	TargetHigh int
	UrgentLow  int
	UrgentHigh int

	AlertRepeatMinutes int

	DatabasePath   string
	RecordSchedule string
}

const (
	defaultConfigPath = "~/.config/nightscout-go/config.toml"
	defaultDBPath     = "~/.local/share/nightscout-go/entries.db"

	defaultUnits          = "mg/dL"
	defaultRefreshSeconds = 60
	defaultTargetLow      = 70
	defaultTargetHigh     = 180
	defaultUrgentLow      = 55
	defaultUrgentHigh     = 250
	defaultRepeatMinutes  = 15
	defaultRecordSchedule = "@every 5m"
)

// Load locates and parses the config file, falling back to defaults when it
// is missing. Environment variables NIGHTSCOUT_URL, NIGHTSCOUT_TOKEN and
// NIGHTSCOUT_API_SECRET override the file's connection settings.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	data, err := os.ReadFile(resolved)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		var raw struct {
			URL                string `toml:"url"`
			AccessToken        string `toml:"access_token"`
			APISecret          string `toml:"api_secret"`
			Units              string `toml:"units"`
			RefreshSeconds     int    `toml:"refresh_seconds"`
			TargetLow          int    `toml:"target_low"`
			TargetHigh         int    `toml:"target_high"`
			UrgentLow          int    `toml:"urgent_low"`
			UrgentHigh         int    `toml:"urgent_high"`
			AlertRepeatMinutes int    `toml:"alert_repeat_minutes"`
			DatabasePath       string `toml:"database_path"`
			RecordSchedule     string `toml:"record_schedule"`
		}
		if err := toml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}

		cfg.URL = strings.TrimSpace(raw.URL)
		cfg.AccessToken = strings.TrimSpace(raw.AccessToken)
		cfg.APISecret = strings.TrimSpace(raw.APISecret)
		if units := strings.TrimSpace(raw.Units); units != "" {
			cfg.Units = units
		}
		if raw.RefreshSeconds > 0 {
			cfg.RefreshSeconds = raw.RefreshSeconds
		}
		if raw.TargetLow > 0 {
			cfg.TargetLow = raw.TargetLow
		}
		if raw.TargetHigh > 0 {
			cfg.TargetHigh = raw.TargetHigh
		}
		if raw.UrgentLow > 0 {
			cfg.UrgentLow = raw.UrgentLow
		}
		if raw.UrgentHigh > 0 {
			cfg.UrgentHigh = raw.UrgentHigh
		}
		if raw.AlertRepeatMinutes > 0 {
			cfg.AlertRepeatMinutes = raw.AlertRepeatMinutes
		}
		if dbPath := strings.TrimSpace(raw.DatabasePath); dbPath != "" {
			cfg.DatabasePath = dbPath
		}
		if schedule := strings.TrimSpace(raw.RecordSchedule); schedule != "" {
			cfg.RecordSchedule = schedule
		}
	}

	applyEnvOverrides(&cfg)
	cfg.DatabasePath = mustExpand(cfg.DatabasePath)
	return cfg, nil
}

// Validate reports whether the config can reach a server at all.
func (c Config) Validate() error {
	if strings.TrimSpace(c.URL) == "" {
		return errors.New("no server URL configured; set url in the config file or NIGHTSCOUT_URL")
	}
	return nil
}

// UseMmol reports whether values should be displayed in mmol/L.
func (c Config) UseMmol() bool {
	return strings.EqualFold(c.Units, "mmol/l") || strings.EqualFold(c.Units, "mmol")
}

func defaults() Config {
	return Config{
		Units:              defaultUnits,
		RefreshSeconds:     defaultRefreshSeconds,
		TargetLow:          defaultTargetLow,
		TargetHigh:         defaultTargetHigh,
		UrgentLow:          defaultUrgentLow,
		UrgentHigh:         defaultUrgentHigh,
		AlertRepeatMinutes: defaultRepeatMinutes,
		DatabasePath:       defaultDBPath,
		RecordSchedule:     defaultRecordSchedule,
	}
}

func applyEnvOverrides(cfg *Config) {
	if url := strings.TrimSpace(os.Getenv("NIGHTSCOUT_URL")); url != "" {
		cfg.URL = url
	}
	if token := strings.TrimSpace(os.Getenv("NIGHTSCOUT_TOKEN")); token != "" {
		cfg.AccessToken = token
	}
	if secret := strings.TrimSpace(os.Getenv("NIGHTSCOUT_API_SECRET")); secret != "" {
		cfg.APISecret = secret
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
