// Package config loads and saves the lima configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/lima/internal/model"
)

// Config holds all lima configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Flow       FlowConfig       `toml:"flow"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
	Banks      []model.Bank     `toml:"banks,omitempty"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Currency string `toml:"currency"`
}

// FlowConfig holds the delays of the simulated flows, in milliseconds, and
// the share of bank connections that fail.
type FlowConfig struct {
	StageMS             int     `toml:"stage_ms"`
	FadeMS              int     `toml:"fade_ms"`
	SMSAutofillMS       int     `toml:"sms_autofill_ms"`
	SMSConfirmMS        int     `toml:"sms_confirm_ms"`
	SMSVerifyMS         int     `toml:"sms_verify_ms"`
	GoalsAutoContinueMS int     `toml:"goals_auto_continue_ms"`
	FailureRate         float64 `toml:"failure_rate"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LogConfig controls the structured log. An empty File disables logging.
type LogConfig struct {
	File  string `toml:"file,omitempty"`
	Level string `toml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency: "₽",
		},
		Flow: FlowConfig{
			StageMS:             2000,
			FadeMS:              300,
			SMSAutofillMS:       3000,
			SMSConfirmMS:        300,
			SMSVerifyMS:         500,
			GoalsAutoContinueMS: 1000,
			FailureRate:         0.1,
		},
		Appearance: AppearanceConfig{
			Theme: "lima-dark",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Flow.FailureRate < 0 || c.Flow.FailureRate > 1 {
		return fmt.Errorf("flow.failure_rate %v: must be within [0, 1]", c.Flow.FailureRate)
	}
	durations := []struct {
		name string
		ms   int
	}{
		{"stage_ms", c.Flow.StageMS},
		{"fade_ms", c.Flow.FadeMS},
		{"sms_autofill_ms", c.Flow.SMSAutofillMS},
		{"sms_confirm_ms", c.Flow.SMSConfirmMS},
		{"sms_verify_ms", c.Flow.SMSVerifyMS},
		{"goals_auto_continue_ms", c.Flow.GoalsAutoContinueMS},
	}
	for _, d := range durations {
		if d.ms <= 0 {
			return fmt.Errorf("flow.%s %d: must be positive", d.name, d.ms)
		}
	}
	seen := make(map[string]bool, len(c.Banks))
	for i, b := range c.Banks {
		if b.ID == "" || b.Name == "" {
			return fmt.Errorf("banks[%d]: id and name are required", i)
		}
		if seen[b.ID] {
			return fmt.Errorf("banks[%d]: duplicate id %q", i, b.ID)
		}
		seen[b.ID] = true
	}
	return nil
}

// Timings are the flow delays as durations.
type Timings struct {
	Stage             time.Duration
	Fade              time.Duration
	SMSAutofill       time.Duration
	SMSConfirm        time.Duration
	SMSVerify         time.Duration
	GoalsAutoContinue time.Duration
}

// Timings converts the flow delays, dividing them by speedup when it is
// greater than one (the --fast flag).
func (f FlowConfig) Timings(speedup float64) Timings {
	ms := func(v int) time.Duration {
		d := time.Duration(v) * time.Millisecond
		if speedup > 1 {
			d = time.Duration(float64(d) / speedup)
		}
		return max(d, time.Millisecond)
	}
	return Timings{
		Stage:             ms(f.StageMS),
		Fade:              ms(f.FadeMS),
		SMSAutofill:       ms(f.SMSAutofillMS),
		SMSConfirm:        ms(f.SMSConfirmMS),
		SMSVerify:         ms(f.SMSVerifyMS),
		GoalsAutoContinue: ms(f.GoalsAutoContinueMS),
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "lima")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "lima")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", ConfigPath(), err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// GetFailureRate returns LIMA_FAILURE_RATE when it holds a usable rate,
// otherwise the configured one.
func GetFailureRate(cfg Config) float64 {
	if v := os.Getenv("LIMA_FAILURE_RATE"); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil && r >= 0 && r <= 1 {
			return r
		}
	}
	return cfg.Flow.FailureRate
}

// GetLogLevel returns the log level from env var or config, in that order.
func GetLogLevel(cfg Config) string {
	if v := strings.TrimSpace(os.Getenv("LIMA_LOG_LEVEL")); v != "" {
		return v
	}
	return cfg.Log.Level
}

// Catalog returns the configured banks, or the default catalog.
func Catalog(cfg Config) model.Catalog {
	if len(cfg.Banks) == 0 {
		return model.DefaultBanks
	}
	return model.Catalog(cfg.Banks)
}
