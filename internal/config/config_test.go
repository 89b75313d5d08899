package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/theirongolddev/lima/internal/model"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("Load mismatch (-want +got):\n%s", diff)
	}
	if Exists() {
		t.Fatal("Exists() = true, want false")
	}
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Flow.FailureRate = 0.25
	cfg.Appearance.Theme = "midnight"
	cfg.Banks = []model.Bank{{ID: "monzo", Name: "Monzo", Color: "#FF5A5F"}}
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "lima", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[flow]\nstage_ms = 500\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Flow.StageMS != 500 {
		t.Fatalf("StageMS = %d, want 500", cfg.Flow.StageMS)
	}
	if cfg.Flow.FadeMS != 300 {
		t.Fatalf("FadeMS = %d, want 300", cfg.Flow.FadeMS)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "lima", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[flow]\nfailure_rate = 1.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "failure_rate") {
		t.Fatalf("Load err = %v, want failure_rate error", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"defaults", func(*Config) {}, ""},
		{"negative rate", func(c *Config) { c.Flow.FailureRate = -0.1 }, "failure_rate"},
		{"zero stage", func(c *Config) { c.Flow.StageMS = 0 }, "stage_ms"},
		{"bank without name", func(c *Config) { c.Banks = []model.Bank{{ID: "x"}} }, "required"},
		{"duplicate bank", func(c *Config) {
			c.Banks = []model.Bank{{ID: "x", Name: "X"}, {ID: "x", Name: "Y"}}
		}, "duplicate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestTimings(t *testing.T) {
	f := DefaultConfig().Flow
	got := f.Timings(1)
	if got.Stage != 2*time.Second || got.SMSAutofill != 3*time.Second || got.GoalsAutoContinue != time.Second {
		t.Fatalf("Timings(1) = %+v", got)
	}
	fast := f.Timings(10)
	if fast.Stage != 200*time.Millisecond || fast.Fade != 30*time.Millisecond {
		t.Fatalf("Timings(10) = %+v", fast)
	}
	if tiny := f.Timings(1e9); tiny.Fade != time.Millisecond {
		t.Fatalf("Timings(1e9).Fade = %v, want 1ms floor", tiny.Fade)
	}
}

func TestEnvOverrides(t *testing.T) {
	cfg := DefaultConfig()

	t.Setenv("LIMA_FAILURE_RATE", "0.5")
	if got := GetFailureRate(cfg); got != 0.5 {
		t.Fatalf("GetFailureRate = %v, want 0.5", got)
	}
	t.Setenv("LIMA_FAILURE_RATE", "7")
	if got := GetFailureRate(cfg); got != 0.1 {
		t.Fatalf("GetFailureRate with out-of-range env = %v, want 0.1", got)
	}

	t.Setenv("LIMA_LOG_LEVEL", "debug")
	if got := GetLogLevel(cfg); got != "debug" {
		t.Fatalf("GetLogLevel = %q, want debug", got)
	}
}

func TestCatalog(t *testing.T) {
	if got := Catalog(DefaultConfig()); len(got) != len(model.DefaultBanks) {
		t.Fatalf("Catalog(default) has %d banks", len(got))
	}
	cfg := DefaultConfig()
	cfg.Banks = []model.Bank{{ID: "monzo", Name: "Monzo"}}
	if got := Catalog(cfg); len(got) != 1 || got[0].ID != "monzo" {
		t.Fatalf("Catalog = %+v", got)
	}
}
