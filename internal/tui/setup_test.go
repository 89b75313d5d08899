package tui

import (
	"testing"

	"github.com/theirongolddev/lima/internal/config"
)

func TestSetupValuesRoundTrip(t *testing.T) {
	cfg := config.DefaultConfig()
	v := SetupValuesFrom(cfg)
	if v.Speed != SpeedNormal || v.Theme != cfg.Appearance.Theme || v.FailureRate != "0.1" {
		t.Fatalf("SetupValuesFrom = %+v", *v)
	}

	v.Speed = SpeedFast
	v.Theme = "midnight"
	v.FailureRate = "0.25"
	got, err := v.Apply(cfg)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got.Flow.StageMS != cfg.Flow.StageMS/fastDivisor {
		t.Fatalf("StageMS = %d, want %d", got.Flow.StageMS, cfg.Flow.StageMS/fastDivisor)
	}
	if got.Flow.FailureRate != 0.25 {
		t.Fatalf("FailureRate = %v, want 0.25", got.Flow.FailureRate)
	}
	if got.Appearance.Theme != "midnight" {
		t.Fatalf("Theme = %q, want midnight", got.Appearance.Theme)
	}
	if SetupValuesFrom(got).Speed != SpeedFast {
		t.Fatal("fast preset not recognized")
	}
}

func TestSetupApplyRejectsBadRate(t *testing.T) {
	for _, rate := range []string{"abc", "1.5", "-0.1"} {
		v := &SetupValues{Theme: "lima-dark", Speed: SpeedNormal, FailureRate: rate}
		if _, err := v.Apply(config.DefaultConfig()); err == nil {
			t.Fatalf("Apply accepted failure rate %q", rate)
		}
		if validateRate(rate) == nil {
			t.Fatalf("validateRate accepted %q", rate)
		}
	}
}

func TestUnknownThemeFallsBack(t *testing.T) {
	v := &SetupValues{Theme: "nope", Speed: SpeedNormal, FailureRate: "0"}
	got, err := v.Apply(config.DefaultConfig())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got.Appearance.Theme != "lima-dark" {
		t.Fatalf("Theme = %q, want lima-dark", got.Appearance.Theme)
	}
}
