package config

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTuning(t *testing.T) {
	d := DefaultTuning()
	if d.AttackRadius != 100 {
		t.Errorf("AttackRadius = %v, want 100", d.AttackRadius)
	}
	if d.ReevaluateInterval != 5 {
		t.Errorf("ReevaluateInterval = %v, want 5", d.ReevaluateInterval)
	}
	if d.RetreatSamples != 10 {
		t.Errorf("RetreatSamples = %d, want 10", d.RetreatSamples)
	}
	if d.BadMargin != 2 {
		t.Errorf("BadMargin = %v, want 2", d.BadMargin)
	}

	// Defaults must already be valid.
	v := d
	v.Validate()
	if v != d {
		t.Errorf("Validate() changed defaults: %+v -> %+v", d, v)
	}
}

func TestValidate(t *testing.T) {
	tu := Tuning{
		AttackRadius:       0,
		ReevaluateInterval: -1,
		RetreatSamples:     500,
		BadMargin:          -2,
		RadiusJitter:       3,
		UnitDPS:            -1,
		CaptureTime:        0,
		ArriveDistance:     5000,
	}
	tu.Validate()

	if tu.AttackRadius != 1 {
		t.Errorf("AttackRadius = %v, want 1 (clamped)", tu.AttackRadius)
	}
	if tu.ReevaluateInterval != 0.1 {
		t.Errorf("ReevaluateInterval = %v, want 0.1 (clamped)", tu.ReevaluateInterval)
	}
	if tu.RetreatSamples != 64 {
		t.Errorf("RetreatSamples = %d, want 64 (clamped)", tu.RetreatSamples)
	}
	if tu.BadMargin != 0 {
		t.Errorf("BadMargin = %v, want 0 (clamped)", tu.BadMargin)
	}
	if tu.RadiusJitter != 0.5 {
		t.Errorf("RadiusJitter = %v, want 0.5 (clamped)", tu.RadiusJitter)
	}
	if tu.UnitDPS != 0 {
		t.Errorf("UnitDPS = %v, want 0 (clamped)", tu.UnitDPS)
	}
	if tu.CaptureTime != 0.1 {
		t.Errorf("CaptureTime = %v, want 0.1 (clamped)", tu.CaptureTime)
	}
	if tu.ArriveDistance != 1000 {
		t.Errorf("ArriveDistance = %v, want 1000 (clamped)", tu.ArriveDistance)
	}
}

func TestRadius(t *testing.T) {
	tu := DefaultTuning()
	if got := tu.Radius(4); got != 400 {
		t.Errorf("Radius(4) = %v, want 400", got)
	}
}

func TestEvaluate(t *testing.T) {
	tu := DefaultTuning()
	rng := rand.New(rand.NewSource(7))
	if got := tu.Evaluate(rng, 400); got != 400 {
		t.Errorf("Evaluate without jitter = %v, want 400", got)
	}

	tu.RadiusJitter = 0.25
	for i := 0; i < 100; i++ {
		got := tu.Evaluate(rng, 400)
		if got < 300 || got > 500 {
			t.Fatalf("Evaluate(400) with 0.25 jitter = %v, want within [300, 500]", got)
		}
	}
	if got := tu.Evaluate(nil, 400); got != 400 {
		t.Errorf("Evaluate with nil rng = %v, want 400", got)
	}
}

func TestLoadTuning(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	data := []byte("attack_radius: 50\nbad_margin: 4\ndebug: true\nretreat_samples: 0\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	tu, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning() error: %v", err)
	}
	if tu.AttackRadius != 50 || tu.BadMargin != 4 || !tu.Debug {
		t.Errorf("file values not applied: %+v", tu)
	}
	if tu.ReevaluateInterval != 5 {
		t.Errorf("ReevaluateInterval = %v, want default 5", tu.ReevaluateInterval)
	}
	if tu.RetreatSamples != 1 {
		t.Errorf("RetreatSamples = %d, want 1 (clamped)", tu.RetreatSamples)
	}
}

func TestLoadTuningErrors(t *testing.T) {
	if _, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("attack_radius: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTuning(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadBundledTuning(t *testing.T) {
	tu, err := LoadTuning(filepath.Join("..", "assets", "tuning.yaml"))
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if tu.RadiusJitter != 0.1 || tu.AttackRadius != 100 {
		t.Errorf("bundled tuning = %+v", tu)
	}
}

func TestValidateRejectsNaN(t *testing.T) {
	tu := DefaultTuning()
	tu.AttackRadius = math.NaN()
	tu.ReevaluateInterval = math.NaN()
	tu.Validate()
	if tu.AttackRadius != 1 {
		t.Errorf("AttackRadius = %v, want 1 (min)", tu.AttackRadius)
	}
	if tu.ReevaluateInterval != 0.1 {
		t.Errorf("ReevaluateInterval = %v, want 0.1 (min)", tu.ReevaluateInterval)
	}
}

func TestLoadTuningNaN(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nan.yaml")
	if err := os.WriteFile(path, []byte("attack_radius: .nan\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tu, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if tu.Radius(1) != 1 {
		t.Errorf("Radius(1) = %v, want 1", tu.Radius(1))
	}
}
