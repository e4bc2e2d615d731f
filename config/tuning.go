package config

import (
	"fmt"
	"math"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds every number the tactical layer and the simulator derive
// their behavior from. All proximity radii are multiples of AttackRadius.
type Tuning struct {
	AttackRadius       float64 `yaml:"attack_radius"`
	ReevaluateInterval float64 `yaml:"reevaluate_interval"` // simulated seconds between decisions
	RetreatSamples     int     `yaml:"retreat_samples"`
	BadMargin          float64 `yaml:"bad_margin"`    // health advantage the enemy needs before a decision goes bad
	RadiusJitter       float64 `yaml:"radius_jitter"` // 0 disables Evaluate randomisation
	Debug              bool    `yaml:"debug"`

	UnitDPS        float64 `yaml:"unit_dps"`
	CaptureTime    float64 `yaml:"capture_time"`
	ArriveDistance float64 `yaml:"arrive_distance"`
}

// DefaultTuning returns the values the game shipped with.
func DefaultTuning() Tuning {
	return Tuning{
		AttackRadius:       100,
		ReevaluateInterval: 5,
		RetreatSamples:     10,
		BadMargin:          2,
		RadiusJitter:       0,
		UnitDPS:            1,
		CaptureTime:        3,
		ArriveDistance:     5,
	}
}

// Validate clamps all fields to their valid ranges.
func (t *Tuning) Validate() {
	t.AttackRadius = clamp(t.AttackRadius, 1, 10000)
	t.ReevaluateInterval = clamp(t.ReevaluateInterval, 0.1, 600)
	t.RetreatSamples = clampInt(t.RetreatSamples, 1, 64)
	t.BadMargin = clamp(t.BadMargin, 0, 1000)
	t.RadiusJitter = clamp(t.RadiusJitter, 0, 0.5)
	t.UnitDPS = clamp(t.UnitDPS, 0, 1000)
	t.CaptureTime = clamp(t.CaptureTime, 0.1, 600)
	t.ArriveDistance = clamp(t.ArriveDistance, 0, 1000)
}

// Radius returns mult × AttackRadius.
func (t Tuning) Radius(mult float64) float64 {
	return t.AttackRadius * mult
}

// Evaluate optionally randomises v by up to ±RadiusJitter of its value.
func (t Tuning) Evaluate(rng *rand.Rand, v float64) float64 {
	if t.RadiusJitter == 0 || rng == nil {
		return v
	}
	return v * (1 + t.RadiusJitter*(2*rng.Float64()-1))
}

// LoadTuning reads a YAML tuning file over the defaults and validates the
// result. Fields absent from the file keep their default values.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if err := loadYAML(path, &t); err != nil {
		return Tuning{}, fmt.Errorf("load tuning %s: %w", path, err)
	}
	t.Validate()
	return t, nil
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// clampInt restricts v to [min, max].
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clamp restricts v to [min, max]. NaN becomes min.
func clamp(v, min, max float64) float64 {
	if math.IsNaN(v) || v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
