// Package config provides YAML-based game configuration loading for the
// duck hunt platform.
package config

import "fmt"

// DuckHuntConfig contains all tuning for the Duck Hunt simulation.
// It is loaded once, validated, and then passed into the round as an
// immutable value; nothing mutates it mid-game.
type DuckHuntConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Targets   TargetConfig    `yaml:"targets"`
	Round     RoundConfig     `yaml:"round"`
	Particles ParticleConfig `yaml:"particles"`
}

// FieldConfig defines the virtual play field the simulation runs in.
// The field is measured in pixels and independent of terminal size; the
// renderer projects field coordinates onto screen cells.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TargetConfig defines duck movement and hitbox parameters.
type TargetConfig struct {
	Max            int     `yaml:"max"`             // Pool size, constant per round
	Size           float64 `yaml:"size"`            // Sprite size in field pixels
	BaseSpeed      float64 `yaml:"base_speed"`      // px/s at round start
	SpeedIncrement float64 `yaml:"speed_increment"` // Added per duck shot
	MaxSpeed       float64 `yaml:"max_speed"`       // Shared speed cap
	HitFrames      int     `yaml:"hit_frames"`      // Ticks a hit duck lingers before respawn
	FlapInterval   int     `yaml:"flap_interval"`   // Ticks per wing phase

	MinWaveAmplitude float64 `yaml:"min_wave_amplitude"`
	MaxWaveAmplitude float64 `yaml:"max_wave_amplitude"`
	MinWaveFrequency float64 `yaml:"min_wave_frequency"`
	MaxWaveFrequency float64 `yaml:"max_wave_frequency"`

	MinSpawnY     float64 `yaml:"min_spawn_y"`     // Top margin for the flight baseline
	SpawnBandFrac float64 `yaml:"spawn_band_frac"` // Fraction of field height open for spawning
}

// RoundConfig defines round-level resources.
type RoundConfig struct {
	Lives           int     `yaml:"lives"`
	Ammo            int     `yaml:"ammo"`
	DurationSeconds float64 `yaml:"duration_seconds"`
	HitReward       int     `yaml:"hit_reward"`
}

// ParticleConfig defines burst effect tuning.
type ParticleConfig struct {
	DeathBurst  int     `yaml:"death_burst"`  // Particles per destroyed duck
	MuzzleBurst int     `yaml:"muzzle_burst"` // Particles per shot at the reticle
	MinSpeed    float64 `yaml:"min_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	MinLife     float64 `yaml:"min_life"` // Seconds
	MaxLife     float64 `yaml:"max_life"`
	MinRadius   int     `yaml:"min_radius"`
	MaxRadius   int     `yaml:"max_radius"`
	Gravity     float64 `yaml:"gravity"` // px/s² pulling particles down
}

// Validate checks the configuration for values the simulation cannot run
// with. A malformed config is rejected here, before a round exists, rather
// than failing mid-tick.
func (c DuckHuntConfig) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("config: field dimensions must be positive, got %.0fx%.0f", c.Field.Width, c.Field.Height)
	}
	if c.Targets.Max <= 0 {
		return fmt.Errorf("config: target pool size must be positive, got %d", c.Targets.Max)
	}
	if c.Targets.Size <= 0 {
		return fmt.Errorf("config: target size must be positive, got %.1f", c.Targets.Size)
	}
	if c.Targets.BaseSpeed <= 0 {
		return fmt.Errorf("config: base speed must be positive, got %.1f", c.Targets.BaseSpeed)
	}
	if c.Targets.MaxSpeed < c.Targets.BaseSpeed {
		return fmt.Errorf("config: max speed %.1f is below base speed %.1f", c.Targets.MaxSpeed, c.Targets.BaseSpeed)
	}
	if c.Targets.SpeedIncrement < 0 {
		return fmt.Errorf("config: speed increment must not be negative, got %.1f", c.Targets.SpeedIncrement)
	}
	if c.Targets.HitFrames <= 0 {
		return fmt.Errorf("config: hit frames must be positive, got %d", c.Targets.HitFrames)
	}
	if c.Targets.FlapInterval <= 0 {
		return fmt.Errorf("config: flap interval must be positive, got %d", c.Targets.FlapInterval)
	}
	if c.Targets.MinWaveAmplitude > c.Targets.MaxWaveAmplitude {
		return fmt.Errorf("config: wave amplitude range is inverted")
	}
	if c.Targets.MinWaveFrequency > c.Targets.MaxWaveFrequency {
		return fmt.Errorf("config: wave frequency range is inverted")
	}
	if c.Targets.SpawnBandFrac <= 0 || c.Targets.SpawnBandFrac > 1 {
		return fmt.Errorf("config: spawn band fraction must be in (0, 1], got %.2f", c.Targets.SpawnBandFrac)
	}
	if c.Round.Lives <= 0 {
		return fmt.Errorf("config: starting lives must be positive, got %d", c.Round.Lives)
	}
	if c.Round.Ammo <= 0 {
		return fmt.Errorf("config: starting ammo must be positive, got %d", c.Round.Ammo)
	}
	if c.Round.DurationSeconds <= 0 {
		return fmt.Errorf("config: round duration must be positive, got %.1f", c.Round.DurationSeconds)
	}
	if c.Round.HitReward < 0 {
		return fmt.Errorf("config: hit reward must not be negative, got %d", c.Round.HitReward)
	}
	if c.Particles.DeathBurst < 0 || c.Particles.MuzzleBurst < 0 {
		return fmt.Errorf("config: burst sizes must not be negative")
	}
	if c.Particles.MinLife <= 0 || c.Particles.MinLife > c.Particles.MaxLife {
		return fmt.Errorf("config: particle life range must be positive and ordered")
	}
	if c.Particles.MinRadius < 1 || c.Particles.MinRadius > c.Particles.MaxRadius {
		return fmt.Errorf("config: particle radius range must start at 1 and be ordered")
	}
	if c.Particles.MinSpeed < 0 || c.Particles.MinSpeed > c.Particles.MaxSpeed {
		return fmt.Errorf("config: particle speed range must be non-negative and ordered")
	}
	return nil
}
