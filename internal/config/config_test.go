package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultDuckHuntConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg DuckHuntConfig
	if err := yaml.Unmarshal(defaultDuckHuntYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}

	def := DefaultDuckHuntConfig()
	if cfg != def {
		t.Errorf("embedded YAML differs from hardcoded defaults:\nembedded: %+v\ndefaults: %+v", cfg, def)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DuckHuntConfig)
	}{
		{"zero pool size", func(c *DuckHuntConfig) { c.Targets.Max = 0 }},
		{"negative pool size", func(c *DuckHuntConfig) { c.Targets.Max = -1 }},
		{"zero field width", func(c *DuckHuntConfig) { c.Field.Width = 0 }},
		{"max speed below base", func(c *DuckHuntConfig) { c.Targets.MaxSpeed = c.Targets.BaseSpeed - 1 }},
		{"zero hit frames", func(c *DuckHuntConfig) { c.Targets.HitFrames = 0 }},
		{"zero flap interval", func(c *DuckHuntConfig) { c.Targets.FlapInterval = 0 }},
		{"inverted wave amplitude", func(c *DuckHuntConfig) { c.Targets.MinWaveAmplitude = c.Targets.MaxWaveAmplitude + 1 }},
		{"spawn band above 1", func(c *DuckHuntConfig) { c.Targets.SpawnBandFrac = 1.5 }},
		{"zero lives", func(c *DuckHuntConfig) { c.Round.Lives = 0 }},
		{"zero ammo", func(c *DuckHuntConfig) { c.Round.Ammo = 0 }},
		{"zero duration", func(c *DuckHuntConfig) { c.Round.DurationSeconds = 0 }},
		{"negative reward", func(c *DuckHuntConfig) { c.Round.HitReward = -100 }},
		{"negative burst", func(c *DuckHuntConfig) { c.Particles.DeathBurst = -1 }},
		{"zero particle life", func(c *DuckHuntConfig) { c.Particles.MinLife = 0 }},
		{"zero particle radius", func(c *DuckHuntConfig) { c.Particles.MinRadius = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDuckHuntConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should reject the config, got nil")
			}
		})
	}
}

func TestLoadDuckHuntCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	custom := `
field:
  width: 640
  height: 360
targets:
  max: 5
  size: 32
  base_speed: 120
  speed_increment: 10
  max_speed: 300
  hit_frames: 15
  flap_interval: 6
  min_wave_amplitude: 20
  max_wave_amplitude: 40
  min_wave_frequency: 1.0
  max_wave_frequency: 2.0
  min_spawn_y: 40
  spawn_band_frac: 0.5
round:
  lives: 3
  ammo: 6
  duration_seconds: 30
  hit_reward: 50
particles:
  death_burst: 10
  muzzle_burst: 4
  min_speed: 50
  max_speed: 100
  min_life: 0.1
  max_life: 0.2
  min_radius: 2
  max_radius: 4
  gravity: 200
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}

	cfg, err := LoadDuckHunt(path)
	if err != nil {
		t.Fatalf("LoadDuckHunt() failed: %v", err)
	}

	if cfg.Targets.Max != 5 {
		t.Errorf("Targets.Max = %d, expected 5", cfg.Targets.Max)
	}
	if cfg.Round.Ammo != 6 {
		t.Errorf("Round.Ammo = %d, expected 6", cfg.Round.Ammo)
	}
	if cfg.Field.Width != 640 {
		t.Errorf("Field.Width = %f, expected 640", cfg.Field.Width)
	}
}

func TestLoadDuckHuntRejectsInvalidCustom(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")

	// Zero-size target pool must fail at load time, not mid-tick.
	bad := `
field: {width: 1280, height: 720}
targets: {max: 0}
`
	if err := os.WriteFile(path, []byte(bad), 0o600); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}

	if _, err := LoadDuckHunt(path); err == nil {
		t.Error("LoadDuckHunt() should reject a zero-size target pool")
	}
}

func TestLoadDuckHuntMissingCustomPath(t *testing.T) {
	if _, err := LoadDuckHunt(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadDuckHunt() should fail for a missing custom path")
	}
}
