package config

import (
	_ "embed"
)

//go:embed defaults/duckhunt.yaml
var defaultDuckHuntYAML []byte

// DefaultDuckHuntConfig returns the default Duck Hunt configuration.
// The values mirror the classic tuning: a 1280x720 field, three ducks,
// six lives, ten shells, a 60 second round.
func DefaultDuckHuntConfig() DuckHuntConfig {
	return DuckHuntConfig{
		Field: FieldConfig{
			Width:  1280,
			Height: 720,
		},
		Targets: TargetConfig{
			Max:              3,
			Size:             48,
			BaseSpeed:        180,
			SpeedIncrement:   15,
			MaxSpeed:         500,
			HitFrames:        20,
			FlapInterval:     8,
			MinWaveAmplitude: 30,
			MaxWaveAmplitude: 90,
			MinWaveFrequency: 1.5,
			MaxWaveFrequency: 3.5,
			MinSpawnY:        60,
			SpawnBandFrac:    0.55,
		},
		Round: RoundConfig{
			Lives:           6,
			Ammo:            10,
			DurationSeconds: 60,
			HitReward:       100,
		},
		Particles: ParticleConfig{
			DeathBurst:  18,
			MuzzleBurst: 8,
			MinSpeed:    80,
			MaxSpeed:    220,
			MinLife:     0.15,
			MaxLife:     0.35,
			MinRadius:   3,
			MaxRadius:   7,
			Gravity:     400,
		},
	}
}
