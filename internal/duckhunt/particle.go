package duckhunt

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/duckhunt/internal/config"
	"github.com/vovakirdan/duckhunt/internal/core"
)

// burstPalette holds the muzzle-flash colors particles are drawn in.
var burstPalette = []core.Color{
	core.ColorBrightYellow,
	core.ColorOrange,
	core.ColorBrightRed,
}

// Particle is one short-lived burst fragment with simple ballistics.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64 // seconds remaining, strictly decreasing
	MaxLife float64
	Radius  int
	Color   core.Color
}

// LifeFraction returns the remaining life as a fraction of the total,
// clamped to [0, 1]. Renderers shrink and fade particles with it.
func (p Particle) LifeFraction() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(p.Life/p.MaxLife, 0, 1)
}

// ParticleSystem owns the dynamically sized set of live particles.
// It is the one truly ephemeral container in the simulation: bursts append,
// every Advance prunes expired entries in place.
type ParticleSystem struct {
	cfg       config.ParticleConfig
	particles []Particle
}

// NewParticleSystem creates an empty particle system with the given tuning.
func NewParticleSystem(cfg config.ParticleConfig) *ParticleSystem {
	return &ParticleSystem{
		cfg:       cfg,
		particles: make([]Particle, 0, 64),
	}
}

// Burst spawns count particles at (x, y) with random outward velocities.
func (ps *ParticleSystem) Burst(rng *rand.Rand, x, y float64, count int) {
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := ps.cfg.MinSpeed + rng.Float64()*(ps.cfg.MaxSpeed-ps.cfg.MinSpeed)
		life := ps.cfg.MinLife + rng.Float64()*(ps.cfg.MaxLife-ps.cfg.MinLife)

		ps.particles = append(ps.particles, Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    life,
			MaxLife: life,
			Radius:  ps.cfg.MinRadius + rng.Intn(ps.cfg.MaxRadius-ps.cfg.MinRadius+1),
			Color:   burstPalette[rng.Intn(len(burstPalette))],
		})
	}
}

// Advance integrates every particle by dt seconds and drops the ones whose
// life has run out. The backing array is reused, no per-tick allocation.
func (ps *ParticleSystem) Advance(dt float64) {
	alive := ps.particles[:0]
	for i := range ps.particles {
		p := ps.particles[i]
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VY += ps.cfg.Gravity * dt
		p.Life -= dt
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	ps.particles = alive
}

// Particles returns the current live particle set.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Clear removes all particles, keeping the backing storage.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}
