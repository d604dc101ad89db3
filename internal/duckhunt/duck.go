// Package duckhunt implements the Duck Hunt arcade game: ducks cross the
// field on wavy flight paths while the player tracks them with a reticle
// and spends limited shells before the countdown runs out.
package duckhunt

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/duckhunt/internal/config"
)

// Direction of horizontal travel across the field.
type Direction int

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// Lifecycle tracks how a duck participates in the simulation.
// Only StateFlying ducks are eligible for collision and life loss.
type Lifecycle int

const (
	StateFlying Lifecycle = iota // airborne and shootable
	StateHit                     // shot, lingering a few ticks before removal
	StateGone                    // finished dying, awaiting in-place respawn
)

// String returns a human-readable name for the lifecycle state.
func (l Lifecycle) String() string {
	switch l {
	case StateFlying:
		return "Flying"
	case StateHit:
		return "Hit"
	case StateGone:
		return "Gone"
	default:
		return "Unknown"
	}
}

// Duck is one pooled target. Ducks are never destroyed: the round resets
// them in place, so the pool keeps a constant size for the whole round.
type Duck struct {
	X, Y  float64
	Dir   Direction
	Speed float64

	// The flight path is a sine offset from a baseline fixed at spawn.
	BaseY    float64
	WaveAmp  float64
	WaveFreq float64

	State    Lifecycle
	HitTimer int // ticks remaining in StateHit

	// Wing flap is presentation-only but deterministic per-tick state,
	// so it lives on the entity rather than in the renderer.
	FlapFrame int
	WingUp    bool

	flightTime float64 // seconds since spawn, drives the wave phase

	cfg    config.TargetConfig
	fieldW float64
	fieldH float64
}

// NewDuck creates a duck bound to the given field and immediately spawns it.
func NewDuck(cfg config.TargetConfig, fieldW, fieldH float64, rng *rand.Rand, speed float64) *Duck {
	d := &Duck{
		cfg:    cfg,
		fieldW: fieldW,
		fieldH: fieldH,
	}
	d.Reset(rng, speed)
	return d
}

// Reset respawns the duck in place: random direction, a start position just
// off-screen on the matching side, a fresh baseline in the upper spawn band
// and new wave parameters. The pool index never changes.
func (d *Duck) Reset(rng *rand.Rand, speed float64) {
	d.Speed = speed

	if rng.Intn(2) == 0 {
		d.Dir = DirLeft
	} else {
		d.Dir = DirRight
	}
	if d.Dir == DirRight {
		d.X = -d.cfg.Size
	} else {
		d.X = d.fieldW + d.cfg.Size
	}

	minY := d.cfg.MinSpawnY
	maxY := d.fieldH * d.cfg.SpawnBandFrac
	if maxY < minY {
		maxY = minY
	}
	d.BaseY = minY + rng.Float64()*(maxY-minY)
	d.Y = d.BaseY

	d.WaveAmp = d.cfg.MinWaveAmplitude + rng.Float64()*(d.cfg.MaxWaveAmplitude-d.cfg.MinWaveAmplitude)
	d.WaveFreq = d.cfg.MinWaveFrequency + rng.Float64()*(d.cfg.MaxWaveFrequency-d.cfg.MinWaveFrequency)
	d.flightTime = 0

	d.State = StateFlying
	d.HitTimer = 0
	d.FlapFrame = 0
	d.WingUp = true
}

// Advance moves the duck by dt seconds at the shared target speed.
// Hit ducks keep drifting while their timer runs down; only a fully Gone
// duck (waiting to be recycled this tick) is skipped.
func (d *Duck) Advance(dt float64, speed float64) {
	if d.State == StateGone {
		return
	}

	// Speed is shared round state, broadcast each tick so surviving ducks
	// speed up live.
	d.Speed = speed
	d.flightTime += dt
	d.X += float64(d.Dir) * d.Speed * dt
	d.Y = d.BaseY + math.Sin(d.flightTime*d.WaveFreq)*d.WaveAmp

	d.FlapFrame++
	if d.FlapFrame >= d.cfg.FlapInterval {
		d.FlapFrame = 0
		d.WingUp = !d.WingUp
	}

	if d.State == StateHit {
		d.HitTimer--
		if d.HitTimer <= 0 {
			d.State = StateGone
		}
	}
}

// Offscreen reports whether the duck has flown beyond twice its size past
// either horizontal edge. The round only acts on this while the duck is
// still Flying.
func (d *Duck) Offscreen() bool {
	return d.X < -d.cfg.Size*2 || d.X > d.fieldW+d.cfg.Size*2
}

// Collides tests the point (px, py) against the duck's generous hitbox.
// Pure geometry; callers must additionally require StateFlying.
func (d *Duck) Collides(px, py float64) bool {
	hw := d.cfg.Size * 0.9
	hh := d.cfg.Size * 0.6
	return math.Abs(px-d.X) < hw && math.Abs(py-d.Y) < hh
}

// Shoot transitions a flying duck to StateHit and arms its removal timer.
// Returns false (a silent no-op) if the duck is already hit or gone.
func (d *Duck) Shoot() bool {
	if d.State != StateFlying {
		return false
	}
	d.State = StateHit
	d.HitTimer = d.cfg.HitFrames
	return true
}
