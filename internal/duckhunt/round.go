package duckhunt

import (
	"math/rand"

	"github.com/vovakirdan/duckhunt/internal/config"
	"github.com/vovakirdan/duckhunt/internal/core"
)

// Phase is the round's top-level state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseEnded
)

// EndReason records why a round ended. Valid only while PhaseEnded.
type EndReason int

const (
	EndReasonNone EndReason = iota
	EndReasonTimeUp
	EndReasonOutOfAmmo
	EndReasonNoLives
)

// String returns a short identifier for the end reason.
func (r EndReason) String() string {
	switch r {
	case EndReasonNone:
		return "None"
	case EndReasonTimeUp:
		return "TimeUp"
	case EndReasonOutOfAmmo:
		return "OutOfAmmo"
	case EndReasonNoLives:
		return "NoLivesLeft"
	default:
		return "Unknown"
	}
}

// Slug returns the stable identifier used in persisted round records.
func (r EndReason) Slug() string {
	switch r {
	case EndReasonTimeUp:
		return "time_up"
	case EndReasonOutOfAmmo:
		return "out_of_ammo"
	case EndReasonNoLives:
		return "no_lives"
	default:
		return "none"
	}
}

// Banner returns the end-screen headline for the reason.
func (r EndReason) Banner() string {
	switch r {
	case EndReasonTimeUp:
		return "TIME'S UP!"
	case EndReasonOutOfAmmo:
		return "OUT OF AMMO!"
	case EndReasonNoLives:
		return "GAME OVER!"
	default:
		return ""
	}
}

// Round aggregates all mutable state of one game round: resources, the
// fixed duck pool, the particle set and the reticle. A round is created,
// stepped until it ends, and replaced wholesale on restart; once ended it
// never mutates score, ammo or lives again.
type Round struct {
	Score    int
	Lives    int
	Ammo     int
	TimeLeft float64 // seconds, clamped at zero
	Speed    float64 // shared target speed, non-decreasing, capped

	Phase     Phase
	EndReason EndReason

	// Reticle position in field pixels, clamped to the field rectangle.
	ReticleX float64
	ReticleY float64

	Ducks     []*Duck
	Particles *ParticleSystem

	cfg  config.DuckHuntConfig
	rng  *rand.Rand
	tick uint64
}

// NewRound constructs a fresh round from a validated configuration.
// Malformed configuration is a construction-time error; the per-tick code
// assumes it can never see one.
func NewRound(cfg config.DuckHuntConfig, rng *rand.Rand) (*Round, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Round{
		Score:     0,
		Lives:     cfg.Round.Lives,
		Ammo:      cfg.Round.Ammo,
		TimeLeft:  cfg.Round.DurationSeconds,
		Speed:     cfg.Targets.BaseSpeed,
		Phase:     PhasePlaying,
		EndReason: EndReasonNone,
		ReticleX:  cfg.Field.Width / 2,
		ReticleY:  cfg.Field.Height / 2,
		Particles: NewParticleSystem(cfg.Particles),
		cfg:       cfg,
		rng:       rng,
	}

	r.Ducks = make([]*Duck, cfg.Targets.Max)
	for i := range r.Ducks {
		r.Ducks[i] = NewDuck(cfg.Targets, cfg.Field.Width, cfg.Field.Height, rng, r.Speed)
	}

	return r, nil
}

// Config returns the immutable configuration the round was built with.
func (r *Round) Config() config.DuckHuntConfig {
	return r.cfg
}

// Tick returns the number of simulation steps taken so far.
func (r *Round) Tick() uint64 {
	return r.tick
}

// Step advances the round by dt seconds using this tick's input sample.
// The order is fixed: timer, shot, out-of-ammo check, ducks, particles.
// After the round has ended the entities keep animating so the effects
// play out, but score, ammo and lives are frozen.
func (r *Round) Step(dt float64, in core.InputFrame) {
	r.tick++

	r.moveReticle(in)
	r.advanceTimer(dt)

	if in.Has(core.ActionFire) {
		r.fire()
	}

	r.checkOutOfAmmo()
	r.advanceDucks(dt)
	r.Particles.Advance(dt)
}

// moveReticle integrates the pointer delta into the clamped reticle
// position. The reticle keeps tracking even on an ended round.
func (r *Round) moveReticle(in core.InputFrame) {
	r.ReticleX = core.ClampF(r.ReticleX+in.PointerDX, 0, r.cfg.Field.Width-1)
	r.ReticleY = core.ClampF(r.ReticleY+in.PointerDY, 0, r.cfg.Field.Height-1)
}

// advanceTimer counts the round clock down and ends the round on zero.
func (r *Round) advanceTimer(dt float64) {
	if r.Phase != PhasePlaying {
		return
	}
	r.TimeLeft -= dt
	if r.TimeLeft <= 0 {
		r.TimeLeft = 0
		r.end(EndReasonTimeUp)
	}
}

// fire resolves one shot at the current reticle position.
// A trigger with no ammo or on an ended round is a silent no-op. The scan
// runs in pool index order and the first Flying duck under the reticle
// wins; overlapping ducks at higher indices are left untouched.
func (r *Round) fire() {
	if r.Phase != PhasePlaying || r.Ammo <= 0 {
		return
	}
	r.Ammo--

	for _, d := range r.Ducks {
		if d.State != StateFlying || !d.Collides(r.ReticleX, r.ReticleY) {
			continue
		}
		d.Shoot()
		r.Score += r.cfg.Round.HitReward
		r.Speed = core.ClampF(r.Speed+r.cfg.Targets.SpeedIncrement, 0, r.cfg.Targets.MaxSpeed)
		r.Particles.Burst(r.rng, d.X, d.Y, r.cfg.Particles.DeathBurst)
		break
	}

	// Muzzle flash at the reticle whether or not anything was hit. A miss
	// just costs a shell.
	r.Particles.Burst(r.rng, r.ReticleX, r.ReticleY, r.cfg.Particles.MuzzleBurst)
}

// checkOutOfAmmo ends the round when the clip is empty while every pooled
// duck is still Flying. The literal "all currently Flying" check is kept:
// it can also trip after a respawned replacement fills the pool back up,
// which matches the original behavior.
func (r *Round) checkOutOfAmmo() {
	if r.Phase != PhasePlaying || r.Ammo != 0 {
		return
	}
	for _, d := range r.Ducks {
		if d.State != StateFlying {
			return
		}
	}
	r.end(EndReasonOutOfAmmo)
}

// advanceDucks moves every duck and recycles escapes and finished kills.
// An escape costs a life only while the round is still being played; the
// pool size never changes either way.
func (r *Round) advanceDucks(dt float64) {
	for _, d := range r.Ducks {
		d.Advance(dt, r.Speed)

		if d.State == StateFlying && d.Offscreen() {
			if r.Phase == PhasePlaying {
				r.Lives--
				if r.Lives <= 0 {
					r.Lives = 0
					r.end(EndReasonNoLives)
				}
			}
			d.Reset(r.rng, r.Speed)
			continue
		}

		if d.State == StateGone {
			d.Reset(r.rng, r.Speed)
		}
	}
}

// end transitions to PhaseEnded exactly once; later calls are ignored so
// the first reason sticks.
func (r *Round) end(reason EndReason) {
	if r.Phase == PhaseEnded {
		return
	}
	r.Phase = PhaseEnded
	r.EndReason = reason
}
