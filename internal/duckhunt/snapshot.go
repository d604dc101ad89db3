package duckhunt

// Snapshot contains the complete observable round state for one tick.
// Uses primitive types only for stable serialization; fractional values
// are scaled by 1000.
type Snapshot struct {
	Tick uint64

	Score        int
	Lives        int
	Ammo         int
	TimeLeftMs   int // Remaining round time in milliseconds
	SpeedMilli   int // Shared target speed, px/s scaled by 1000
	Ended        bool
	EndReason    int // EndReason value, meaningful only when Ended
	ReticleX     int
	ReticleY     int
	TargetCount  int
	ParticleCnt  int

	Targets   []TargetSnapshot
	Particles []ParticleSnapshot
}

// TargetSnapshot is one duck's observable state.
type TargetSnapshot struct {
	X, Y   int
	Dir    int // -1 left, +1 right
	State  int // Lifecycle value
	WingUp bool
}

// ParticleSnapshot is one particle's observable state.
type ParticleSnapshot struct {
	X, Y        int
	Radius      int
	Color       uint8
	LifeFracMil int // LifeFraction scaled by 1000
}

// Snapshot returns the current round state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	r := g.round

	targets := make([]TargetSnapshot, len(r.Ducks))
	for i, d := range r.Ducks {
		targets[i] = TargetSnapshot{
			X:      int(d.X),
			Y:      int(d.Y),
			Dir:    int(d.Dir),
			State:  int(d.State),
			WingUp: d.WingUp,
		}
	}

	live := r.Particles.Particles()
	particles := make([]ParticleSnapshot, len(live))
	for i, p := range live {
		particles[i] = ParticleSnapshot{
			X:           int(p.X),
			Y:           int(p.Y),
			Radius:      p.Radius,
			Color:       uint8(p.Color),
			LifeFracMil: int(p.LifeFraction() * 1000),
		}
	}

	return Snapshot{
		Tick:        r.tick,
		Score:       r.Score,
		Lives:       r.Lives,
		Ammo:        r.Ammo,
		TimeLeftMs:  int(r.TimeLeft * 1000),
		SpeedMilli:  int(r.Speed * 1000),
		Ended:       r.Phase == PhaseEnded,
		EndReason:   int(r.EndReason),
		ReticleX:    int(r.ReticleX),
		ReticleY:    int(r.ReticleY),
		TargetCount: len(targets),
		ParticleCnt: len(particles),
		Targets:     targets,
		Particles:   particles,
	}
}
