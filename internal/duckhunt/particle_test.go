package duckhunt

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/duckhunt/internal/config"
)

func testParticleConfig() config.ParticleConfig {
	return config.DefaultDuckHuntConfig().Particles
}

func TestParticleBurstCount(t *testing.T) {
	cfg := testParticleConfig()
	ps := NewParticleSystem(cfg)
	rng := rand.New(rand.NewSource(1))

	ps.Burst(rng, 100, 100, cfg.DeathBurst)
	if ps.Len() != cfg.DeathBurst {
		t.Errorf("Len() = %d, expected %d", ps.Len(), cfg.DeathBurst)
	}

	ps.Burst(rng, 200, 200, cfg.MuzzleBurst)
	if ps.Len() != cfg.DeathBurst+cfg.MuzzleBurst {
		t.Errorf("Len() = %d, expected %d", ps.Len(), cfg.DeathBurst+cfg.MuzzleBurst)
	}
}

func TestParticleBurstRanges(t *testing.T) {
	cfg := testParticleConfig()
	ps := NewParticleSystem(cfg)
	rng := rand.New(rand.NewSource(2))

	ps.Burst(rng, 0, 0, 100)

	for i, p := range ps.Particles() {
		if p.Life < cfg.MinLife || p.Life > cfg.MaxLife {
			t.Errorf("particle %d: life %f outside [%f, %f]", i, p.Life, cfg.MinLife, cfg.MaxLife)
		}
		if p.Life != p.MaxLife {
			t.Errorf("particle %d: fresh particle should have Life == MaxLife", i)
		}
		if p.Radius < cfg.MinRadius || p.Radius > cfg.MaxRadius {
			t.Errorf("particle %d: radius %d outside [%d, %d]", i, p.Radius, cfg.MinRadius, cfg.MaxRadius)
		}
	}
}

func TestParticleGravity(t *testing.T) {
	cfg := testParticleConfig()
	ps := NewParticleSystem(cfg)
	rng := rand.New(rand.NewSource(3))

	ps.Burst(rng, 0, 0, 1)
	vyBefore := ps.Particles()[0].VY

	ps.Advance(testDT)

	if ps.Len() != 1 {
		t.Fatal("particle should survive one short tick")
	}
	vyAfter := ps.Particles()[0].VY
	want := vyBefore + cfg.Gravity*testDT
	if vyAfter != want {
		t.Errorf("VY = %f, expected %f after gravity", vyAfter, want)
	}
}

func TestParticleDecayAndPrune(t *testing.T) {
	cfg := testParticleConfig()
	ps := NewParticleSystem(cfg)
	rng := rand.New(rand.NewSource(4))

	ps.Burst(rng, 0, 0, 50)

	// Life is strictly decreasing, and the set never grows while decaying.
	prev := ps.Len()
	var elapsed float64
	for elapsed < cfg.MaxLife+0.1 {
		ps.Advance(testDT)
		elapsed += testDT

		if ps.Len() > prev {
			t.Fatalf("particle set grew from %d to %d without a burst", prev, ps.Len())
		}
		for _, p := range ps.Particles() {
			if p.Life <= 0 {
				t.Fatalf("expired particle (life %f) was not pruned", p.Life)
			}
		}
		prev = ps.Len()
	}

	if ps.Len() != 0 {
		t.Errorf("all particles should be gone after max life elapsed, %d left", ps.Len())
	}
}

func TestParticleLifeFraction(t *testing.T) {
	p := Particle{Life: 0.1, MaxLife: 0.2}
	if got := p.LifeFraction(); got != 0.5 {
		t.Errorf("LifeFraction() = %f, expected 0.5", got)
	}

	p.Life = -0.05
	if got := p.LifeFraction(); got != 0 {
		t.Errorf("LifeFraction() should clamp at 0, got %f", got)
	}

	p.Life = 0.5
	if got := p.LifeFraction(); got != 1 {
		t.Errorf("LifeFraction() should clamp at 1, got %f", got)
	}
}

func TestParticleClear(t *testing.T) {
	ps := NewParticleSystem(testParticleConfig())
	rng := rand.New(rand.NewSource(5))

	ps.Burst(rng, 0, 0, 10)
	ps.Clear()

	if ps.Len() != 0 {
		t.Errorf("Clear() should remove all particles, %d left", ps.Len())
	}
}
