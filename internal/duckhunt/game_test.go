package duckhunt

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/duckhunt/internal/core"
	"github.com/vovakirdan/duckhunt/internal/registry"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("game %q not registered", GameID)
	}

	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create(%q) error: %v", GameID, err)
	}
	if g.ID() != GameID {
		t.Errorf("ID() = %q, want %q", g.ID(), GameID)
	}
	if g.Title() == "" {
		t.Error("Title() is empty")
	}
}

func TestGameDeterminism(t *testing.T) {
	a := newTestGame(99)
	b := newTestGame(99)

	// A scripted mix of nudges and shots. Both games must see the exact
	// same input sequence and land in the exact same state.
	script := func(i int) core.InputFrame {
		in := core.InputFrame{}
		switch {
		case i%7 == 0:
			in.Set(core.ActionFire)
		case i%5 == 0:
			in.Set(core.ActionLeft)
			in.Set(core.ActionUp)
		case i%3 == 0:
			in.AddPointerDelta(13.5, -4.25)
		default:
			in.Set(core.ActionRight)
		}
		return in
	}

	for i := 0; i < 600; i++ {
		in := script(i)
		a.Step(testDT, in)
		b.Step(testDT, in)

		if i%100 != 0 {
			continue
		}
		sa, sb := a.Snapshot(), b.Snapshot()
		if !reflect.DeepEqual(sa, sb) {
			t.Fatalf("tick %d: snapshots diverged:\n a=%+v\n b=%+v", i, sa, sb)
		}
	}

	if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Error("final snapshots diverged")
	}
}

func TestGameDifferentSeedsDiverge(t *testing.T) {
	a := newTestGame(1)
	b := newTestGame(2)

	// Duck spawns are randomized, so two seeds should place targets
	// differently after a handful of ticks.
	for i := 0; i < 120; i++ {
		a.Step(testDT, core.InputFrame{})
		b.Step(testDT, core.InputFrame{})
	}

	if reflect.DeepEqual(a.Snapshot().Targets, b.Snapshot().Targets) {
		t.Error("different seeds produced identical target states")
	}
}

func TestGameResetStartsFresh(t *testing.T) {
	g := newTestGame(7)

	for i := 0; i < 200; i++ {
		in := core.InputFrame{}
		if i%4 == 0 {
			in.Set(core.ActionFire)
		}
		g.Step(testDT, in)
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})

	r := g.Round()
	if r.Phase != PhasePlaying {
		t.Errorf("phase after Reset = %v, want %v", r.Phase, PhasePlaying)
	}
	if r.Score != 0 || r.Tick() != 0 {
		t.Errorf("score/tick after Reset = %d/%d, want 0/0", r.Score, r.Tick())
	}
	if r.Ammo != g.cfg.Round.Ammo || r.Lives != g.cfg.Round.Lives {
		t.Errorf("ammo/lives after Reset = %d/%d, want %d/%d",
			r.Ammo, r.Lives, g.cfg.Round.Ammo, g.cfg.Round.Lives)
	}
	if s := g.State(); s.GameOver || s.Paused {
		t.Errorf("state after Reset = %+v, want playing", s)
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := newTestGame(3)

	// Burn the clock to force a time-up ending.
	g.Round().Step(g.Round().TimeLeft+1, core.InputFrame{})
	if !g.State().GameOver {
		t.Fatal("round did not end after clock ran out")
	}

	in := core.InputFrame{}
	in.Set(core.ActionRestart)
	g.Step(testDT, in)

	r := g.Round()
	if r.Phase != PhasePlaying {
		t.Fatalf("phase after restart = %v, want %v", r.Phase, PhasePlaying)
	}
	if r.Score != 0 || r.Ammo != g.cfg.Round.Ammo || r.Lives != g.cfg.Round.Lives {
		t.Errorf("restart carried over state: score=%d ammo=%d lives=%d",
			r.Score, r.Ammo, r.Lives)
	}
}

func TestGameRestartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(3)

	for i := 0; i < 60; i++ {
		g.Step(testDT, core.InputFrame{})
	}
	tick := g.Round().Tick()

	in := core.InputFrame{}
	in.Set(core.ActionRestart)
	g.Step(testDT, in)

	if g.Round().Tick() != tick+1 {
		t.Error("restart during play replaced the round")
	}
}

func TestGamePauseFreezesRound(t *testing.T) {
	g := newTestGame(5)

	in := core.InputFrame{}
	in.Set(core.ActionPause)
	g.Step(testDT, in)

	if !g.State().Paused {
		t.Fatal("pause action did not pause the game")
	}

	snap := g.Snapshot()
	for i := 0; i < 30; i++ {
		fire := core.InputFrame{}
		fire.Set(core.ActionFire)
		g.Step(testDT, fire)
	}
	if !reflect.DeepEqual(snap, g.Snapshot()) {
		t.Error("round state changed while paused")
	}

	// The unpausing step itself runs the round again.
	unpause := core.InputFrame{}
	unpause.Set(core.ActionPause)
	g.Step(testDT, unpause)
	if g.State().Paused {
		t.Fatal("second pause action did not resume")
	}
	if g.Round().Tick() != snap.Tick+1 {
		t.Error("round did not resume after unpause")
	}
}

func TestGameKeyboardNudgesReticle(t *testing.T) {
	g := newTestGame(5)
	r := g.Round()
	x, y := r.ReticleX, r.ReticleY

	in := core.InputFrame{}
	in.Set(core.ActionRight)
	in.Set(core.ActionDown)
	g.Step(testDT, in)

	if r.ReticleX != x+reticleNudge || r.ReticleY != y+reticleNudge {
		t.Errorf("reticle = (%v, %v), want (%v, %v)",
			r.ReticleX, r.ReticleY, x+reticleNudge, y+reticleNudge)
	}

	in = core.InputFrame{}
	in.Set(core.ActionLeft)
	in.Set(core.ActionUp)
	g.Step(testDT, in)

	if r.ReticleX != x || r.ReticleY != y {
		t.Errorf("reticle = (%v, %v), want back at (%v, %v)",
			r.ReticleX, r.ReticleY, x, y)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(11)
	g.Step(testDT, core.InputFrame{})

	s := core.NewScreen(80, 24)
	g.Render(s)

	top := s.Row(0)
	if !strings.Contains(top, "SCORE") || !strings.Contains(top, "TIME") || !strings.Contains(top, "LIVES") {
		t.Errorf("HUD row missing fields: %q", top)
	}
	if !strings.Contains(s.Row(1), "AMMO") {
		t.Errorf("ammo row missing: %q", s.Row(1))
	}

	bottom := s.Row(s.Height() - 1)
	if !strings.Contains(bottom, "▒") {
		t.Errorf("ground band missing from bottom row: %q", bottom)
	}

	if !strings.Contains(s.String(), "+") {
		t.Error("reticle missing from render")
	}
}

func TestGameRenderEndBanner(t *testing.T) {
	g := newTestGame(11)
	g.Round().Step(g.Round().TimeLeft+1, core.InputFrame{})

	s := core.NewScreen(80, 24)
	g.Render(s)

	if !strings.Contains(s.String(), "TIME'S UP!") {
		t.Error("end banner missing from render")
	}
}

func TestGameRenderPauseBanner(t *testing.T) {
	g := newTestGame(11)
	in := core.InputFrame{}
	in.Set(core.ActionPause)
	g.Step(testDT, in)

	s := core.NewScreen(80, 24)
	g.Render(s)

	if !strings.Contains(s.String(), "PAUSED") {
		t.Error("pause banner missing from render")
	}
}
