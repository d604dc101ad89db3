package duckhunt

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/duckhunt/internal/config"
	"github.com/vovakirdan/duckhunt/internal/core"
	"github.com/vovakirdan/duckhunt/internal/registry"
)

// GameID is the registry identifier for Duck Hunt.
const GameID = "duckhunt"

const (
	// reticleNudge is the field-pixel step for one keyboard nudge, for
	// terminals where mouse motion is unavailable.
	reticleNudge = 24.0

	// grassFrac is the fraction of the field height where the ground
	// band starts. Render-only; ducks never spawn that low.
	grassFrac = 0.72
)

var configPath string

// SetConfigPath sets a custom config file path for the next Reset.
// Must be called before the game is created/reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts the Duck Hunt round to the platform's Game interface.
// It owns input translation, pause/restart handling and rendering; all
// simulation rules live in Round and Duck.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.DuckHuntConfig
	round   *Round
	rng     *rand.Rand
	paused  bool
}

// New creates a new Duck Hunt game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Duck Hunt"
}

// Reset initializes or restarts the game with a fresh round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg

	gameCfg, err := config.LoadDuckHunt(configPath)
	if err != nil {
		// The CLI validates custom configs before the game starts, so a
		// load failure here means a degraded environment; run on defaults.
		gameCfg = config.DefaultDuckHuntConfig()
	}
	g.cfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.newRound()
	g.paused = false
}

// newRound replaces the current round with a fresh one.
func (g *Game) newRound() {
	round, err := NewRound(g.cfg, g.rng)
	if err != nil {
		// The config was validated at load time; this is unreachable
		// unless a caller bypassed the loader.
		panic(fmt.Sprintf("duckhunt: invalid round config: %v", err))
	}
	g.round = round
}

// Step advances the game by dt seconds.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	// Restart swaps in a completely fresh round; nothing carries over.
	if in.Has(core.ActionRestart) && g.round.Phase == PhaseEnded {
		g.newRound()
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.round.Phase == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Mouse deltas arrive in screen cells; scale them to field pixels.
	if g.runtime.ScreenW > 0 {
		in.PointerDX *= g.cfg.Field.Width / float64(g.runtime.ScreenW)
	}
	if g.runtime.ScreenH > 0 {
		in.PointerDY *= g.cfg.Field.Height / float64(g.runtime.ScreenH)
	}

	// Keyboard fallback: arrow/WASD presses act as pointer deltas.
	if in.Has(core.ActionUp) {
		in.PointerDY -= reticleNudge
	}
	if in.Has(core.ActionDown) {
		in.PointerDY += reticleNudge
	}
	if in.Has(core.ActionLeft) {
		in.PointerDX -= reticleNudge
	}
	if in.Has(core.ActionRight) {
		in.PointerDX += reticleNudge
	}

	g.round.Step(dt, in)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.round.Score,
		GameOver: g.round.Phase == PhaseEnded,
		Paused:   g.paused,
	}
}

// Round exposes the live round, mainly for the snapshot and tests.
func (g *Game) Round() *Round {
	return g.round
}

// RoundReport summarizes the current round for persistence. Meaningful
// once the round has ended; shots and hits are derived from the
// remaining ammo and the score.
func (g *Game) RoundReport() core.RoundReport {
	r := g.round

	hits := 0
	if g.cfg.Round.HitReward > 0 {
		hits = r.Score / g.cfg.Round.HitReward
	}

	return core.RoundReport{
		Score:        r.Score,
		EndReason:    r.EndReason.Slug(),
		DurationSecs: int(g.cfg.Round.DurationSeconds - r.TimeLeft),
		ShotsFired:   g.cfg.Round.Ammo - r.Ammo,
		Hits:         hits,
	}
}

// fieldToCell projects field-pixel coordinates onto screen cells.
func (g *Game) fieldToCell(dst *core.Screen, x, y float64) (int, int) {
	cx := int(x / g.cfg.Field.Width * float64(dst.Width()))
	cy := int(y / g.cfg.Field.Height * float64(dst.Height()))
	return cx, cy
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawGround(dst)

	for _, d := range g.round.Ducks {
		g.drawDuck(dst, d)
	}

	for _, p := range g.round.Particles.Particles() {
		g.drawParticle(dst, p)
	}

	g.drawReticle(dst)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.round.Phase == PhaseEnded {
		g.drawCenteredMessage(dst,
			g.round.EndReason.Banner(),
			fmt.Sprintf("SCORE: %d  |  Press R to restart, Q to quit", g.round.Score))
	}
}

// drawGround fills the grass band at the bottom of the field.
func (g *Game) drawGround(dst *core.Screen) {
	_, groundY := g.fieldToCell(dst, 0, g.cfg.Field.Height*grassFrac)
	for y := groundY; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			dst.SetColor(x, y, '▒', core.ColorGreen)
		}
	}
}

// drawDuck renders a duck as a small directional sprite with a flapping
// wing. Hit ducks flash red.
func (g *Game) drawDuck(dst *core.Screen, d *Duck) {
	if d.State == StateGone {
		return
	}

	cx, cy := g.fieldToCell(dst, d.X, d.Y)

	col := core.ColorYellow
	if d.State == StateHit {
		col = core.ColorBrightRed
	}

	dst.SetColor(cx, cy, '●', col)
	if d.Dir == DirRight {
		dst.SetColor(cx+1, cy, '>', core.ColorOrange)
	} else {
		dst.SetColor(cx-1, cy, '<', core.ColorOrange)
	}
	if d.WingUp {
		dst.SetColor(cx, cy-1, '^', col)
	} else {
		dst.SetColor(cx, cy+1, 'v', col)
	}
}

// drawParticle renders a particle, shrinking it as its life drains.
func (g *Game) drawParticle(dst *core.Screen, p Particle) {
	size := float64(p.Radius) * p.LifeFraction()
	if size < 1 {
		return
	}

	var r rune
	switch {
	case size >= 5:
		r = '●'
	case size >= 3:
		r = '•'
	default:
		r = '·'
	}

	cx, cy := g.fieldToCell(dst, p.X, p.Y)
	dst.SetColor(cx, cy, r, p.Color)
}

// drawReticle renders the crosshair at the reticle position.
func (g *Game) drawReticle(dst *core.Screen) {
	cx, cy := g.fieldToCell(dst, g.round.ReticleX, g.round.ReticleY)

	dst.SetColor(cx-1, cy, '─', core.ColorWhite)
	dst.SetColor(cx+1, cy, '─', core.ColorWhite)
	dst.SetColor(cx, cy-1, '│', core.ColorWhite)
	dst.SetColor(cx, cy+1, '│', core.ColorWhite)
	dst.SetColor(cx, cy, '+', core.ColorBrightRed)
}

// drawHUD renders the top status rows: score, timer, lives and ammo.
func (g *Game) drawHUD(dst *core.Screen) {
	r := g.round

	dst.DrawTextColor(1, 0, fmt.Sprintf("SCORE %04d", r.Score), core.ColorBrightYellow)

	timeCol := core.ColorWhite
	if r.TimeLeft < 10 {
		timeCol = core.ColorBrightRed
	}
	timeText := fmt.Sprintf("TIME %02ds", int(r.TimeLeft))
	dst.DrawTextColor((dst.Width()-len(timeText))/2, 0, timeText, timeCol)

	// Lives as hearts, right-aligned.
	livesX := dst.Width() - g.cfg.Round.Lives - 7
	dst.DrawTextColor(livesX, 0, "LIVES ", core.ColorGray)
	for i := 0; i < g.cfg.Round.Lives; i++ {
		if i < r.Lives {
			dst.SetColor(livesX+6+i, 0, '♥', core.ColorBrightRed)
		} else {
			dst.SetColor(livesX+6+i, 0, '♡', core.ColorGray)
		}
	}

	// Ammo pips on the second row.
	dst.DrawTextColor(1, 1, "AMMO ", core.ColorGray)
	for i := 0; i < g.cfg.Round.Ammo; i++ {
		if i < r.Ammo {
			dst.SetColor(6+i, 1, '▮', core.ColorBrightYellow)
		} else {
			dst.SetColor(6+i, 1, '▯', core.ColorGray)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawTextColor(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}

// Register the game with the registry.
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
