// Package coconuts implements Oh Coconuts: a crab on the beach fires lasers at
// coconuts falling from the palms. The rules live in package sim; this package
// maps platform input onto engine commands and draws what the engine reports.
package coconuts

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/oh-coconuts/internal/config"
	"github.com/vovakirdan/oh-coconuts/internal/core"
	"github.com/vovakirdan/oh-coconuts/internal/games/coconuts/sim"
	"github.com/vovakirdan/oh-coconuts/internal/registry"
)

// Sprite art, stretched or squeezed to each entity's width in cells.
const (
	CrabArt    = "<(°°)>"
	CoconutArt = "(@@)"
	LaserChar  = '|'
	SandChar   = '░'
)

// Game adapts a sim.Engine to the registry.Game interface. It is also the
// engine's Presenter and keeps the last reported view of every entity.
type Game struct {
	cfg     config.CoconutsConfig
	runtime core.RuntimeConfig
	engine  *sim.Engine
	logger  *log.Logger

	sprites map[sim.EntityID]sim.EntityView
	score   sim.ScoreView

	running bool // Start/pause toggle
	started bool // Toggled at least once since Reset
}

// configPath stores the custom config path set via CLI
var configPath string

// logger receives engine lifecycle events; discarded unless set via CLI
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger handed to every new engine.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// New creates a new Oh Coconuts game instance.
func New() *Game {
	return &Game{
		cfg:     config.DefaultCoconutsConfig(),
		sprites: make(map[sim.EntityID]sim.EntityView),
		logger:  logger,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "coconuts"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Oh Coconuts"
}

// Reset builds a fresh engine and waits for the start toggle.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadCoconuts(configPath)
	if err != nil {
		g.logger.Warn("falling back to default config", "err", err)
		cfg = config.DefaultCoconutsConfig()
	}
	g.cfg = cfg
	g.logger = logger

	g.sprites = make(map[sim.EntityID]sim.EntityView)
	g.score = sim.ScoreView{}
	g.running = false
	g.started = false

	g.engine = sim.New(cfg,
		sim.WithSeed(runtime.Seed),
		sim.WithPresenter(g),
		sim.WithLogger(g.logger),
	)
	g.engine.Start(cfg.Field.Height, cfg.Field.Width)
}

// Step applies one frame of input and, while running, one engine tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	done := g.engine.Done()

	if in.Has(core.ActionPause) && !done {
		g.running = !g.running
		g.started = true
	}

	if g.running && !done {
		step := g.cfg.Motion.CrabStep
		for i := 0; i < in.Count(core.ActionLeft); i++ {
			g.engine.MoveCrab(-step)
		}
		for i := 0; i < in.Count(core.ActionRight); i++ {
			g.engine.MoveCrab(step)
		}
		for i := 0; i < in.Count(core.ActionFire); i++ {
			g.engine.TryShootLaser()
		}

		g.engine.TryDropCoconut()
		g.engine.AdvanceOneTick()
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state. The score is the destroyed count.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	_, crabAlive := g.engine.Crab()
	return core.GameState{
		Score:     g.score.Destroyed,
		GameOver:  g.engine.Done(),
		Paused:    !g.running,
		Beached:   g.score.Beached,
		Destroyed: g.score.Destroyed,
		Health:    g.score.Health,
		CrabAlive: crabAlive,
		Ticks:     g.engine.Tick(),
	}
}

// Config returns the configuration of the current round.
func (g *Game) Config() config.CoconutsConfig {
	return g.cfg
}

// Sprites returns the visible entities in spawn order.
func (g *Game) Sprites() []sim.EntityView {
	out := make([]sim.EntityView, 0, len(g.sprites))
	for _, v := range g.sprites {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// EntityMoved implements sim.Presenter.
func (g *Game) EntityMoved(e sim.EntityView) {
	g.sprites[e.ID] = e
}

// EntityRemoved implements sim.Presenter.
func (g *Game) EntityRemoved(e sim.EntityView) {
	delete(g.sprites, e.ID)
}

// ScoreChanged implements sim.Presenter.
func (g *Game) ScoreChanged(s sim.ScoreView) {
	g.score = s
}

// Render draws the field scaled to the screen, then the HUD and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil || dst.Height() < 3 {
		return
	}

	v := g.viewport(dst)

	// Sand from the beach line down
	beachRow := v.row(g.engine.BeachLine())
	dst.DrawRect(core.NewRect(0, beachRow, dst.Width(), dst.Height()-beachRow), SandChar, core.ColorSand)

	for _, s := range g.Sprites() {
		if !s.Visible {
			continue
		}
		switch s.Kind {
		case sim.KindCrab:
			// The crab stands on the sand rather than in it
			drawSprite(dst, v.col(s.X), v.row(s.Y)-1, v.width(s.Width), CrabArt, core.ColorBrightRed)
		case sim.KindCoconut:
			drawSprite(dst, v.col(s.X), v.row(s.Y), v.width(s.Width), CoconutArt, core.ColorBrown)
		case sim.KindLaser:
			drawSprite(dst, v.col(s.X), v.row(s.Y), v.width(s.Width), string(LaserChar), core.ColorBrightCyan)
		}
	}

	g.drawHUD(dst)

	state := g.State()
	switch {
	case state.GameOver:
		g.drawCenteredMessage(dst, "ROUND OVER",
			fmt.Sprintf("Destroyed: %d  Beached: %d  |  Press R to restart", state.Destroyed, state.Beached))
	case !g.started:
		g.drawCenteredMessage(dst, "OH COCONUTS", "PRESS SPACE TO START")
	case state.Paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press Space to resume")
	case !state.CrabAlive:
		dst.DrawTextColored((dst.Width()-len("CRAB DOWN"))/2, 2, "CRAB DOWN", core.ColorRed)
	}
}

// drawHUD writes the counters on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	counters := fmt.Sprintf(" Beached: %d  Destroyed: %d  Health: %d ",
		g.score.Beached, g.score.Destroyed, g.score.Health)
	dst.DrawTextColored(1, 0, counters, core.ColorWhite)

	clock := fmt.Sprintf(" Tick %d ", g.engine.Tick())
	dst.DrawTextColored(dst.Width()-len(clock)-1, 0, clock, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

// drawSprite stretches art over n cells starting at (x, y).
func drawSprite(dst *core.Screen, x, y, n int, art string, c core.Color) {
	runes := []rune(art)
	for i := 0; i < n; i++ {
		dst.SetColored(x+i, y, runes[i*len(runes)/n], c)
	}
}

// viewport projects field units onto the screen below the HUD row.
type viewport struct {
	fieldW, fieldH int
	cols, rows     int
}

func (g *Game) viewport(dst *core.Screen) viewport {
	fw, fh := g.engine.FieldSize()
	return viewport{fieldW: fw, fieldH: fh, cols: dst.Width(), rows: dst.Height() - 1}
}

func (v viewport) col(x int) int   { return core.Scale(x, v.fieldW, v.cols) }
func (v viewport) row(y int) int   { return 1 + core.Scale(y, v.fieldH, v.rows) }
func (v viewport) width(w int) int { return core.ScaleLen(w, v.fieldW, v.cols) }

var _ sim.Presenter = (*Game)(nil)

// Register the game with the registry
func init() {
	registry.Register("coconuts", func() registry.Game {
		return New()
	})
}
