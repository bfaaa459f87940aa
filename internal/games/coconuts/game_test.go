package coconuts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/oh-coconuts/internal/core"
	"github.com/vovakirdan/oh-coconuts/internal/games/coconuts/sim"
	"github.com/vovakirdan/oh-coconuts/internal/registry"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: seed})
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func crabX(t *testing.T, g *Game) int {
	t.Helper()
	for _, s := range g.Sprites() {
		if s.Kind == sim.KindCrab {
			return s.X
		}
	}
	t.Fatal("no crab sprite")
	return 0
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("coconuts") {
		t.Fatal("coconuts is not registered")
	}
	g, err := registry.Create("coconuts")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.Title() != "Oh Coconuts" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Oh Coconuts")
	}
}

func TestWaitsForStart(t *testing.T) {
	g := newTestGame(t, 1)

	for i := 0; i < 20; i++ {
		g.Step(press(core.ActionRight, core.ActionFire))
	}

	state := g.State()
	if !state.Paused {
		t.Error("game should be paused until started")
	}
	if state.Ticks != 0 {
		t.Errorf("Ticks = %d before start, expected 0", state.Ticks)
	}
	if x := crabX(t, g); x != 275 {
		t.Errorf("crab x = %d before start, expected 275", x)
	}
}

func TestStartPauseToggle(t *testing.T) {
	g := newTestGame(t, 1)

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Fatal("first pause press should start the game")
	}
	if g.State().Ticks != 1 {
		t.Errorf("Ticks = %d, expected 1", g.State().Ticks)
	}

	g.Step(press(core.ActionRight, core.ActionRight))
	if x := crabX(t, g); x != 295 {
		t.Errorf("crab x = %d after two right presses, expected 295", x)
	}

	g.Step(press(core.ActionPause))
	ticks := g.State().Ticks
	g.Step(press(core.ActionLeft))
	if g.State().Ticks != ticks {
		t.Error("ticks advanced while paused")
	}
	if x := crabX(t, g); x != 295 {
		t.Errorf("crab moved while paused: x = %d", x)
	}
}

func TestFireSpawnsLaser(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(press(core.ActionPause))
	g.Step(press(core.ActionFire))

	lasers := 0
	for _, s := range g.Sprites() {
		if s.Kind == sim.KindLaser {
			lasers++
		}
	}
	if lasers != 1 {
		t.Errorf("lasers = %d after one shot, expected 1", lasers)
	}
}

// narrowField is a field where every coconut lands on an idle crab.
const narrowField = "field:\n  width: 100\n"

// useConfig points new games at a YAML override for the rest of the test.
func useConfig(t *testing.T, yaml string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coconuts.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func TestAutopilotPlaysRound(t *testing.T) {
	g := newTestGame(t, 99)
	pilot := NewAutopilot(4)

	for i := 0; i < 400; i++ {
		g.Step(pilot.Next(g))
	}

	state := g.State()
	if state.Paused {
		t.Fatal("autopilot never started the round")
	}
	if state.Ticks < 400 {
		t.Errorf("Ticks = %d after 400 frames, expected at least 400", state.Ticks)
	}
	if state.Destroyed == 0 {
		t.Error("autopilot destroyed no coconuts")
	}
	if state.Score != state.Destroyed {
		t.Errorf("Score = %d, expected destroyed count %d", state.Score, state.Destroyed)
	}
}

func TestRoundEndsWhenCrabFalls(t *testing.T) {
	useConfig(t, narrowField)
	g := newTestGame(t, 99)
	if g.Config().Field.Width != 100 {
		t.Fatalf("Field.Width = %d, expected the override", g.Config().Field.Width)
	}

	g.Step(press(core.ActionPause))
	for i := 0; i < 5000 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}

	state := g.State()
	if !state.GameOver {
		t.Fatal("round did not finish")
	}
	if state.CrabAlive || state.Health != 0 {
		t.Errorf("CrabAlive = %v Health = %d, expected a dead crab", state.CrabAlive, state.Health)
	}
	if state.Ticks <= 100 {
		t.Errorf("Ticks = %d, expected the round to outlast the first 100 ticks", state.Ticks)
	}

	// Input after the round is over changes nothing.
	before := g.State()
	g.Step(press(core.ActionPause, core.ActionFire, core.ActionLeft))
	if g.State() != before {
		t.Errorf("state changed after game over: %+v -> %+v", before, g.State())
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)
	p1 := NewAutopilot(3)
	p2 := NewAutopilot(3)

	for i := 0; i < 400; i++ {
		g1.Step(p1.Next(g1))
		g2.Step(p2.Next(g2))
	}

	if g1.State() != g2.State() {
		t.Errorf("states differ: %+v vs %+v", g1.State(), g2.State())
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	if !strings.Contains(screen.Row(0), "Beached: 0  Destroyed: 0  Health: 50") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.Contains(out, "PRESS SPACE TO START") {
		t.Error("start prompt missing before the game starts")
	}
	if !strings.Contains(out, string(SandChar)) {
		t.Error("beach not drawn")
	}

	g.Step(press(core.ActionPause))
	g.Render(screen)
	out = screen.String()
	if strings.Contains(out, "PRESS SPACE TO START") {
		t.Error("start prompt still shown after start")
	}
	if !strings.Contains(out, "<(") {
		t.Error("crab not drawn")
	}

	g.Step(press(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(4, 2)

	// Must not panic
	g.Render(screen)
}
