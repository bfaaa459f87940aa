package coconuts

import (
	"github.com/vovakirdan/oh-coconuts/internal/core"
	"github.com/vovakirdan/oh-coconuts/internal/games/coconuts/sim"
)

// Autopilot plays the crab without a human: it walks under the lowest
// coconut and fires once its eyes line up. Used by the headless runner.
type Autopilot struct {
	fireEvery int // Frames between shots while aligned
	frame     int
}

// NewAutopilot creates an autopilot that fires at most every fireEvery frames.
func NewAutopilot(fireEvery int) *Autopilot {
	if fireEvery < 1 {
		fireEvery = 1
	}
	return &Autopilot{fireEvery: fireEvery}
}

// Next returns the input for the coming frame of g.
func (a *Autopilot) Next(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	a.frame++

	state := g.State()
	if state.GameOver {
		return in
	}
	if state.Paused {
		in.Set(core.ActionPause)
		return in
	}

	crab, target, ok := a.pick(g.Sprites())
	if !ok {
		return in
	}

	cfg := g.Config()
	want := target.X - cfg.Combat.EyeOffsetX
	step := cfg.Motion.CrabStep
	switch dx := want - crab.X; {
	case dx >= step:
		in.Set(core.ActionRight)
	case dx <= -step:
		in.Set(core.ActionLeft)
	default:
		if a.frame%a.fireEvery == 0 {
			in.Set(core.ActionFire)
		}
	}
	return in
}

// pick finds the crab and the lowest falling coconut.
func (a *Autopilot) pick(sprites []sim.EntityView) (crab, target sim.EntityView, ok bool) {
	haveCrab, haveTarget := false, false
	for _, s := range sprites {
		switch s.Kind {
		case sim.KindCrab:
			crab, haveCrab = s, true
		case sim.KindCoconut:
			if !haveTarget || s.Y > target.Y {
				target, haveTarget = s, true
			}
		}
	}
	return crab, target, haveCrab && haveTarget
}
