package sim

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/oh-coconuts/internal/config"
)

// Engine owns the live entities of one game and advances them tick by tick.
type Engine struct {
	cfg    config.CoconutsConfig
	rng    *rand.Rand
	logger *log.Logger

	fieldW    int
	fieldH    int
	beachLine int

	entities []*Entity // All live entities in spawn order
	hittable []*Entity // Live entities whose kind is hittable, same order
	nextID   EntityID

	crab  *Entity // nil once the crab is destroyed
	beach *Entity

	tick     int
	inFlight int

	score     *Scoreboard
	hits      *HitChannel
	presenter Presenter
}

// Option configures an Engine.
type Option func(*Engine)

// WithPresenter routes entity and score notifications to p.
func WithPresenter(p Presenter) Option {
	return func(e *Engine) {
		if p != nil {
			e.presenter = p
		}
	}
}

// WithScoreboard makes the engine use an externally owned scoreboard.
func WithScoreboard(s *Scoreboard) Option {
	return func(e *Engine) {
		if s != nil {
			e.score = s
		}
	}
}

// WithSeed seeds the coconut spawn positions.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine. Call Start before issuing commands.
func New(cfg config.CoconutsConfig, opts ...Option) *Engine {
	e := &Engine{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(1)),
		logger:    log.New(io.Discard),
		hits:      NewHitChannel(),
		presenter: NopPresenter{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.score == nil {
		e.score = NewScoreboard(cfg.Combat.InitialHealth)
	}

	// Every confirmed hit pushes fresh counters to the presenter.
	e.hits.Attach(func() {
		e.presenter.ScoreChanged(e.score.View())
	})
	return e
}

// Start clears the field and places the crab and the beach. The crab is
// centered horizontally on the beach line; the beach spans the full width
// below it. Tick and in-flight counters and the scoreboard are reset.
func (e *Engine) Start(fieldHeight, fieldWidth int) {
	beachHeight := e.cfg.Field.BeachHeight
	if beachHeight >= fieldHeight {
		panic(fmt.Sprintf("sim: beach height %d leaves no sky in field height %d", beachHeight, fieldHeight))
	}

	for len(e.entities) > 0 {
		e.remove(e.entities[len(e.entities)-1])
	}

	e.fieldW = fieldWidth
	e.fieldH = fieldHeight
	e.beachLine = fieldHeight - beachHeight
	e.tick = 0
	e.inFlight = 0
	e.score.Reset(e.cfg.Combat.InitialHealth)

	crabW := e.cfg.Sprites.CrabWidth
	e.crab = e.spawn(KindCrab, (fieldWidth-crabW)/2, e.beachLine, crabW, 0)
	e.beach = e.spawn(KindBeach, 0, e.beachLine, fieldWidth, 0)

	e.presenter.ScoreChanged(e.score.View())
	e.logger.Debug("round started", "width", fieldWidth, "height", fieldHeight, "beach_line", e.beachLine)
}

// TryDropCoconut spawns a coconut on every drop-interval tick while the crab
// is alive. The spawn x is uniform over the positions where the whole coconut
// fits, [0, width-coconutWidth]. The tick counter advances on every call.
func (e *Engine) TryDropCoconut() {
	if e.crab != nil && e.tick%e.cfg.Timing.DropInterval == 0 {
		w := e.cfg.Sprites.CoconutWidth
		x := 0
		if span := e.fieldW - w; span > 0 {
			x = e.rng.Intn(span + 1)
		}
		e.spawnCoconut(x)
	}
	e.tick++
}

// TryShootLaser fires a laser from the crab's eye point. Without a crab the
// call only advances the tick counter.
func (e *Engine) TryShootLaser() {
	if e.crab != nil {
		e.spawn(KindLaser,
			e.crab.x+e.cfg.Combat.EyeOffsetX,
			e.crab.y+e.cfg.Combat.EyeOffsetY,
			e.cfg.Sprites.LaserWidth,
			-e.cfg.Motion.LaserRise,
		)
	}
	e.tick++
}

// MoveCrab shifts the crab horizontally. Moves that would leave the field,
// and moves without a crab, are ignored.
func (e *Engine) MoveCrab(offset int) {
	if e.crab == nil {
		return
	}
	if e.crab.Crawl(offset, e.fieldW) {
		e.presenter.EntityMoved(e.crab.View())
	}
}

// AdvanceOneTick runs one frame of the simulation:
//  1. every live entity advances along its category rule
//  2. hitters claim touching targets in HitterPriority order; each claim
//     applies its outcome and notifies the hit channel once
//  3. claimed coconuts, spent lasers and lasers past the top are purged
//  4. if health is gone the crab is destroyed and every laser purged
//
// Every live entity is then reported to the presenter.
func (e *Engine) AdvanceOneTick() {
	for _, ent := range e.entities {
		ent.Advance()
	}

	doomed := e.resolveHits()

	for _, ent := range e.entities {
		if ent.kind == KindLaser && ent.y < -e.cfg.Combat.Proximity && !doomed[ent.id] {
			doomed[ent.id] = true
		}
	}
	e.purge(doomed)

	if e.score.Health() <= 0 && e.crab != nil {
		e.killCrab()
	}

	for _, ent := range e.entities {
		e.presenter.EntityMoved(ent.View())
	}
}

// resolveHits applies every hit of this tick and returns the IDs scheduled
// for removal. A target is claimed by at most one hitter; a laser is spent
// by its first hit.
func (e *Engine) resolveHits() map[EntityID]bool {
	doomed := make(map[EntityID]bool)
	for _, kind := range HitterPriority {
		for _, hitter := range e.entities {
			if hitter.kind != kind || doomed[hitter.id] {
				continue
			}
			for _, target := range e.hittable {
				if target == hitter || doomed[target.id] {
					continue
				}
				outcome, ok := OutcomeFor(hitter.kind, target.kind)
				if !ok || !Touching(hitter, target, e.cfg.Combat.Proximity, e.beachLine) {
					continue
				}
				e.apply(outcome)
				e.hits.Notify()
				doomed[target.id] = true
				if hitter.kind == KindLaser {
					doomed[hitter.id] = true
					break
				}
			}
		}
	}
	return doomed
}

// apply mutates the scoreboard for one hit.
func (e *Engine) apply(o Outcome) {
	switch o {
	case OutcomeBeached:
		e.score.ChangeBeached(1)
	case OutcomeDamage:
		e.score.ChangeHealth(-e.cfg.Combat.CrabDamage)
	case OutcomeDestroyed:
		e.score.ChangeDestroyed(1)
	default:
		panic(fmt.Sprintf("sim: hit with no outcome (%s)", o))
	}
}

// purge removes every entity whose ID is in doomed, in spawn order.
func (e *Engine) purge(doomed map[EntityID]bool) {
	if len(doomed) == 0 {
		return
	}
	victims := make([]*Entity, 0, len(doomed))
	for _, ent := range e.entities {
		if doomed[ent.id] {
			victims = append(victims, ent)
		}
	}
	for _, ent := range victims {
		e.remove(ent)
	}
}

// killCrab removes the crab and every laser it fired.
func (e *Engine) killCrab() {
	crab := e.crab
	e.crab = nil
	e.remove(crab)

	lasers := make(map[EntityID]bool)
	for _, ent := range e.entities {
		if ent.kind == KindLaser {
			lasers[ent.id] = true
		}
	}
	e.purge(lasers)

	e.logger.Debug("crab destroyed", "tick", e.tick, "lasers_purged", len(lasers))
}

// Done reports whether the round is over: at least MaxTicks ticks have run
// and no coconut is still falling. While the crab lives coconuts keep
// dropping, so in practice a round ends some time after the crab dies.
// It does not stop anything by itself.
func (e *Engine) Done() bool {
	return e.inFlight == 0 && e.tick >= e.cfg.Timing.MaxTicks
}

// spawnCoconut places a new coconut at the top of the field.
func (e *Engine) spawnCoconut(x int) *Entity {
	e.inFlight++
	return e.spawn(KindCoconut, x, 0, e.cfg.Sprites.CoconutWidth, e.cfg.Motion.CoconutFall)
}

// spawn registers a new entity in both collections and reports it.
func (e *Engine) spawn(kind Kind, x, y, width, dy int) *Entity {
	e.nextID++
	ent := newEntity(e.nextID, kind, x, y, width, dy)
	e.entities = append(e.entities, ent)
	if ent.Hittable() {
		e.hittable = append(e.hittable, ent)
	}
	e.presenter.EntityMoved(ent.View())
	return ent
}

// remove drops ent from both collections. Removing a coconut ends its
// flight. Removing an entity that is not live is a programming error.
func (e *Engine) remove(ent *Entity) {
	var ok bool
	e.entities, ok = without(e.entities, ent)
	if !ok {
		panic(fmt.Sprintf("sim: remove of entity %d (%s) not on the field", ent.id, ent.kind))
	}
	if ent.Hittable() {
		if e.hittable, ok = without(e.hittable, ent); !ok {
			panic(fmt.Sprintf("sim: entity %d (%s) missing from hittable view", ent.id, ent.kind))
		}
	}
	ent.kill()
	if ent.kind == KindCoconut {
		e.coconutGone()
	}
	if ent == e.beach {
		e.beach = nil
	}
	e.presenter.EntityRemoved(ent.View())
}

// coconutGone is the in-flight bookkeeping hook for every removed coconut.
func (e *Engine) coconutGone() {
	e.inFlight--
	if e.inFlight < 0 {
		panic("sim: in-flight coconut count went negative")
	}
}

// without removes ent from list, preserving order.
func without(list []*Entity, ent *Entity) ([]*Entity, bool) {
	for i, x := range list {
		if x == ent {
			return append(list[:i], list[i+1:]...), true
		}
	}
	return list, false
}

// Tick returns the number of drop/fire calls made since Start.
func (e *Engine) Tick() int { return e.tick }

// InFlight returns the number of coconuts spawned and not yet removed.
func (e *Engine) InFlight() int { return e.inFlight }

// BeachLine returns the y at which coconuts are beached.
func (e *Engine) BeachLine() int { return e.beachLine }

// FieldSize returns the field dimensions passed to Start.
func (e *Engine) FieldSize() (width, height int) { return e.fieldW, e.fieldH }

// Scoreboard returns the store the engine writes to.
func (e *Engine) Scoreboard() *Scoreboard { return e.score }

// Hits returns the hit notification channel.
func (e *Engine) Hits() *HitChannel { return e.hits }

// Crab returns the live crab, if any.
func (e *Engine) Crab() (EntityView, bool) {
	if e.crab == nil {
		return EntityView{}, false
	}
	return e.crab.View(), true
}

// Beach returns the beach, if the engine has been started.
func (e *Engine) Beach() (EntityView, bool) {
	if e.beach == nil {
		return EntityView{}, false
	}
	return e.beach.View(), true
}

// Entities returns every live entity in spawn order.
func (e *Engine) Entities() []EntityView {
	return views(e.entities)
}

// HittableEntities returns the live hittable entities in spawn order.
func (e *Engine) HittableEntities() []EntityView {
	return views(e.hittable)
}

// Count returns the number of live entities of kind k.
func (e *Engine) Count(k Kind) int {
	n := 0
	for _, ent := range e.entities {
		if ent.kind == k {
			n++
		}
	}
	return n
}

func views(list []*Entity) []EntityView {
	out := make([]EntityView, len(list))
	for i, ent := range list {
		out[i] = ent.View()
	}
	return out
}
