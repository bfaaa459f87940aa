// Package sim implements the coconut-defense simulation: entities, the static
// hit rules, the score/health store, the hit notification channel and the
// tick-driven engine that ties them together.
//
// The package is single-threaded by contract. Every mutation happens inside
// one call on the engine; callers delivering input from another goroutine must
// hand it to the goroutine that drives ticks.
package sim

// Kind is the category tag of an entity.
type Kind uint8

const (
	KindBeach   Kind = iota // Ground strip; catches coconuts that fall through
	KindCrab                // Player; damaged by coconuts
	KindCoconut             // Falls from the top of the field
	KindLaser               // Rises from the crab's eyes
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBeach:
		return "Beach"
	case KindCrab:
		return "Crab"
	case KindCoconut:
		return "Coconut"
	case KindLaser:
		return "LaserBeam"
	default:
		return "Unknown"
	}
}

// Hittable reports whether entities of this kind take part in the hittable
// view of the field. The beach can hit but is never a target.
func (k Kind) Hittable() bool {
	switch k {
	case KindCrab, KindCoconut, KindLaser:
		return true
	default:
		return false
	}
}

// EntityID identifies an entity for the lifetime of one engine.
type EntityID uint64

// Entity is a positioned object on the field. Width and kind are fixed at
// construction; position changes only through Advance or Crawl.
type Entity struct {
	id    EntityID
	kind  Kind
	x, y  int
	width int
	dy    int // Vertical step applied by Advance
	alive bool
}

// newEntity creates a live entity. dy is the per-tick vertical step.
func newEntity(id EntityID, kind Kind, x, y, width, dy int) *Entity {
	return &Entity{
		id:    id,
		kind:  kind,
		x:     x,
		y:     y,
		width: width,
		dy:    dy,
		alive: true,
	}
}

func (e *Entity) ID() EntityID { return e.id }
func (e *Entity) Kind() Kind   { return e.kind }
func (e *Entity) X() int       { return e.x }
func (e *Entity) Y() int       { return e.y }
func (e *Entity) Width() int   { return e.width }
func (e *Entity) Alive() bool  { return e.alive }

// Hittable reports whether the entity belongs to the hittable view.
func (e *Entity) Hittable() bool { return e.kind.Hittable() }

// Advance moves the entity one tick along its category rule:
// coconuts fall, lasers rise, crab and beach stay put.
func (e *Entity) Advance() {
	if !e.alive {
		return
	}
	e.y += e.dy
}

// Crawl shifts the entity horizontally by offset. A move that would put any
// part of the entity outside [0, fieldWidth) is rejected as a whole and
// Crawl returns false.
func (e *Entity) Crawl(offset, fieldWidth int) bool {
	if !e.alive {
		return false
	}
	nx := e.x + offset
	if nx < 0 || nx+e.width > fieldWidth {
		return false
	}
	e.x = nx
	return true
}

// View returns a read-only copy for presentation.
func (e *Entity) View() EntityView {
	return EntityView{
		ID:      e.id,
		Kind:    e.kind,
		X:       e.x,
		Y:       e.y,
		Width:   e.width,
		Visible: e.alive,
	}
}

// kill marks the entity removed. Removed entities never come back.
func (e *Entity) kill() {
	e.alive = false
}
