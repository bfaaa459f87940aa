package sim

// EntityView is a read-only snapshot of an entity for presentation layers.
type EntityView struct {
	ID      EntityID
	Kind    Kind
	X, Y    int
	Width   int
	Visible bool
}

// ScoreView carries the current counters to presentation layers.
type ScoreView struct {
	Beached   int
	Destroyed int
	Health    int
}

// Presenter receives state changes from the engine. Calls are made
// synchronously from inside engine methods; implementations must not call
// back into the engine.
type Presenter interface {
	// EntityMoved reports a spawned or moved entity. Every live entity is
	// reported after each tick.
	EntityMoved(e EntityView)

	// EntityRemoved reports an entity that left the field for good.
	EntityRemoved(e EntityView)

	// ScoreChanged reports the counters after any of them may have changed.
	ScoreChanged(s ScoreView)
}

// NopPresenter ignores every notification.
type NopPresenter struct{}

func (NopPresenter) EntityMoved(EntityView)   {}
func (NopPresenter) EntityRemoved(EntityView) {}
func (NopPresenter) ScoreChanged(ScoreView)   {}

var _ Presenter = NopPresenter{}
