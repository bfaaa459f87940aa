package sim

// Outcome is the scoring effect of a confirmed hit.
type Outcome uint8

const (
	OutcomeNone      Outcome = iota
	OutcomeBeached           // +1 beached
	OutcomeDamage            // crab loses health
	OutcomeDestroyed         // +1 destroyed
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeBeached:
		return "Beached"
	case OutcomeDamage:
		return "Damage"
	case OutcomeDestroyed:
		return "Destroyed"
	default:
		return "None"
	}
}

type hitPair struct {
	hitter, target Kind
}

// hitTable is the complete hit relation. Pairs not listed cannot hit.
var hitTable = map[hitPair]Outcome{
	{KindBeach, KindCoconut}: OutcomeBeached,
	{KindCrab, KindCoconut}:  OutcomeDamage,
	{KindLaser, KindCoconut}: OutcomeDestroyed,
}

// HitterPriority is the order in which hitter kinds claim targets within a
// tick. A coconut touching both the crab and the beach counts as a crab hit.
var HitterPriority = []Kind{KindCrab, KindLaser, KindBeach}

// CanHit reports whether hitter may register a hit on target.
func CanHit(hitter, target Kind) bool {
	_, ok := hitTable[hitPair{hitter, target}]
	return ok
}

// OutcomeFor returns the scoring effect of hitter hitting target.
func OutcomeFor(hitter, target Kind) (Outcome, bool) {
	o, ok := hitTable[hitPair{hitter, target}]
	return o, ok
}
