package sim

import "github.com/vovakirdan/oh-coconuts/internal/core"

// Touching reports whether hitter and target are close enough to collide.
// Both reference points must be within proximity on each axis. The beach is
// special: it touches any coconut that has reached beachLine, wherever the
// coconut is horizontally.
func Touching(hitter, target *Entity, proximity, beachLine int) bool {
	if hitter.kind == KindBeach && target.kind == KindCoconut && target.y >= beachLine {
		return true
	}
	dx := core.Abs(target.x - hitter.x)
	dy := core.Abs(target.y - hitter.y)
	return dx <= proximity && dy <= proximity
}
