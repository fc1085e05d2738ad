package paperplane

import (
	"time"

	"github.com/vovakirdan/paperplane/internal/core"
)

// Tween eases the drawn plane between positions. It mirrors the simulator's
// directives but never feeds back into the simulation.
type Tween struct {
	From  core.Vec2
	To    core.Vec2
	ticks int
	total int
}

// NewTween creates a tween resting at pos.
func NewTween(pos core.Vec2) Tween {
	return Tween{From: pos, To: pos}
}

// Apply starts easing from the current drawn position toward d.To.
// Place directives jump without easing.
func (t *Tween) Apply(d Directive, tickRate int) {
	if d.Kind == DirectivePlace || d.Duration <= 0 {
		*t = NewTween(d.To)
		return
	}
	t.From = t.Position()
	t.To = d.To
	t.ticks = 0
	t.total = durationTicks(d.Duration, tickRate)
}

// Advance moves the tween forward one tick.
// Returns true while the animation is still in progress.
func (t *Tween) Advance() bool {
	if t.ticks >= t.total {
		return false
	}
	t.ticks++
	return t.ticks < t.total
}

// Animating reports whether the tween has not reached its destination.
func (t Tween) Animating() bool {
	return t.ticks < t.total
}

// Position returns the eased drawn position.
func (t Tween) Position() core.Vec2 {
	if t.total <= 0 || t.ticks >= t.total {
		return t.To
	}
	p := easeOutQuad(float64(t.ticks) / float64(t.total))
	return t.From.Add(t.To.Sub(t.From).Scale(p))
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// durationTicks converts a duration into whole ticks, at least one.
func durationTicks(d time.Duration, tickRate int) int {
	n := int(d * time.Duration(tickRate) / time.Second)
	if n < 1 {
		n = 1
	}
	return n
}
