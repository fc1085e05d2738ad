package paperplane

import (
	"github.com/vovakirdan/paperplane/internal/config"
	"github.com/vovakirdan/paperplane/internal/core"
)

// staleFrames is how long the pointer may rest before a release counts as
// a standstill rather than a throw.
const staleFrames = 6

// Gesture is a pointer event translated into playfield coordinates.
type Gesture struct {
	Kind core.PointerKind
	At   core.Vec2
}

// sample is a pointer position stamped with the frame it arrived on.
type sample struct {
	at    core.Vec2
	frame int
}

// DragSession is the transient state between pointer-down and pointer-up.
type DragSession struct {
	Dragging bool
	Start    core.Vec2
	End      core.Vec2
	grab     core.Vec2 // Pointer offset from the plane's top-left
	samples  []sample
}

// Controller turns pointer gestures into flights.
type Controller struct {
	mode     string
	gain     float64
	window   int
	tickRate int

	flight   *Flight
	listener Listener
	drag     DragSession
}

// NewController creates a controller for the given interaction mode.
// listener receives the reset issued when a dragged plane leaves the playfield.
func NewController(cfg config.InteractionConfig, tickRate int, flight *Flight, listener Listener) *Controller {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Controller{
		mode:     cfg.Mode,
		gain:     cfg.ReleaseGain,
		window:   cfg.SampleWindow,
		tickRate: tickRate,
		flight:   flight,
		listener: listener,
	}
}

// Mode returns the interaction mode.
func (c *Controller) Mode() string { return c.mode }

// Session returns a copy of the current drag session.
func (c *Controller) Session() DragSession { return c.drag }

// Dragging reports whether a drag session is open.
func (c *Controller) Dragging() bool { return c.drag.Dragging }

// Handle processes one gesture that arrived on the given frame.
func (c *Controller) Handle(g Gesture, frame int) {
	env := c.flight.Environment()
	if !env.Ready() {
		return
	}

	switch g.Kind {
	case core.PointerDown:
		c.begin(g.At, frame)
	case core.PointerMove:
		if c.drag.Dragging {
			c.move(g.At, frame)
		}
	case core.PointerUp, core.PointerLeave:
		if c.drag.Dragging {
			c.release(g.At, frame)
		}
	}
}

// Cancel drops the drag session without launching.
func (c *Controller) Cancel() {
	c.drag = DragSession{}
}

func (c *Controller) begin(at core.Vec2, frame int) {
	env := c.flight.Environment()
	if !core.PointInRect(at, env.Playfield) {
		return
	}

	if c.mode == config.ModeFollow {
		c.drag = DragSession{Dragging: true, Start: at, End: at}
		return
	}

	// Release mode grabs the sprite itself
	pos := c.flight.Position()
	if !core.PointInRect(at, env.PlaneBox(pos)) {
		return
	}
	if c.flight.Active() && c.flight.phys.Busy == BusyReject {
		return
	}
	c.drag = DragSession{
		Dragging: true,
		Start:    at,
		End:      at,
		grab:     at.Sub(pos),
		samples:  []sample{{at: at, frame: frame}},
	}
	if c.flight.Active() {
		c.flight.Place(pos)
	}
}

func (c *Controller) move(at core.Vec2, frame int) {
	env := c.flight.Environment()
	c.drag.End = at

	if c.mode == config.ModeFollow {
		c.flight.Launch(env.Launch, c.drag.End.Sub(c.drag.Start))
		return
	}

	if !core.PointInRect(at, env.Playfield) {
		c.drag = DragSession{}
		c.flight.RestoreLaunch()
		if c.listener != nil {
			c.listener.OnReset()
		}
		return
	}

	c.flight.Place(at.Sub(c.drag.grab))
	c.record(at, frame)
}

func (c *Controller) release(at core.Vec2, frame int) {
	if c.mode == config.ModeFollow {
		c.drag = DragSession{}
		return
	}

	c.record(at, frame)
	v := c.releaseVelocity(frame)
	c.drag = DragSession{}
	c.flight.Launch(c.flight.Position(), v)
}

func (c *Controller) record(at core.Vec2, frame int) {
	c.drag.samples = append(c.drag.samples, sample{at: at, frame: frame})
	if len(c.drag.samples) > c.window {
		c.drag.samples = c.drag.samples[len(c.drag.samples)-c.window:]
	}
}

// releaseVelocity returns the gesture velocity over the samples of the last
// staleFrames frames in pixels per second, scaled by the release gain. The
// flight treats it as a per-frame displacement, so quick flicks travel far.
func (c *Controller) releaseVelocity(now int) core.Vec2 {
	s := c.drag.samples
	if len(s) < 2 {
		return core.Vec2{}
	}

	// Drop samples the pointer has been resting on
	last := s[len(s)-1]
	i := len(s) - 2
	for i >= 0 && s[i].at == last.at {
		i--
	}
	if i < 0 || now-s[i+1].frame > staleFrames {
		return core.Vec2{}
	}

	// Only the trailing staleFrames count, so a hold before the flick does not
	// dilute it. The rest check above keeps k in range.
	start := now - staleFrames
	k := 0
	for s[k].frame < start {
		k++
	}
	first, from := s[k], s[k].frame
	if first.at == last.at && k > 0 {
		// The pointer jumped into place inside the window; it left the
		// previous sample no earlier than the window start
		first, from = s[k-1], start
	}

	frames := last.frame - from
	if frames < 1 {
		frames = 1
	}
	perFrame := last.at.Sub(first.at).Scale(1 / float64(frames))
	return perFrame.Scale(float64(c.tickRate) * c.gain)
}

// Preview returns the predicted path of the gesture in progress as of the
// given frame, or nil when no drag is open.
func (c *Controller) Preview(frame int) []core.Vec2 {
	if !c.drag.Dragging {
		return nil
	}
	env := c.flight.Environment()

	if c.mode == config.ModeFollow {
		v := c.drag.End.Sub(c.drag.Start)
		return Predict(c.flight.phys, env, env.Launch, v)
	}
	return Predict(c.flight.phys, env, c.flight.Position(), c.releaseVelocity(frame))
}
