package paperplane

import (
	"math"
	"time"

	"github.com/vovakirdan/paperplane/internal/core"
)

// FlightState is the simulator's position in the throw state machine.
type FlightState int

const (
	FlightIdle    FlightState = iota // Resting, no active flight
	FlightActive                     // Advancing one step per frame
	FlightReset                      // Left the playfield and was sent back
	FlightSettled                    // Slowed below the stop threshold in bounds
)

// String returns a human-readable name for the state.
func (s FlightState) String() string {
	switch s {
	case FlightIdle:
		return "Idle"
	case FlightActive:
		return "InFlight"
	case FlightReset:
		return "Reset"
	case FlightSettled:
		return "Settled"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the state ends a flight.
func (s FlightState) Terminal() bool {
	return s == FlightReset || s == FlightSettled
}

// BusyPolicy decides what a launch request does while a flight is active.
type BusyPolicy int

const (
	BusyReject  BusyPolicy = iota // Ignore the request
	BusyRestart                   // Drop the active flight and start the new one
)

// Environment is the measured geometry the simulator runs against.
// It is filled in once per layout pass and passed in explicitly.
type Environment struct {
	Playfield core.RectF
	Target    core.RectF
	Launch    core.Vec2 // Top-left of the plane at rest
	PlaneW    float64
	PlaneH    float64
}

// Ready reports whether both the playfield and target have been measured.
// Until then the simulator does nothing.
func (e Environment) Ready() bool {
	return !e.Playfield.Empty() && !e.Target.Empty() && e.PlaneW > 0 && e.PlaneH > 0
}

// PlaneBox returns the plane's bounding box with its top-left at pos.
func (e Environment) PlaneBox(pos core.Vec2) core.RectF {
	return core.RectFromPos(pos, e.PlaneW, e.PlaneH)
}

// Physics holds the constants of the drag model.
type Physics struct {
	Decay          float64
	StopThreshold  float64
	MoveTransition time.Duration
	ResetDuration  time.Duration
	Award          int
	MaxFrames      int
	Busy           BusyPolicy
}

// Listener receives scoring and reset notifications from a flight.
type Listener interface {
	OnScore(amount int)
	OnReset()
}

// DirectiveKind tells the renderer how to move the sprite.
type DirectiveKind int

const (
	DirectiveMove   DirectiveKind = iota // Ease to the next frame position
	DirectiveReturn                      // Fly back to the launch position
	DirectivePlace                       // Jump, no easing (pointer drag)
)

// Directive asks the rendering layer to move the sprite to To over Duration.
// It is not part of the simulation state.
type Directive struct {
	Kind     DirectiveKind
	To       core.Vec2
	Duration time.Duration
}

// Outcome summarizes a finished flight.
type Outcome struct {
	State  FlightState // FlightReset or FlightSettled
	Hit    bool        // Settled overlapping the target
	Origin core.Vec2   // Where the flight started
	Final  core.Vec2   // Where the plane stopped (before any return)
	Frames int
}

// Flight owns the single active-flight slot for one plane.
type Flight struct {
	phys     Physics
	env      Environment
	listener Listener

	state  FlightState
	pos    core.Vec2
	vel    core.Vec2
	origin core.Vec2
	frames int

	directives []Directive
	outcome    *Outcome
}

// NewFlight creates an idle simulator resting at env.Launch.
func NewFlight(phys Physics, env Environment, listener Listener) *Flight {
	return &Flight{
		phys:     phys,
		env:      env,
		listener: listener,
		pos:      env.Launch,
	}
}

// SetEnvironment replaces the measured geometry after a layout pass.
// An active flight keeps running against the new geometry.
func (f *Flight) SetEnvironment(env Environment) {
	f.env = env
}

// Environment returns the geometry the simulator is using.
func (f *Flight) Environment() Environment {
	return f.env
}

// SetListener replaces the score/reset listener.
func (f *Flight) SetListener(l Listener) {
	f.listener = l
}

// State returns the current state.
func (f *Flight) State() FlightState { return f.state }

// Position returns the plane's top-left position.
func (f *Flight) Position() core.Vec2 { return f.pos }

// Velocity returns the current per-frame velocity.
func (f *Flight) Velocity() core.Vec2 { return f.vel }

// Frames returns the number of frames advanced in the current or last flight.
func (f *Flight) Frames() int { return f.frames }

// Active reports whether a flight is in progress.
func (f *Flight) Active() bool { return f.state == FlightActive }

// Launch starts a flight from `from` with velocity v.
// Returns false if the environment is not ready or the busy policy rejects it.
// A release too slow to move settles immediately where it is.
func (f *Flight) Launch(from, v core.Vec2) bool {
	if !f.env.Ready() {
		return false
	}
	if f.state == FlightActive && f.phys.Busy == BusyReject {
		return false
	}

	f.pos = from
	f.vel = v
	f.origin = from
	f.frames = 0
	f.outcome = nil
	f.state = FlightActive

	if !f.moving() {
		f.settle()
	}
	return true
}

// Step advances an active flight by one frame and returns the new state.
// Outside of a flight, or before the environment is measured, it does nothing.
func (f *Flight) Step() FlightState {
	if f.state != FlightActive || !f.env.Ready() {
		return f.state
	}

	f.pos = f.pos.Add(f.vel)
	f.vel = f.vel.Scale(f.phys.Decay)
	f.frames++

	if !core.PointInRect(f.pos, f.env.Playfield) {
		f.finish(FlightReset, false)
		f.returnToLaunch()
		f.notifyReset()
		return f.state
	}

	f.emit(Directive{Kind: DirectiveMove, To: f.pos, Duration: f.phys.MoveTransition})

	if !f.moving() || (f.phys.MaxFrames > 0 && f.frames >= f.phys.MaxFrames) {
		f.settle()
	}
	return f.state
}

// Place moves a resting plane directly, as when it is dragged by the pointer.
// An active flight is cancelled first.
func (f *Flight) Place(pos core.Vec2) {
	f.cancel()
	f.pos = pos
	f.state = FlightIdle
	f.emit(Directive{Kind: DirectivePlace, To: pos})
}

// RestoreLaunch cancels any flight and returns the plane to the launch
// position. Calling it when the plane is already resting there is a no-op.
func (f *Flight) RestoreLaunch() {
	if f.state != FlightActive && f.pos == f.env.Launch {
		return
	}
	f.cancel()
	f.returnToLaunch()
	f.state = FlightIdle
}

// TakeDirectives returns and clears the pending rendering directives.
func (f *Flight) TakeDirectives() []Directive {
	d := f.directives
	f.directives = nil
	return d
}

// TakeOutcome returns the outcome of the last finished flight once.
func (f *Flight) TakeOutcome() (Outcome, bool) {
	if f.outcome == nil {
		return Outcome{}, false
	}
	o := *f.outcome
	f.outcome = nil
	return o, true
}

// moving reports whether either velocity component is above the stop threshold.
func (f *Flight) moving() bool {
	return math.Abs(f.vel.X) > f.phys.StopThreshold || math.Abs(f.vel.Y) > f.phys.StopThreshold
}

// settle ends the flight in bounds and tests the plane against the target.
func (f *Flight) settle() {
	hit := core.RectsOverlap(f.env.PlaneBox(f.pos), f.env.Target)
	f.finish(FlightSettled, hit)
	if hit && f.listener != nil {
		f.listener.OnScore(f.phys.Award)
	}
}

func (f *Flight) finish(state FlightState, hit bool) {
	f.state = state
	f.outcome = &Outcome{
		State:  state,
		Hit:    hit,
		Origin: f.origin,
		Final:  f.pos,
		Frames: f.frames,
	}
}

// cancel drops an active flight without an outcome.
func (f *Flight) cancel() {
	if f.state == FlightActive {
		f.state = FlightIdle
	}
	f.vel = core.Vec2{}
}

func (f *Flight) returnToLaunch() {
	f.pos = f.env.Launch
	f.vel = core.Vec2{}
	f.emit(Directive{Kind: DirectiveReturn, To: f.env.Launch, Duration: f.phys.ResetDuration})
}

func (f *Flight) notifyReset() {
	if f.listener != nil {
		f.listener.OnReset()
	}
}

func (f *Flight) emit(d Directive) {
	f.directives = append(f.directives, d)
}

// Predict dry-runs a flight from `from` with velocity v and returns the
// positions it would pass through, stopping at settle or at the first
// position outside the playfield. It never touches listeners.
func Predict(phys Physics, env Environment, from, v core.Vec2) []core.Vec2 {
	if !env.Ready() {
		return nil
	}
	sim := NewFlight(phys, env, nil)
	sim.phys.Busy = BusyRestart
	if !sim.Launch(from, v) {
		return nil
	}

	points := []core.Vec2{from}
	for sim.Active() {
		sim.Step()
		if sim.State() == FlightReset {
			points = append(points, sim.outcomeFinal())
			break
		}
		points = append(points, sim.pos)
	}
	return points
}

// outcomeFinal returns the last recorded stopping point.
func (f *Flight) outcomeFinal() core.Vec2 {
	if f.outcome == nil {
		return f.pos
	}
	return f.outcome.Final
}
