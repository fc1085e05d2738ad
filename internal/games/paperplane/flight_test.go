package paperplane

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/paperplane/internal/config"
	"github.com/vovakirdan/paperplane/internal/core"
)

// recorder is a Listener that counts notifications.
type recorder struct {
	scores []int
	resets int
}

func (r *recorder) OnScore(amount int) { r.scores = append(r.scores, amount) }
func (r *recorder) OnReset()           { r.resets++ }

func testPhysics() Physics {
	return physicsFor(config.DefaultPaperPlaneConfig(), config.ModeRelease)
}

func testEnv() Environment {
	return NewLayout(config.DefaultPaperPlaneConfig()).Environment()
}

// runFlight steps until the flight ends or limit frames pass.
func runFlight(t *testing.T, f *Flight, limit int) {
	t.Helper()
	for i := 0; i < limit && f.Active(); i++ {
		f.Step()
	}
	require.False(t, f.Active(), "flight still active after %d frames", limit)
}

func TestFlightSettlesWithinNineFrames(t *testing.T) {
	rec := &recorder{}
	env := testEnv()
	f := NewFlight(testPhysics(), env, rec)

	require.True(t, f.Launch(core.V(100, 500), core.V(40, -30)))

	bounds := core.RectF{Right: 1512, Bottom: 782}
	for f.Active() {
		f.Step()
		require.True(t, core.PointInRect(f.Position(), bounds), "position %v left the playfield", f.Position())
		require.LessOrEqual(t, f.Frames(), 9)
	}

	assert.Equal(t, FlightSettled, f.State())
	assert.Equal(t, 8, f.Frames())
	assert.Empty(t, rec.scores)
	assert.Zero(t, rec.resets)

	o, ok := f.TakeOutcome()
	require.True(t, ok)
	assert.False(t, o.Hit)
	assert.Equal(t, core.V(100, 500), o.Origin)
}

func TestFlightLeavingPlayfieldResetsOnce(t *testing.T) {
	rec := &recorder{}
	env := testEnv()
	f := NewFlight(testPhysics(), env, rec)

	require.True(t, f.Launch(core.V(5, 500), core.V(-10, 0)))
	state := f.Step()

	assert.Equal(t, FlightReset, state)
	assert.Equal(t, 1, rec.resets)
	assert.Empty(t, rec.scores)
	assert.Equal(t, env.Launch, f.Position())

	// No further frames once terminal
	f.Step()
	assert.Equal(t, 1, rec.resets)

	dirs := f.TakeDirectives()
	require.Len(t, dirs, 1)
	assert.Equal(t, DirectiveReturn, dirs[0].Kind)
	assert.Equal(t, 500*time.Millisecond, dirs[0].Duration)
	assert.Equal(t, env.Launch, dirs[0].To)

	o, ok := f.TakeOutcome()
	require.True(t, ok)
	assert.Equal(t, FlightReset, o.State)
	assert.InDelta(t, -5.0, o.Final.X, 1e-9)
}

func TestFlightExactTargetScoresOnce(t *testing.T) {
	rec := &recorder{}
	env := testEnv()
	env.PlaneW = env.Target.Width()
	env.PlaneH = env.Target.Height()
	f := NewFlight(testPhysics(), env, rec)

	require.True(t, f.Launch(env.Target.TopLeft(), core.Vec2{}))
	assert.Equal(t, FlightSettled, f.State())
	assert.Equal(t, []int{100}, rec.scores)

	// Stepping a settled plane must not re-score
	for i := 0; i < 5; i++ {
		f.Step()
	}
	assert.Equal(t, []int{100}, rec.scores)
}

func TestFlightZeroVelocitySettlesInPlace(t *testing.T) {
	rec := &recorder{}
	f := NewFlight(testPhysics(), testEnv(), rec)

	from := core.V(400, 300)
	require.True(t, f.Launch(from, core.Vec2{}))

	assert.Equal(t, FlightSettled, f.State())
	assert.Equal(t, from, f.Position())
	assert.Zero(t, f.Frames())
	assert.Empty(t, f.TakeDirectives())
}

func TestFlightDecayConverges(t *testing.T) {
	env := testEnv()
	env.Playfield = core.RectF{Left: -1e6, Top: -1e6, Right: 1e6, Bottom: 1e6}
	phys := testPhysics()

	velocities := []core.Vec2{
		core.V(0.6, 0),
		core.V(0, -3),
		core.V(40, -30),
		core.V(-250, 120),
		core.V(1000, 1000),
	}
	for _, v := range velocities {
		f := NewFlight(phys, env, nil)
		require.True(t, f.Launch(core.V(0, 0), v))

		peak := math.Max(math.Abs(v.X), math.Abs(v.Y))
		bound := int(math.Ceil(math.Log(phys.StopThreshold/peak) / math.Log(phys.Decay)))

		prev := peak
		for f.Active() {
			f.Step()
			cur := math.Max(math.Abs(f.Velocity().X), math.Abs(f.Velocity().Y))
			assert.Less(t, cur, prev, "velocity must strictly decrease")
			prev = cur
		}
		assert.Equal(t, FlightSettled, f.State())
		assert.LessOrEqual(t, f.Frames(), bound, "v=%v", v)
	}
}

func TestFlightNotReadyIsNoop(t *testing.T) {
	rec := &recorder{}
	env := testEnv()
	env.Target = core.RectF{}
	f := NewFlight(testPhysics(), env, rec)

	assert.False(t, f.Launch(core.V(100, 500), core.V(40, 0)))
	assert.Equal(t, FlightIdle, f.Step())
	assert.Equal(t, env.Launch, f.Position())
	assert.Empty(t, rec.scores)
	assert.Zero(t, rec.resets)
}

func TestFlightBusyPolicy(t *testing.T) {
	tests := []struct {
		name     string
		policy   BusyPolicy
		accepted bool
		velocity core.Vec2
	}{
		{"reject keeps active flight", BusyReject, false, core.V(40, 0)},
		{"restart replaces active flight", BusyRestart, true, core.V(0, -20)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			phys := testPhysics()
			phys.Busy = tc.policy
			f := NewFlight(phys, testEnv(), nil)

			require.True(t, f.Launch(core.V(100, 500), core.V(40, 0)))
			assert.Equal(t, tc.accepted, f.Launch(core.V(200, 400), core.V(0, -20)))
			assert.True(t, f.Active())
			assert.Equal(t, tc.velocity, f.Velocity())
		})
	}
}

func TestFlightFrameCap(t *testing.T) {
	phys := testPhysics()
	phys.Decay = 0.999
	phys.MaxFrames = 5
	env := testEnv()
	env.Playfield = core.RectF{Left: -1e6, Top: -1e6, Right: 1e6, Bottom: 1e6}
	f := NewFlight(phys, env, nil)

	require.True(t, f.Launch(core.V(0, 0), core.V(10, 0)))
	runFlight(t, f, 10)
	assert.Equal(t, FlightSettled, f.State())
	assert.Equal(t, 5, f.Frames())
}

func TestFlightMoveDirectives(t *testing.T) {
	f := NewFlight(testPhysics(), testEnv(), nil)
	require.True(t, f.Launch(core.V(100, 500), core.V(40, -30)))
	f.Step()

	dirs := f.TakeDirectives()
	require.Len(t, dirs, 1)
	assert.Equal(t, DirectiveMove, dirs[0].Kind)
	assert.Equal(t, core.V(140, 470), dirs[0].To)
	assert.Equal(t, 100*time.Millisecond, dirs[0].Duration)
	assert.Empty(t, f.TakeDirectives(), "directives are drained")
}

func TestRestoreLaunchIdempotent(t *testing.T) {
	env := testEnv()
	f := NewFlight(testPhysics(), env, nil)
	require.True(t, f.Launch(core.V(100, 500), core.V(40, -30)))
	f.Step()
	f.TakeDirectives()

	f.RestoreLaunch()
	f.RestoreLaunch()

	assert.Equal(t, FlightIdle, f.State())
	assert.Equal(t, env.Launch, f.Position())
	assert.Equal(t, core.Vec2{}, f.Velocity())
	assert.Len(t, f.TakeDirectives(), 1, "second restore emits nothing")
	_, ok := f.TakeOutcome()
	assert.False(t, ok, "cancelled flight has no outcome")
}

func TestPredictMatchesFlight(t *testing.T) {
	rec := &recorder{}
	env := testEnv()
	phys := testPhysics()

	path := Predict(phys, env, core.V(100, 500), core.V(40, -30))
	require.Len(t, path, 9) // origin + 8 frames

	f := NewFlight(phys, env, rec)
	require.True(t, f.Launch(core.V(100, 500), core.V(40, -30)))
	runFlight(t, f, 20)
	assert.Equal(t, f.Position(), path[len(path)-1])

	// Leaving the playfield ends the path at the exit point
	out := Predict(phys, env, core.V(5, 500), core.V(-10, 0))
	require.Len(t, out, 2)
	assert.InDelta(t, -5.0, out[1].X, 1e-9)

	assert.Nil(t, Predict(phys, Environment{}, core.V(0, 0), core.V(1, 1)))
}
