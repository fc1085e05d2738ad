package paperplane

// Callbacks are notified whenever the score board changes.
// Either field may be nil; NopCallbacks fills both with no-ops.
type Callbacks struct {
	OnScoreUpdate func(score int) // Called after a hit sets the score
	OnReset       func()          // Called after the board is cleared
}

// NopCallbacks returns callbacks that do nothing.
func NopCallbacks() Callbacks {
	return Callbacks{
		OnScoreUpdate: func(int) {},
		OnReset:       func() {},
	}
}

func (c Callbacks) withDefaults() Callbacks {
	nop := NopCallbacks()
	if c.OnScoreUpdate == nil {
		c.OnScoreUpdate = nop.OnScoreUpdate
	}
	if c.OnReset == nil {
		c.OnReset = nop.OnReset
	}
	return c
}

// Restorer returns the plane to its launch position.
// *Flight satisfies it.
type Restorer interface {
	RestoreLaunch()
}

// Scoreboard tracks the current score, best score and last distance.
// It implements Listener so a Flight can report to it directly.
type Scoreboard struct {
	score    int
	best     int
	distance float64

	restorer  Restorer
	callbacks Callbacks
}

// NewScoreboard creates a board starting from the given best score.
func NewScoreboard(initialBest int, restorer Restorer, cb Callbacks) *Scoreboard {
	return &Scoreboard{
		best:      initialBest,
		restorer:  restorer,
		callbacks: cb.withDefaults(),
	}
}

// SetRestorer replaces the component asked to return the plane on reset.
func (s *Scoreboard) SetRestorer(r Restorer) {
	s.restorer = r
}

// OnScore sets the score to amount and raises best to at least amount.
func (s *Scoreboard) OnScore(amount int) {
	s.score = amount
	if amount > s.best {
		s.best = amount
	}
	s.callbacks.OnScoreUpdate(s.score)
}

// OnReset clears score and distance and restores the plane to launch.
// Repeated calls leave the board in the same state.
func (s *Scoreboard) OnReset() {
	s.score = 0
	s.distance = 0
	if s.restorer != nil {
		s.restorer.RestoreLaunch()
	}
	s.callbacks.OnReset()
}

// SetDistance records the distance of the last throw in metres.
func (s *Scoreboard) SetDistance(m float64) {
	s.distance = m
}

// Score returns the current score.
func (s *Scoreboard) Score() int { return s.score }

// Best returns the best score seen.
func (s *Scoreboard) Best() int { return s.best }

// Distance returns the distance of the last throw in metres.
func (s *Scoreboard) Distance() float64 { return s.distance }
