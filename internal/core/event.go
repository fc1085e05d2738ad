package core

// Outcome is how a single throw ended.
type Outcome string

const (
	OutcomeHit     Outcome = "hit"     // Settled on the target
	OutcomeSettled Outcome = "settled" // Settled in bounds, off target
	OutcomeReset   Outcome = "reset"   // Left the playfield
)

// Event reports a finished throw to the platform, which logs and records it.
type Event struct {
	GameID   string
	Outcome  Outcome
	Award    int     // Score awarded, 0 unless Outcome is OutcomeHit
	Distance float64 // Metres flown from the launch point
	Frames   int     // Simulation frames the flight lasted
}
