package engine

// Star awards, shared by all rounds.
const (
	StarsPerSort      = 1 // each first-time correct assignment
	StarsGoodChoice   = 1
	StarsCountdownWin = 2 // every device in its required end-state in time
	StarsCountdownOut = 1 // countdown expired first
	StarsZoneBonus    = 3 // first-ever completion of a zone
)

// Outcome is the uniform result a finished mini-game reports.
type Outcome struct {
	Stars int    // total currency earned this round
	Full  bool   // highest success tier
	Label string // short notice for presentation
}

// MiniGame is the uniform contract of the three round state machines.
// Completion is monotonic: once IsComplete returns true it never reverts,
// and Outcome is defined exactly once the round is complete.
type MiniGame interface {
	Kind() string
	IsComplete() bool
	Outcome() (Outcome, bool)
}
