package round

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned when a round is driven out of order.
	ErrInvalidTransition = errors.New("round: invalid state transition")
	// ErrEmptySelection is returned when Resolve receives the zero Selection.
	ErrEmptySelection = errors.New("round: empty selection")
)

// State is the lifecycle position of a single round.
type State int

const (
	// Idle is a fresh round with nothing drawn yet.
	Idle State = iota
	// Committed means the move and key are drawn and the digest is published.
	Committed
	// AwaitingChoice means the round is suspended on the player's selection.
	AwaitingChoice
	// Resolved means the outcome was computed and the key revealed. Terminal.
	Resolved
	// HelpRequested means the player asked for the relation table. The round
	// is abandoned and a fresh one begins from Idle. Terminal for this round.
	HelpRequested
	// Exited means the player quit. Nothing is revealed. Terminal.
	Exited
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Committed:
		return "Committed"
	case AwaitingChoice:
		return "AwaitingChoice"
	case Resolved:
		return "Resolved"
	case HelpRequested:
		return "HelpRequested"
	case Exited:
		return "Exited"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further transition is allowed from s.
func (s State) Terminal() bool {
	return s == Resolved || s == HelpRequested || s == Exited
}

var transitions = map[State][]State{
	Idle:           {Committed},
	Committed:      {AwaitingChoice},
	AwaitingChoice: {Resolved, HelpRequested, Exited},
}

// canTransition reports whether from -> to is an edge of the round lifecycle.
func canTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
