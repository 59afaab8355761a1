// Package rules implements the generalized rock-paper-scissors beats
// relation for any odd number of moves.
//
// Moves are arranged on a cycle of length n. A move beats the n/2 moves that
// precede it on the cycle and loses to the n/2 moves that follow it, so every
// move beats exactly half of the others and no two distinct moves tie.
package rules

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when a move index is outside [0, n).
var ErrIndexOutOfRange = errors.New("rules: index out of range")

// Outcome is the result of a round from the game's point of view.
type Outcome int

const (
	// Tie means both sides picked the same move.
	Tie Outcome = iota
	// ComputerWins means the computer's move beats the player's.
	ComputerWins
	// HumanWins means the player's move beats the computer's.
	HumanWins
)

// String returns the outcome identifier.
func (o Outcome) String() string {
	switch o {
	case Tie:
		return "Tie"
	case ComputerWins:
		return "ComputerWins"
	case HumanWins:
		return "HumanWins"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Message returns the line shown to the player after a round.
func (o Outcome) Message() string {
	switch o {
	case Tie:
		return "It's a tie!"
	case ComputerWins:
		return "Computer win!"
	case HumanWins:
		return "You win!"
	default:
		return ""
	}
}

// Compare applies the cyclic rule to moves a (the computer) and b (the
// player) out of n.
//
// With d = (a - b) mod n normalized into [0, n): d == 0 is a Tie, d <= n/2
// means a wins, anything else means b wins.
//
// Precondition: n is odd and >= 3; a and b are in [0, n).
func Compare(n, a, b int) Outcome {
	if a == b {
		return Tie
	}
	d := ((a-b)%n + n) % n
	if d <= n/2 {
		return ComputerWins
	}
	return HumanWins
}

// Decide returns the outcome of a round in which the computer played
// computer and the player played human, out of n moves.
//
// n's oddness is a move-set invariant and is not re-checked here.
//
// Postcondition: Returns ErrIndexOutOfRange when either index is outside [0, n).
func Decide(n, computer, human int) (Outcome, error) {
	if err := checkIndex(n, computer); err != nil {
		return Tie, fmt.Errorf("computer move: %w", err)
	}
	if err := checkIndex(n, human); err != nil {
		return Tie, fmt.Errorf("player move: %w", err)
	}
	return Compare(n, computer, human), nil
}

func checkIndex(n, i int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, n)
	}
	return nil
}
