package moves

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when a move index is outside [0, Count()).
var ErrIndexOutOfRange = errors.New("moves: index out of range")

// Kind classifies a move-set validation failure.
type Kind int

const (
	// TooFewMoves means fewer than MinMoves names were supplied.
	TooFewMoves Kind = iota + 1
	// EvenMoveCount means the number of names is even.
	EvenMoveCount
	// DuplicateMove means a name occurs more than once.
	DuplicateMove
)

// String returns the kind's identifier.
func (k Kind) String() string {
	switch k {
	case TooFewMoves:
		return "TooFewMoves"
	case EvenMoveCount:
		return "EvenMoveCount"
	case DuplicateMove:
		return "DuplicateMove"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ValidationError reports why a list of names cannot form a Set.
// Its message is suitable for showing to the user as-is.
type ValidationError struct {
	Kind Kind
	// Move is the offending name for DuplicateMove, empty otherwise.
	Move string
	// Count is the number of names supplied.
	Count int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case TooFewMoves:
		return fmt.Sprintf("Should be at least %d choices, got %d. For example: Rock Paper Scissors", MinMoves, e.Count)
	case EvenMoveCount:
		return fmt.Sprintf("Provided choices should be odd, got %d", e.Count)
	case DuplicateMove:
		return fmt.Sprintf("Choices should be unique, %q is repeated. For example: Rock Paper Scissors", e.Move)
	default:
		return "invalid moves"
	}
}

// Is lets errors.Is match against a bare &ValidationError{Kind: k}.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}
