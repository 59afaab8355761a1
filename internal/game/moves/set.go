// Package moves defines the ordered, immutable list of move names a game is
// played with.
package moves

import "fmt"

// MinMoves is the smallest playable number of moves.
const MinMoves = 3

// Set is a validated, ordered list of unique move names.
//
// Invariant: Count() >= MinMoves, Count() is odd, and all names are distinct
// (exact, case-sensitive comparison). A Set is never mutated after New.
type Set struct {
	names []string
	index map[string]int
}

// New validates names and builds a Set.
//
// Checks run in order and the first failure is returned as a *ValidationError:
// TooFewMoves, then EvenMoveCount, then DuplicateMove.
//
// Postcondition: Returns a Set whose order matches names, or a *ValidationError.
func New(names []string) (*Set, error) {
	if len(names) < MinMoves {
		return nil, &ValidationError{Kind: TooFewMoves, Count: len(names)}
	}
	if len(names)%2 == 0 {
		return nil, &ValidationError{Kind: EvenMoveCount, Count: len(names)}
	}

	index := make(map[string]int, len(names))
	for i, n := range names {
		if _, dup := index[n]; dup {
			return nil, &ValidationError{Kind: DuplicateMove, Move: n, Count: len(names)}
		}
		index[n] = i
	}

	owned := make([]string, len(names))
	copy(owned, names)
	return &Set{names: owned, index: index}, nil
}

// MustNew is New that panics on error. Useful for fixtures.
func MustNew(names ...string) *Set {
	s, err := New(names)
	if err != nil {
		panic("moves: MustNew: " + err.Error())
	}
	return s
}

// Count returns the number of moves.
func (s *Set) Count() int { return len(s.names) }

// NameAt returns the name at index i.
//
// Postcondition: Returns ErrIndexOutOfRange when i is outside [0, Count()).
func (s *Set) NameAt(i int) (string, error) {
	if i < 0 || i >= len(s.names) {
		return "", fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(s.names))
	}
	return s.names[i], nil
}

// IndexOf returns the index of name, if present.
func (s *Set) IndexOf(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Names returns a copy of the move names in order.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}
