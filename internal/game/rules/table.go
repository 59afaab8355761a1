package rules

import "github.com/cory-johannsen/fairplay/internal/game/moves"

// Relation is a cell of the help table, read from the row move's side.
type Relation int

const (
	// Draw means row and column are the same move.
	Draw Relation = iota
	// Win means the row move beats the column move.
	Win
	// Lose means the row move is beaten by the column move.
	Lose
)

// String returns the label printed in the help table.
func (r Relation) String() string {
	switch r {
	case Draw:
		return "Draw"
	case Win:
		return "Win"
	case Lose:
		return "Lose"
	default:
		return "?"
	}
}

// relationOf maps an Outcome with the row in the computer seat.
func relationOf(o Outcome) Relation {
	switch o {
	case ComputerWins:
		return Win
	case HumanWins:
		return Lose
	default:
		return Draw
	}
}

// Table is the full N×N relation between moves. Rows are the computer's
// move and columns the player's.
type Table struct {
	Moves []string
	cells [][]Relation
}

// BuildTable derives the relation table for set using Compare for every
// ordered pair.
//
// Postcondition: t.At(r, c) corresponds to Compare(set.Count(), r, c) for all r, c.
func BuildTable(set *moves.Set) Table {
	n := set.Count()
	cells := make([][]Relation, n)
	for r := 0; r < n; r++ {
		cells[r] = make([]Relation, n)
		for c := 0; c < n; c++ {
			cells[r][c] = relationOf(Compare(n, r, c))
		}
	}
	return Table{Moves: set.Names(), cells: cells}
}

// Size returns N.
func (t Table) Size() int { return len(t.cells) }

// At returns the relation of row move r against column move c.
//
// Precondition: r and c are in [0, Size()).
func (t Table) At(r, c int) Relation { return t.cells[r][c] }

// Row returns a copy of row r.
func (t Table) Row(r int) []Relation {
	out := make([]Relation, len(t.cells[r]))
	copy(out, t.cells[r])
	return out
}
