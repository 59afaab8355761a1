package rules_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/fairplay/internal/game/moves"
	"github.com/cory-johannsen/fairplay/internal/game/rules"
)

func setOf(n int) *moves.Set {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("m%d", i)
	}
	return moves.MustNew(names...)
}

func TestBuildTable_RockPaperScissors(t *testing.T) {
	table := rules.BuildTable(moves.MustNew("Rock", "Paper", "Scissors"))
	require.Equal(t, 3, table.Size())
	assert.Equal(t, []string{"Rock", "Paper", "Scissors"}, table.Moves)

	assert.Equal(t, []rules.Relation{rules.Draw, rules.Lose, rules.Win}, table.Row(0), "Rock")
	assert.Equal(t, []rules.Relation{rules.Win, rules.Draw, rules.Lose}, table.Row(1), "Paper")
	assert.Equal(t, []rules.Relation{rules.Lose, rules.Win, rules.Draw}, table.Row(2), "Scissors")
}

// TestBuildTable_AgreesWithDecide closes the gap between the per-round
// decision and the help table for every pair.
func TestBuildTable_AgreesWithDecide(t *testing.T) {
	want := map[rules.Outcome]rules.Relation{
		rules.Tie:          rules.Draw,
		rules.ComputerWins: rules.Win,
		rules.HumanWins:    rules.Lose,
	}
	for _, n := range []int{3, 5, 7, 9, 11, 13} {
		table := rules.BuildTable(setOf(n))
		require.Equal(t, n, table.Size())
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				o, err := rules.Decide(n, r, c)
				require.NoError(t, err)
				assert.Equal(t, want[o], table.At(r, c), "n=%d cell (%d,%d)", n, r, c)
			}
		}
	}
}

func TestBuildTable_RowCounts(t *testing.T) {
	for _, n := range []int{3, 5, 7, 9} {
		table := rules.BuildTable(setOf(n))
		for r := 0; r < n; r++ {
			counts := map[rules.Relation]int{}
			for _, rel := range table.Row(r) {
				counts[rel]++
			}
			assert.Equal(t, 1, counts[rules.Draw])
			assert.Equal(t, n/2, counts[rules.Win])
			assert.Equal(t, n/2, counts[rules.Lose])
		}
	}
}

func TestBuildTable_Antisymmetric(t *testing.T) {
	table := rules.BuildTable(setOf(7))
	for r := 0; r < 7; r++ {
		for c := 0; c < 7; c++ {
			switch table.At(r, c) {
			case rules.Win:
				assert.Equal(t, rules.Lose, table.At(c, r))
			case rules.Lose:
				assert.Equal(t, rules.Win, table.At(c, r))
			case rules.Draw:
				assert.Equal(t, r, c)
			}
		}
	}
}

func TestRelation_String(t *testing.T) {
	assert.Equal(t, "Draw", rules.Draw.String())
	assert.Equal(t, "Win", rules.Win.String())
	assert.Equal(t, "Lose", rules.Lose.String())
}

func TestTable_RowIsCopy(t *testing.T) {
	table := rules.BuildTable(setOf(3))
	row := table.Row(0)
	row[0] = rules.Win
	assert.Equal(t, rules.Draw, table.At(0, 0))
}
