package round

import (
	"context"

	"github.com/cory-johannsen/fairplay/internal/game/fairness"
	"github.com/cory-johannsen/fairplay/internal/game/moves"
	"github.com/cory-johannsen/fairplay/internal/game/rules"
)

type selectionKind int

const (
	selectNone selectionKind = iota
	selectMove
	selectHelp
	selectExit
)

// Selection is the player's answer to the move menu: a move index or one of
// the help and exit signals. The zero Selection is not a valid answer.
type Selection struct {
	kind  selectionKind
	index int
}

// Move returns a Selection choosing the move at index i.
func Move(i int) Selection { return Selection{kind: selectMove, index: i} }

// Help returns the help signal.
func Help() Selection { return Selection{kind: selectHelp} }

// Exit returns the exit signal.
func Exit() Selection { return Selection{kind: selectExit} }

// IsHelp reports whether s is the help signal.
func (s Selection) IsHelp() bool { return s.kind == selectHelp }

// IsExit reports whether s is the exit signal.
func (s Selection) IsExit() bool { return s.kind == selectExit }

// Index returns the chosen move index and true, or false for a signal.
func (s Selection) Index() (int, bool) {
	if s.kind != selectMove {
		return 0, false
	}
	return s.index, true
}

// Selector obtains the player's choice. It is the round's only suspend point.
//
// Implementations block until a choice is made or ctx is done, in which case
// they return ctx.Err().
type Selector interface {
	Select(ctx context.Context, set *moves.Set) (Selection, error)
}

// SelectorFunc adapts a function into a Selector.
type SelectorFunc func(ctx context.Context, set *moves.Set) (Selection, error)

// Select calls f.
func (f SelectorFunc) Select(ctx context.Context, set *moves.Set) (Selection, error) {
	return f(ctx, set)
}

// Result is everything disclosed when a round resolves.
type Result struct {
	HumanMove    string
	ComputerMove string
	Outcome      rules.Outcome
	Key          fairness.Key
	Digest       fairness.Digest
}

// Presenter displays round output.
//
// Calls arrive in protocol order: Commitment before any selection is
// requested, then either HelpTable or Result for that round.
type Presenter interface {
	Commitment(digest fairness.Digest) error
	HelpTable(t rules.Table) error
	Result(r Result) error
}
