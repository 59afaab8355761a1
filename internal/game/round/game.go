// Package round sequences fair rounds: commit to a hidden computer move,
// wait for the player's choice, then resolve and reveal the key.
package round

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/fairplay/internal/game/fairness"
	"github.com/cory-johannsen/fairplay/internal/game/moves"
	"github.com/cory-johannsen/fairplay/internal/game/random"
	"github.com/cory-johannsen/fairplay/internal/game/rules"
)

// Round is one commit/reveal cycle.
//
// Invariant: computer and commitment are fixed when the round leaves Idle and
// never change afterwards; the key is only handed out in a Result.
type Round struct {
	ID         uuid.UUID
	state      State
	computer   int
	commitment fairness.Commitment
	outcome    rules.Outcome
}

// State returns the round's current lifecycle state.
func (r *Round) State() State { return r.state }

// Digest returns the published commitment, empty while Idle.
func (r *Round) Digest() fairness.Digest { return r.commitment.Digest }

// Outcome returns the decided outcome once the round is Resolved.
func (r *Round) Outcome() (rules.Outcome, bool) {
	if r.state != Resolved {
		return rules.Tie, false
	}
	return r.outcome, true
}

func (r *Round) transition(to State) error {
	if !canTransition(r.state, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.state, to)
	}
	r.state = to
	return nil
}

// Summary tallies a Play session.
type Summary struct {
	Started      int
	Resolved     int
	HelpRequests int
	Exited       bool
	Outcomes     map[rules.Outcome]int
}

// Game drives rounds over a fixed move set.
//
// A Game is not safe for concurrent use; at most one round is outstanding.
type Game struct {
	set       *moves.Set
	keys      *fairness.KeyGenerator
	picker    *random.Picker
	selector  Selector
	presenter Presenter
	logger    *zap.Logger
	rounds    int
}

// Option configures a Game.
type Option func(*Game)

// WithRounds sets how many resolved rounds Play runs before returning.
// Values below 1 are ignored.
func WithRounds(n int) Option {
	return func(g *Game) {
		if n >= 1 {
			g.rounds = n
		}
	}
}

// WithKeyGenerator replaces the default crypto/rand backed key generator.
func WithKeyGenerator(k *fairness.KeyGenerator) Option {
	return func(g *Game) { g.keys = k }
}

// WithSource replaces the general-purpose source used to pick the computer's move.
func WithSource(src random.Source) Option {
	return func(g *Game) { g.picker = random.NewLoggedPicker(src, g.logger) }
}

// NewGame creates a Game over set.
//
// Precondition: set, selector, presenter and logger must be non-nil.
// Postcondition: Returns a Game that plays one resolved round unless WithRounds says otherwise.
func NewGame(set *moves.Set, selector Selector, presenter Presenter, logger *zap.Logger, opts ...Option) *Game {
	g := &Game{
		set:       set,
		keys:      fairness.NewKeyGenerator(nil),
		selector:  selector,
		presenter: presenter,
		logger:    logger,
		rounds:    1,
	}
	g.picker = random.NewLoggedPicker(random.NewMathSource(), logger)
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Start begins a round: draws the computer's move, commits to its name with
// a fresh key, and publishes the digest.
//
// Postcondition: On success the round is in AwaitingChoice and the digest
// has been presented. On error no digest was presented.
func (g *Game) Start() (*Round, error) {
	r := &Round{ID: uuid.New(), state: Idle}

	r.computer = g.picker.Pick(g.set.Count())
	name, err := g.set.NameAt(r.computer)
	if err != nil {
		return nil, fmt.Errorf("round %s: %w", r.ID, err)
	}
	c, err := fairness.Commit(g.keys, name)
	if err != nil {
		return nil, fmt.Errorf("round %s: committing: %w", r.ID, err)
	}
	r.commitment = c
	if err := r.transition(Committed); err != nil {
		return nil, err
	}
	g.logger.Debug("round committed",
		zap.String("round_id", r.ID.String()),
		zap.String("digest", c.Digest.String()),
	)

	if err := g.presenter.Commitment(c.Digest); err != nil {
		return nil, fmt.Errorf("round %s: presenting commitment: %w", r.ID, err)
	}
	if err := r.transition(AwaitingChoice); err != nil {
		return nil, err
	}
	return r, nil
}

// Resolve applies the player's selection to a round awaiting a choice.
//
// A move resolves the round and presents the Result. Help presents the
// relation table and abandons the round; its key is never revealed. Exit
// abandons the round without presenting anything.
//
// Postcondition: Returns the round's new state. An invalid move index leaves
// the round in AwaitingChoice.
func (g *Game) Resolve(r *Round, sel Selection) (State, error) {
	if r.state != AwaitingChoice {
		return r.state, fmt.Errorf("%w: resolve in %s", ErrInvalidTransition, r.state)
	}

	switch {
	case sel.IsExit():
		if err := r.transition(Exited); err != nil {
			return r.state, err
		}
		g.logger.Debug("round exited", zap.String("round_id", r.ID.String()))
		return r.state, nil

	case sel.IsHelp():
		if err := g.presenter.HelpTable(rules.BuildTable(g.set)); err != nil {
			return r.state, fmt.Errorf("round %s: presenting help: %w", r.ID, err)
		}
		if err := r.transition(HelpRequested); err != nil {
			return r.state, err
		}
		g.logger.Debug("round abandoned for help", zap.String("round_id", r.ID.String()))
		return r.state, nil
	}

	human, ok := sel.Index()
	if !ok {
		return r.state, fmt.Errorf("round %s: %w", r.ID, ErrEmptySelection)
	}
	outcome, err := rules.Decide(g.set.Count(), r.computer, human)
	if err != nil {
		return r.state, fmt.Errorf("round %s: %w", r.ID, err)
	}
	humanName, err := g.set.NameAt(human)
	if err != nil {
		return r.state, fmt.Errorf("round %s: %w", r.ID, err)
	}

	if err := r.transition(Resolved); err != nil {
		return r.state, err
	}
	r.outcome = outcome
	res := Result{
		HumanMove:    humanName,
		ComputerMove: r.commitment.Message,
		Outcome:      outcome,
		Key:          r.commitment.Key,
		Digest:       r.commitment.Digest,
	}
	g.logger.Debug("round resolved",
		zap.String("round_id", r.ID.String()),
		zap.String("outcome", outcome.String()),
	)
	if err := g.presenter.Result(res); err != nil {
		return r.state, fmt.Errorf("round %s: presenting result: %w", r.ID, err)
	}
	return r.state, nil
}

// Play runs rounds until the configured number resolve, the player exits,
// or ctx is cancelled. A help request restarts with a brand-new round.
//
// Cancellation while awaiting a choice is treated as an exit: nothing is
// revealed and ctx.Err() is returned.
//
// Postcondition: Returns a Summary of what was played. Errors are never retried.
func (g *Game) Play(ctx context.Context) (Summary, error) {
	sum := Summary{Outcomes: make(map[rules.Outcome]int)}

	for sum.Resolved < g.rounds {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		r, err := g.Start()
		if err != nil {
			return sum, err
		}
		sum.Started++

		sel, err := g.selector.Select(ctx, g.set)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				if _, rerr := g.Resolve(r, Exit()); rerr != nil {
					g.logger.Debug("closing cancelled round",
						zap.String("round_id", r.ID.String()),
						zap.Error(rerr),
					)
				}
				sum.Exited = true
				return sum, err
			}
			return sum, fmt.Errorf("round %s: awaiting selection: %w", r.ID, err)
		}

		state, err := g.Resolve(r, sel)
		if err != nil {
			return sum, err
		}
		switch state {
		case Exited:
			sum.Exited = true
			return sum, nil
		case HelpRequested:
			sum.HelpRequests++
		case Resolved:
			sum.Resolved++
			o, _ := r.Outcome()
			sum.Outcomes[o]++
		}
	}

	g.logger.Info("game finished",
		zap.Int("rounds", sum.Resolved),
		zap.Int("help_requests", sum.HelpRequests),
	)
	return sum, nil
}
