package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/cory-johannsen/fairplay/internal/config"
	"github.com/cory-johannsen/fairplay/internal/game/fairness"
	"github.com/cory-johannsen/fairplay/internal/game/moves"
	"github.com/cory-johannsen/fairplay/internal/game/round"
	"github.com/cory-johannsen/fairplay/internal/game/rules"
)

type lineResult struct {
	text string
	err  error
}

// Console reads selections from in and writes game output to out.
// It satisfies both round.Selector and round.Presenter.
//
// Input is read by a single background goroutine so that Select can honour
// context cancellation while the player has not typed anything.
type Console struct {
	in     io.Reader
	out    io.Writer
	menu   config.MenuConfig
	style  styler
	logger *zap.Logger

	once      sync.Once
	closeOnce sync.Once
	lines     chan lineResult
	done      chan struct{}
}

// ErrKeyShadowsMove is returned when a menu key equals a move name.
var ErrKeyShadowsMove = errors.New("console: menu key shadows a move")

// CheckMenu reports whether every move in set stays selectable under menu.
// Key syntax is checked by config.Validate; this adds the move-name check
// that needs the move set.
func CheckMenu(menu config.MenuConfig, set *moves.Set) error {
	for _, k := range []struct{ name, value string }{
		{"exit key", menu.ExitKey},
		{"help key", menu.HelpKey},
	} {
		if _, ok := set.IndexOf(k.value); ok {
			return fmt.Errorf("%w: %s %q is also a move name", ErrKeyShadowsMove, k.name, k.value)
		}
	}
	return nil
}

// New creates a Console.
//
// Precondition: in, out and logger must be non-nil; menu keys must be non-empty and distinct.
func New(in io.Reader, out io.Writer, menu config.MenuConfig, color bool, logger *zap.Logger) *Console {
	return &Console{
		in:     in,
		out:    out,
		menu:   menu,
		style:  styler(color),
		logger: logger,
		lines:  make(chan lineResult),
		done:   make(chan struct{}),
	}
}

// Close stops the background reader from delivering further lines.
// Safe to call multiple times and from multiple goroutines.
func (c *Console) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

func (c *Console) startReader() {
	c.once.Do(func() {
		go func() {
			sc := bufio.NewScanner(c.in)
			for sc.Scan() {
				select {
				case c.lines <- lineResult{text: sc.Text()}:
				case <-c.done:
					return
				}
			}
			err := sc.Err()
			if err == nil {
				err = io.EOF
			}
			select {
			case c.lines <- lineResult{err: err}:
			case <-c.done:
			}
		}()
	})
}

// Select prints the move menu and blocks until a valid choice is entered.
// Unrecognised input re-prompts. End of input counts as exit.
//
// Postcondition: Returns a Move, Help or Exit selection, or ctx.Err().
func (c *Console) Select(ctx context.Context, set *moves.Set) (round.Selection, error) {
	c.startReader()
	for {
		select {
		case <-c.done:
			return round.Exit(), nil
		default:
		}

		if err := c.writeMenu(set); err != nil {
			return round.Selection{}, err
		}

		var line lineResult
		select {
		case <-ctx.Done():
			return round.Selection{}, ctx.Err()
		case line = <-c.lines:
		}

		if line.err != nil {
			if errors.Is(line.err, io.EOF) {
				c.logger.Debug("input closed, exiting")
				c.Close()
				return round.Exit(), nil
			}
			return round.Selection{}, fmt.Errorf("reading selection: %w", line.err)
		}

		if sel, ok := c.parse(line.text, set); ok {
			return sel, nil
		}
		c.logger.Debug("unrecognised selection", zap.String("input", line.text))
		if _, err := fmt.Fprintf(c.out, "%s\n", c.style.paint(Yellow, fmt.Sprintf("Invalid choice %q, try again.", line.text))); err != nil {
			return round.Selection{}, err
		}
	}
}

// parse maps one input line to a selection. Accepted forms are the menu
// number, the exact move name, and the exit and help keys.
func (c *Console) parse(input string, set *moves.Set) (round.Selection, bool) {
	input = strings.TrimSpace(input)
	switch input {
	case "":
		return round.Selection{}, false
	case strings.TrimSpace(c.menu.ExitKey):
		return round.Exit(), true
	case strings.TrimSpace(c.menu.HelpKey):
		return round.Help(), true
	}
	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= set.Count() {
			return round.Move(n - 1), true
		}
		return round.Selection{}, false
	}
	if i, ok := set.IndexOf(input); ok {
		return round.Move(i), true
	}
	return round.Selection{}, false
}

func (c *Console) writeMenu(set *moves.Set) error {
	var b strings.Builder
	b.WriteString(c.style.paint(Bold, "Available moves:"))
	b.WriteByte('\n')
	for i, name := range set.Names() {
		fmt.Fprintf(&b, "%d - %s\n", i+1, name)
	}
	fmt.Fprintf(&b, "%s - exit\n", c.menu.ExitKey)
	fmt.Fprintf(&b, "%s - help\n", c.menu.HelpKey)
	b.WriteString("Enter your move: ")
	_, err := io.WriteString(c.out, b.String())
	return err
}

// Commitment prints the digest the player can later verify.
func (c *Console) Commitment(digest fairness.Digest) error {
	_, err := fmt.Fprintf(c.out, "HMAC: %s\n", c.style.paint(BrightCyan, digest.String()))
	return err
}

// HelpTable prints the relation table.
func (c *Console) HelpTable(t rules.Table) error {
	_, err := io.WriteString(c.out, RenderTable(t, bool(c.style)))
	return err
}

// Result prints the reveal: player move, computer move, outcome, key.
func (c *Console) Result(r round.Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Your move: %s\n", r.HumanMove)
	fmt.Fprintf(&b, "Computer move: %s\n", r.ComputerMove)
	b.WriteString(c.style.paint(outcomeColor(r.Outcome), r.Outcome.Message()))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "HMAC key: %s\n", c.style.paint(BrightYellow, r.Key.String()))
	_, err := io.WriteString(c.out, b.String())
	return err
}

func outcomeColor(o rules.Outcome) string {
	switch o {
	case rules.HumanWins:
		return Green
	case rules.ComputerWins:
		return Red
	default:
		return Cyan
	}
}
