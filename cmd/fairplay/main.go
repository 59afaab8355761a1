// Package main provides the fairplay CLI: a generalized rock-paper-scissors
// game in which the computer commits to its move with an HMAC before the
// player chooses and reveals the key afterwards.
//
// Usage:
//
//	fairplay [-config file] [-color] MOVE MOVE MOVE ...
//	fairplay [-config file] -moves-file moves.yaml
//	fairplay table MOVE MOVE MOVE ...
//	fairplay verify -key KEY -move MOVE -hmac DIGEST
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/cory-johannsen/fairplay/internal/config"
	"github.com/cory-johannsen/fairplay/internal/frontend/console"
	"github.com/cory-johannsen/fairplay/internal/game/fairness"
	"github.com/cory-johannsen/fairplay/internal/game/moves"
	"github.com/cory-johannsen/fairplay/internal/game/round"
	"github.com/cory-johannsen/fairplay/internal/game/rules"
	"github.com/cory-johannsen/fairplay/internal/observability"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case "verify":
			return runVerify(args[1:], stdout, stderr)
		case "table":
			return runTable(args[1:], stdout, stderr)
		}
	}
	return runPlay(ctx, args, stdin, stdout, stderr)
}

func runPlay(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fairplay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to configuration file (optional)")
	movesFile := fs.String("moves-file", "", "path to a YAML file listing the moves")
	color := fs.Bool("color", false, "colorize output")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "loading config: %v\n", err)
		return 1
	}
	if *color {
		cfg.Game.Color = true
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "initializing logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	set, err := loadMoves(*movesFile, fs.Args())
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if err := console.CheckMenu(cfg.Menu, set); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger.Info("starting game",
		zap.Int("moves", set.Count()),
		zap.Int("rounds", cfg.Game.Rounds),
		zap.String("algorithm", fairness.Algorithm),
	)

	con := console.New(stdin, stdout, cfg.Menu, cfg.Game.Color, logger)
	defer con.Close()

	game := round.NewGame(set, con, con, logger, round.WithRounds(cfg.Game.Rounds))
	sum, err := game.Play(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("interrupted", zap.Int("resolved", sum.Resolved))
			return 130
		}
		logger.Error("game aborted", zap.Error(err))
		fmt.Fprintf(stderr, "game aborted: %v\n", err)
		return 1
	}
	return 0
}

func loadMoves(path string, names []string) (*moves.Set, error) {
	if path != "" {
		if len(names) > 0 {
			return nil, errors.New("pass moves either as arguments or with -moves-file, not both")
		}
		return moves.LoadFile(path)
	}
	return moves.New(names)
}

func runTable(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fairplay table", flag.ContinueOnError)
	fs.SetOutput(stderr)
	movesFile := fs.String("moves-file", "", "path to a YAML file listing the moves")
	color := fs.Bool("color", false, "colorize output")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	set, err := loadMoves(*movesFile, fs.Args())
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if _, err := io.WriteString(stdout, console.RenderTable(rules.BuildTable(set), *color)); err != nil {
		return 1
	}
	return 0
}

func runVerify(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fairplay verify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	key := fs.String("key", "", "revealed HMAC key")
	move := fs.String("move", "", "computer move name as revealed")
	digest := fs.String("hmac", "", "HMAC published before the round")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *move == "" || *digest == "" {
		fmt.Fprintln(stderr, "verify requires -key, -move and -hmac")
		return 2
	}

	ok, err := fairness.Verify(fairness.Key(*key), *move, fairness.Digest(*digest))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if !ok {
		fmt.Fprintf(stdout, "MISMATCH: %s(key, %q) does not equal the published HMAC\n", fairness.Algorithm, *move)
		return 1
	}
	fmt.Fprintf(stdout, "OK: %s(key, %q) matches the published HMAC\n", fairness.Algorithm, *move)
	return 0
}
