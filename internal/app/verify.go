package app

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/sokinpui/nodo-tools/internal/cli"
	"github.com/sokinpui/nodo-tools/internal/partition"
)

// NoUnusedMessage is printed when there is no unused list to check.
const NoUnusedMessage = "No unused, toposort test."

// RunVerify runs verify-unused. args includes the program name. It returns
// the process exit status.
func RunVerify(streams Streams, args []string) int {
	prog, rest := progName(args)
	cfg, err := cli.ParseVerifyFlags(prog, rest, streams.Stderr)
	if err != nil {
		if errors.Is(err, cli.ErrHelp) {
			return cli.ExitSuccess
		}
		return cli.ExitBadArgs
	}

	a := newApp(streams, cfg.Verbose)
	defer a.log.Sync()

	if err := a.guard(func() error { return a.verify(cfg) }); err != nil {
		var violation *partition.DisjointnessViolation
		if errors.As(err, &violation) {
			a.ui.PrintOverlap(violation.Overlap)
		} else {
			a.reportError(err)
		}
		return cli.ExitFailure
	}
	return cli.ExitSuccess
}

func (a *App) verify(cfg *cli.VerifyConfig) error {
	unused, result, err := partition.Check(cfg.Unused, cfg.Result)
	if errors.Is(err, partition.ErrNoUnused) {
		a.log.Debug("unused list not found", zap.String("path", cfg.Unused))
		fmt.Fprintln(a.streams.Stdout, NoUnusedMessage)
		return nil
	}
	if unused != nil {
		a.log.Debug("read unused list",
			zap.String("root", unused.Root),
			zap.Int("entries", unused.Len()),
		)
	}
	if err != nil {
		return err
	}

	a.log.Debug("lists are disjoint",
		zap.Int("unused", unused.Len()),
		zap.Int("result", result.Len()),
	)
	return nil
}
