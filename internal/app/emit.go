package app

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/sokinpui/nodo-tools/internal/bytearray"
	"github.com/sokinpui/nodo-tools/internal/cli"
	"github.com/sokinpui/nodo-tools/internal/source"
)

// RunEmit runs file2utf8z. args includes the program name. It returns the
// process exit status.
func RunEmit(streams Streams, args []string) int {
	prog, rest := progName(args)
	cfg, err := cli.ParseEmitFlags(prog, rest, streams.Stderr)
	if err != nil {
		if errors.Is(err, cli.ErrHelp) {
			return cli.ExitSuccess
		}
		return cli.ExitUsage
	}

	a := newApp(streams, cfg.Verbose)
	defer a.log.Sync()

	if err := a.guard(func() error { return a.emit(cfg) }); err != nil {
		a.reportError(err)
		return cli.ExitFailure
	}
	return cli.ExitSuccess
}

func (a *App) emit(cfg *cli.EmitConfig) error {
	raw, err := source.New(a.streams.Stdin, cfg.Clipboard, a.log).GetContent()
	if err != nil {
		return err
	}

	data, err := bytearray.Normalize(raw)
	if err != nil {
		return err
	}
	if len(data) == 0 && cfg.Clipboard {
		a.ui.Warning("Clipboard is empty. Emitting an empty array.")
	}

	decl := bytearray.Declaration{Name: cfg.Name, Data: data}
	a.log.Debug("emitting declaration",
		zap.String("name", decl.Name),
		zap.Int("literals", decl.Literals()),
	)

	// Render fully before writing so a failure never leaves partial output.
	var buf bytes.Buffer
	if err := bytearray.Emit(&buf, decl.Name, decl.Data); err != nil {
		return err
	}

	if cfg.Output == "" {
		if _, err := a.streams.Stdout.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(cfg.Output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	a.log.Debug("wrote output file", zap.String("path", cfg.Output))
	return nil
}
