package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/sokinpui/nodo-tools/internal/logging"
	"github.com/sokinpui/nodo-tools/internal/ui"
)

// Streams are the process streams a command runs against.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// StdStreams returns the streams of the current process.
func StdStreams() Streams {
	return Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// App holds what both commands share once their flags are parsed.
type App struct {
	streams Streams
	log     *zap.Logger
	ui      *ui.Printer
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

func (e *DetailedError) Unwrap() error {
	return e.Err
}

func newApp(streams Streams, verbose bool) *App {
	return &App{
		streams: streams,
		log:     logging.New(verbose, streams.Stderr),
		ui:      ui.New(streams.Stderr),
	}
}

// guard runs fn and converts a panic into a *DetailedError.
func (a *App) guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()
	return fn()
}

// reportError prints err and, for panics, logs the stack at debug level.
func (a *App) reportError(err error) {
	a.ui.Error("Error: %v", err)
	if de, ok := err.(*DetailedError); ok {
		a.log.Debug("stack trace", zap.ByteString("stack", de.Stack))
	}
}

// progName splits the program name off args. An empty args slice yields the
// running executable's base name.
func progName(args []string) (string, []string) {
	if len(args) == 0 {
		return filepath.Base(os.Args[0]), nil
	}
	return args[0], args[1:]
}
