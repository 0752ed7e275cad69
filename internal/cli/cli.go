package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// Process exit statuses shared by the commands.
const (
	ExitSuccess = 0
	ExitFailure = 1
	// ExitBadArgs matches the status argument parsers conventionally use.
	ExitBadArgs = 2
	// ExitUsage is reported by file2utf8z when the symbol name is missing.
	ExitUsage = -1
)

// ErrHelp is returned when -h/--help was requested. Usage has been printed.
var ErrHelp = pflag.ErrHelp

// UsageError reports a command line that does not have the expected shape.
// The usage text has already been written when it is returned.
type UsageError struct {
	Prog string
	Msg  string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Prog, e.Msg)
}

// EmitConfig holds the file2utf8z command-line values.
type EmitConfig struct {
	// Name is the symbol the array is declared under. Not validated.
	Name      string
	Output    string
	Clipboard bool
	Verbose   bool
}

// VerifyConfig holds the verify-unused command-line values.
type VerifyConfig struct {
	// Unused is empty when --unused was not given.
	Unused  string
	Result  string
	Verbose bool
}

// ParseEmitFlags parses file2utf8z arguments (without the program name).
// Exactly one positional argument, the symbol name, is required.
func ParseEmitFlags(prog string, args []string, stderr io.Writer) (*EmitConfig, error) {
	cfg := &EmitConfig{}

	fs := pflag.NewFlagSet(prog, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&cfg.Output, "output", "o", "", "Write the declaration to FILE instead of stdout.")
	fs.BoolVarP(&cfg.Clipboard, "clipboard", "c", false, "Read the content from the clipboard instead of stdin.")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log debug details to stderr.")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s <variable name>\n", prog)
		fmt.Fprintln(stderr, "Pass the input file as stdin, and the generated C file will be dumped to stdout.")
		fmt.Fprintln(stderr, "\nFlags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, parseError(fs, prog, stderr, err)
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return nil, &UsageError{Prog: prog, Msg: fmt.Sprintf("expected 1 argument, got %d", fs.NArg())}
	}
	cfg.Name = fs.Arg(0)

	return cfg, nil
}

// ParseVerifyFlags parses verify-unused arguments (without the program name):
// an optional --unused list and the required positional result list.
func ParseVerifyFlags(prog string, args []string, stderr io.Writer) (*VerifyConfig, error) {
	cfg := &VerifyConfig{}

	fs := pflag.NewFlagSet(prog, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Unused, "unused", "", "File listing the files the pruner reported as unused, one per line.")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log debug details to stderr.")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [--unused UNUSED] RESULT\n", prog)
		fmt.Fprintln(stderr, "\nCheck that no file listed in UNUSED appears in the RESULT file list.")
		fmt.Fprintln(stderr, "\nFlags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, parseError(fs, prog, stderr, err)
	}

	switch fs.NArg() {
	case 1:
		cfg.Result = fs.Arg(0)
	case 0:
		fs.Usage()
		return nil, &UsageError{Prog: prog, Msg: "the following arguments are required: result"}
	default:
		fs.Usage()
		return nil, &UsageError{Prog: prog, Msg: fmt.Sprintf("unrecognized arguments: %v", fs.Args()[1:])}
	}

	return cfg, nil
}

// parseError keeps ErrHelp recognizable (pflag has printed usage for it)
// and reports every other pflag failure as a UsageError.
func parseError(fs *pflag.FlagSet, prog string, stderr io.Writer, err error) error {
	if errors.Is(err, pflag.ErrHelp) {
		return ErrHelp
	}
	fmt.Fprintf(stderr, "%s: %v\n", prog, err)
	fs.Usage()
	return &UsageError{Prog: prog, Msg: err.Error()}
}
