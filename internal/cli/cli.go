package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/percolate/internal/config"
	"github.com/spf13/pflag"
)

// Exit codes returned by the percolate command.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly (help was
// requested), or an *ExitError with ExitUsage for any invalid input.
// Only usage text is written to output; errors are left to the caller.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	fs := pflag.NewFlagSet("percolate", pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(output, `
percolate - Monte Carlo estimate of the site-percolation threshold.

Usage:
  percolate [options] <n> <trials>

Arguments:
  n        Grid side length (n > 0); the grid has n×n sites.
  trials   Number of independent trials (trials > 0).

Options:
`)
		fs.PrintDefaults()
	}
	config.RegisterFlags(fs)

	// pflag prints parse errors itself; the caller reports the ExitError once.
	fs.SetOutput(io.Discard)
	err := fs.Parse(args)
	fs.SetOutput(output)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fs.Usage()
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	return cfg, false, nil
}
