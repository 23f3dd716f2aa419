package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/percolate/internal/app"
	"github.com/katalvlaran/percolate/internal/cli"
	"github.com/katalvlaran/percolate/montecarlo"
)

// main is the entrypoint for the percolate command.
func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:]))
}

// run encapsulates the command so it can be tested without exiting the
// process. It returns the exit code.
func run(stdout, stderr io.Writer, args []string) int {
	cfg, shouldExit, err := cli.Parse(args, stderr)
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(stderr, exitErr.Message)
			return exitErr.Code
		}
		fmt.Fprintln(stderr, err)
		return cli.ExitFailure
	}
	if shouldExit {
		return cli.ExitOK
	}

	logger, err := app.NewLogger(cfg.LogLevel, cfg.LogFormat, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return cli.ExitUsage
	}

	if err := app.New(stdout, logger).Run(cfg); err != nil {
		logger.WithError(err).Error("simulation failed")
		if errors.Is(err, montecarlo.ErrInvalidArgument) {
			return cli.ExitUsage
		}
		return cli.ExitFailure
	}

	return cli.ExitOK
}
