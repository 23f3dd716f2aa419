package app

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/percolate/internal/config"
	"github.com/katalvlaran/percolate/montecarlo"
	"github.com/sirupsen/logrus"
)

// App runs simulations and writes reports. Logs go to the logger, the report
// goes to out; the two never mix.
type App struct {
	out    io.Writer
	logger *logrus.Logger
	now    func() time.Time
}

// New returns an App that reports to out and logs through logger.
func New(out io.Writer, logger *logrus.Logger) *App {
	return &App{out: out, logger: logger, now: time.Now}
}

// Run executes cfg.Trials trials on a cfg.N grid and prints:
//
//	mean                    = <mean>
//	stddev                  = <stddev>
//	95% confidence interval = [<lo>, <hi>]
//
// A zero cfg.Seed is replaced with a time-based one, logged at Info so the run
// can be repeated with --seed.
func (a *App) Run(cfg *config.Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = a.now().UnixNano()
	}
	a.logger.WithFields(logrus.Fields{
		"n":      cfg.N,
		"trials": cfg.Trials,
		"seed":   seed,
	}).Info("starting simulation")

	stats, err := montecarlo.NewStats(cfg.N, cfg.Trials,
		montecarlo.WithSeed(seed),
		montecarlo.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}

	return WriteReport(a.out, stats)
}

// WriteReport prints the mean, standard deviation and 95% confidence interval.
func WriteReport(w io.Writer, s *montecarlo.Stats) error {
	_, err := fmt.Fprintf(w,
		"mean                    = %s\nstddev                  = %s\n95%% confidence interval = [%s, %s]\n",
		formatDouble(s.Mean()), formatDouble(s.Stddev()),
		formatDouble(s.ConfidenceLo()), formatDouble(s.ConfidenceHi()),
	)

	return err
}

// formatDouble renders x in its shortest round-trip form, always with a
// fractional part: 1 prints as "1.0", 0.59 as "0.59".
func formatDouble(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	out := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}

	return out
}
