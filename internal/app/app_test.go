package app

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/percolate/internal/config"
	"github.com/katalvlaran/percolate/montecarlo"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_SingleSiteReport checks the exact report for a 1×1 grid.
func TestRun_SingleSiteReport(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	var out bytes.Buffer

	err := New(&out, logger).Run(&config.Config{N: 1, Trials: 5, Seed: 1, LogLevel: "warn", LogFormat: "text"})
	require.NoError(t, err)

	want := "mean                    = 1.0\n" +
		"stddev                  = 0.0\n" +
		"95% confidence interval = [1.0, 1.0]\n"
	assert.Equal(t, want, out.String())
}

// TestFormatDouble checks that whole values keep a fractional part.
func TestFormatDouble(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{0, "0.0"},
		{-2, "-2.0"},
		{0.5929375, "0.5929375"},
		{0.25, "0.25"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "+Inf"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatDouble(tc.in), "formatDouble(%v)", tc.in)
	}
}

// TestRun_ZeroSeedUsesClock verifies a zero seed is replaced by the clock and
// logged.
func TestRun_ZeroSeedUsesClock(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	var out bytes.Buffer
	a := New(&out, logger)
	a.now = func() time.Time { return time.Unix(0, 12345) }

	require.NoError(t, a.Run(&config.Config{N: 4, Trials: 3}))

	var start *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "starting simulation" {
			start = e
		}
	}
	require.NotNil(t, start)
	assert.Equal(t, int64(12345), start.Data["seed"])
	assert.Equal(t, 3, strings.Count(out.String(), "\n"))
}

// TestRun_Reproducible checks that equal seeds produce identical reports.
func TestRun_Reproducible(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	cfg := &config.Config{N: 10, Trials: 20, Seed: 77}

	var a, b bytes.Buffer
	require.NoError(t, New(&a, logger).Run(cfg))
	require.NoError(t, New(&b, logger).Run(cfg))
	assert.Equal(t, a.String(), b.String())
}

// TestRun_InvalidArgument surfaces the domain sentinel.
func TestRun_InvalidArgument(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	err := New(&bytes.Buffer{}, logger).Run(&config.Config{N: 0, Trials: 1, Seed: 1})
	assert.ErrorIs(t, err, montecarlo.ErrInvalidArgument)
}

// TestNewLogger covers level and format handling.
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger("debug", "json", &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger.WithField("k", "v").Debug("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"k":"v"`)

	_, err = NewLogger("loud", "text", &buf)
	assert.Error(t, err)
	_, err = NewLogger("info", "xml", &buf)
	assert.Error(t, err)
}
