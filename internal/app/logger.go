package app

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger creates a logrus.Logger writing to outW. It does not touch the
// package-level standard logger, so instances stay isolated.
// levelStr is any level logrus.ParseLevel accepts; formatStr is "text" or "json".
func NewLogger(levelStr, formatStr string, outW io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(outW)
	logger.SetLevel(level)
	switch formatStr {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("app: unknown log format %q", formatStr)
	}

	return logger, nil
}
