package grapple

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("plugin", "grapple")

// ConfigureLogging applies the configured level and format to l, points it at
// out when out is non-nil, and makes it the package logger.
func ConfigureLogging(l *logrus.Logger, cfg Config, out io.Writer) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	var formatter logrus.Formatter
	switch cfg.LogFormat {
	case "", "text":
		formatter = &logrus.TextFormatter{FullTimestamp: true}
	case "json":
		formatter = &logrus.JSONFormatter{}
	default:
		return fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}

	l.SetLevel(level)
	l.SetFormatter(formatter)
	if out != nil {
		l.SetOutput(out)
	}
	SetLogger(l)
	return nil
}

// SetLogger replaces the package logger.
func SetLogger(l *logrus.Logger) {
	log = l.WithField("plugin", "grapple")
}
