// Package logging builds the application's logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// serilogLevels maps level names from older deployments onto logrus levels.
var serilogLevels = map[string]logrus.Level{
	"verbose":     logrus.TraceLevel,
	"information": logrus.InfoLevel,
}

// ParseLevel accepts logrus level names plus the Serilog names Verbose,
// Debug, Information, Warning, Error and Fatal, case-insensitively.
func ParseLevel(level string) (logrus.Level, error) {
	if lvl, ok := serilogLevels[strings.ToLower(strings.TrimSpace(level))]; ok {
		return lvl, nil
	}
	return logrus.ParseLevel(strings.TrimSpace(level))
}

// New returns a logger writing to stdout and, when file is non-empty, to
// that file as well. An unparseable level is an error; callers treat it as
// fatal.
func New(level, format, file string) (*logrus.Logger, io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %q", level)
	}

	log := logrus.New()
	log.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, nil, fmt.Errorf("invalid log format: %q", format)
	}

	var closer io.Closer = io.NopCloser(nil)
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(io.MultiWriter(os.Stdout, f))
		closer = f
	} else {
		log.SetOutput(os.Stdout)
	}

	return log, closer, nil
}
