// Package log provides the logging interface used across the emulator
// core, backed by logrus.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

var _ Logger = (*logrus.Logger)(nil)

// New returns a logger writing plain text lines to stderr.
func New() Logger {
	return NewWithWriter(nil, false)
}

// NewWithWriter returns a logger writing to w (stderr when nil),
// optionally including debug output.
func NewWithWriter(w io.Writer, debug bool) Logger {
	l := logrus.New()
	if w != nil {
		l.SetOutput(w)
	}
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}
