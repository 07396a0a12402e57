// Package log builds the logrus loggers used by the pathviz binaries.
package log

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// ParseLevel maps a level name (any case) to a logrus level. Unknown names
// fall back to Info.
func ParseLevel(s string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(s))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// New returns a text logger writing to out at the given level.
func New(out io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	return l
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Component tags entries with the emitting component.
func Component(l logrus.FieldLogger, name string) logrus.FieldLogger {
	return l.WithField("component", name)
}
