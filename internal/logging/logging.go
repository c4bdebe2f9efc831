// Package logging builds the logrus logger shared by every component.
package logging

import (
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultLevel keeps diagnostics out of the rendered grid unless asked for.
const DefaultLevel = "warn"

// New creates a text logger writing to out at the given level.
func New(level string, out io.Writer) (*logrus.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	return log, nil
}

// Session returns an entry tagged with a fresh session id.
func Session(log logrus.FieldLogger) *logrus.Entry {
	return log.WithField("session", uuid.NewString())
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
