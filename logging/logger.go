// Package logging owns the process logger shared by the simulation packages.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process logger. It is usable before Init with logrus defaults.
var Log = logrus.New()

// Init configures Log. level is a logrus level name ("debug", "info", ...)
// and falls back to info when it does not parse. format "json" selects the
// JSON formatter; anything else selects text. A nil out writes to stdout.
func Init(level, format string, out io.Writer) {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if strings.EqualFold(strings.TrimSpace(format), "json") {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if out == nil {
		out = os.Stdout
	}
	Log.SetOutput(out)
}

// Entity returns an entry tagged with the entity id.
func Entity(id any) *logrus.Entry {
	return Log.WithField("entity", id)
}
