package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogFileEnvVar names a file that receives log output instead of stderr.
const LogFileEnvVar = "GGLOG"

var Log = logrus.New()

// InitLogger configures Log for a single invocation. Verbosity 0 keeps the logger quiet so the
// diagnostic stream carries only the location line and at most one error line.
// The returned func closes the log file, if one was opened.
func InitLogger(verbosity int, stderr io.Writer) (func(), error) {
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	out := stderr
	closeLog := func() {}
	if path := os.Getenv(LogFileEnvVar); path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return closeLog, fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		out = file
		closeLog = func() {
			Log.SetOutput(io.Discard)
			_ = file.Close()
		}
	}

	switch {
	case verbosity >= 2:
		Log.SetOutput(out)
		Log.SetLevel(logrus.TraceLevel)
		Log.Traceln("Trace logging enabled")
	case verbosity == 1:
		Log.SetOutput(out)
		Log.SetLevel(logrus.DebugLevel)
		Log.Debugln("Verbose (debug) logging enabled")
	default:
		if out == stderr {
			out = io.Discard
		}
		Log.SetOutput(out)
		Log.SetLevel(logrus.WarnLevel)
	}
	return closeLog, nil
}
