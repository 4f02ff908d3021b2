package logging

import (
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	cblog "github.com/charmbracelet/log"
)

// SetupLogging configures the default logger.
// If filename is empty, logging is disabled.
// If filename is set, records go to that file at debug level, and the
// standard library logger used by Bubble Tea is routed there as well.
func SetupLogging(filename string) (cleanup func(), err error) {
	if filename == "" {
		cblog.SetDefault(newLogger(io.Discard))
		stdlog.SetOutput(io.Discard)
		return func() {}, nil
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	logger := newLogger(f)
	cblog.SetDefault(logger)
	stdlog.SetFlags(0)
	stdlog.SetOutput(logger.StandardLog().Writer())

	return func() { f.Close() }, nil
}

func newLogger(w io.Writer) *cblog.Logger {
	return cblog.NewWithOptions(w, cblog.Options{
		Prefix:          "coinmind",
		Level:           cblog.DebugLevel,
		ReportTimestamp: true,
		ReportCaller:    true,
	})
}
