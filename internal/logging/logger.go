// Package logging holds the logger used by the ckminer command.  The
// candkey library itself never logs.
package logging

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger.  It writes to stderr so that it never mixes
// with results written to stdout.
var L = clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "ckminer"})

// Configure replaces L with a logger writing to w at the named level
// ("debug", "info", "warn" or "error") using the named format ("text",
// "json" or "logfmt").
func Configure(w io.Writer, level, format string) error {
	lvl, err := clog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	var f clog.Formatter
	switch format {
	case "", "text":
		f = clog.TextFormatter
	case "json":
		f = clog.JSONFormatter
	case "logfmt":
		f = clog.LogfmtFormatter
	default:
		return fmt.Errorf("logging: unknown format %q", format)
	}
	L = clog.NewWithOptions(w, clog.Options{Prefix: "ckminer", Level: lvl, Formatter: f})
	return nil
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}
