// SPDX-License-Identifier: MIT
// Package: lvlrand/internal/logging
//
// Package logging builds the go-kit loggers used by the lvlrand tools.
//
// Loggers are plain log.Logger values: leveled with go-kit's level package,
// timestamped in UTC and tagged with a module name. There is no global
// backend; each command builds its own logger from flags and hands it to
// the components it constructs (prng.WithLogger).
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*Level)(nil)
	_ pflag.Value = (*Format)(nil)
)

// Format is a logging format.
type Format uint

const (
	// FmtLogfmt is the "logfmt" logging format.
	FmtLogfmt Format = iota
	// FmtJSON is the JSON logging format.
	FmtJSON
)

// String returns the string representation of a Format.
func (f *Format) String() string {
	switch *f {
	case FmtLogfmt:
		return "logfmt"
	case FmtJSON:
		return "JSON"
	default:
		return fmt.Sprintf("Format(%d)", uint(*f))
	}
}

// Set sets the Format to the value specified by the provided string.
func (f *Format) Set(s string) error {
	switch strings.ToUpper(s) {
	case "LOGFMT":
		*f = FmtLogfmt
	case "JSON":
		*f = FmtJSON
	default:
		return fmt.Errorf("logging: invalid log format: '%s'", s)
	}

	return nil
}

// Type returns the list of supported Formats.
func (f *Format) Type() string {
	return "[logfmt,JSON]"
}

// Level is a log level.
type Level uint

const (
	// LevelDebug is the log level for debug messages.
	LevelDebug Level = iota
	// LevelInfo is the log level for informative messages.
	LevelInfo
	// LevelWarn is the log level for warning messages.
	LevelWarn
	// LevelError is the log level for error messages.
	LevelError
)

func (l Level) toOption() (level.Option, error) {
	switch l {
	case LevelDebug:
		return level.AllowDebug(), nil
	case LevelInfo:
		return level.AllowInfo(), nil
	case LevelWarn:
		return level.AllowWarn(), nil
	case LevelError:
		return level.AllowError(), nil
	default:
		return nil, fmt.Errorf("logging: unsupported log level: %d", uint(l))
	}
}

// String returns the string representation of a Level.
func (l *Level) String() string {
	switch *l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("Level(%d)", uint(*l))
	}
}

// Set sets the Level to the value specified by the provided string.
func (l *Level) Set(s string) error {
	switch strings.ToUpper(s) {
	case "DEBUG":
		*l = LevelDebug
	case "INFO":
		*l = LevelInfo
	case "WARN":
		*l = LevelWarn
	case "ERROR":
		*l = LevelError
	default:
		return fmt.Errorf("logging: invalid log level: '%s'", s)
	}

	return nil
}

// Type returns the list of supported Levels.
func (l *Level) Type() string {
	return "[DEBUG,INFO,WARN,ERROR]"
}

// New returns a logger writing to w in the given format, dropping records
// below lvl. A nil w yields a logger that discards everything.
func New(w io.Writer, format Format, lvl Level) (log.Logger, error) {
	allow, err := lvl.toOption()
	if err != nil {
		return nil, err
	}
	if w == nil {
		return log.NewNopLogger(), nil
	}

	var logger log.Logger
	w = log.NewSyncWriter(w)
	switch format {
	case FmtLogfmt:
		logger = log.NewLogfmtLogger(w)
	case FmtJSON:
		logger = log.NewJSONLogger(w)
	default:
		return nil, fmt.Errorf("logging: unsupported log format: %d", uint(format))
	}

	logger = level.NewFilter(logger, allow)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	return logger, nil
}

// Module tags logger with a module name and the call site.
func Module(logger log.Logger, module string) log.Logger {
	return log.With(logger, "module", module, "caller", log.DefaultCaller)
}
