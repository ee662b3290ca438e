// Package debug builds the loggers used across clap-info.
package debug

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	// LogLevelTrace reports every skipped entry inside a probe.
	LogLevelTrace LogLevel = iota
	// LogLevelDebug is for skipped directories and load failures.
	LogLevelDebug
	// LogLevelInfo is for general informational messages.
	LogLevelInfo
	// LogLevelWarn is for recoverable plugin misbehaviour.
	LogLevelWarn
	// LogLevelError is for errors surfaced to the user.
	LogLevelError
	// LogLevelOff disables all logging.
	LogLevelOff
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = LogLevelWarn

// Name is the root logger name.
const Name = "clap-info"

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelTrace:
		return "trace"
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	case LogLevelOff:
		return "off"
	default:
		return "unknown"
	}
}

// ParseLevel parses a level name. The empty string yields DefaultLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultLevel, nil
	case "trace":
		return LogLevelTrace, nil
	case "debug":
		return LogLevelDebug, nil
	case "info":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	case "off", "none":
		return LogLevelOff, nil
	default:
		return DefaultLevel, fmt.Errorf("unknown log level %q", s)
	}
}

func (l LogLevel) hclog() hclog.Level {
	switch l {
	case LogLevelTrace:
		return hclog.Trace
	case LogLevelDebug:
		return hclog.Debug
	case LogLevelInfo:
		return hclog.Info
	case LogLevelError:
		return hclog.Error
	case LogLevelOff:
		return hclog.Off
	default:
		return hclog.Warn
	}
}

// Options configures New.
type Options struct {
	Level  LogLevel
	Output io.Writer
	JSON   bool
}

// New returns a logger named clap-info. Output defaults to stderr and
// LogLevelOff returns a null logger.
func New(opts Options) hclog.Logger {
	if opts.Level == LogLevelOff {
		return hclog.NewNullLogger()
	}
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       Name,
		Level:      opts.Level.hclog(),
		Output:     output,
		JSONFormat: opts.JSON,
	})
}

// OrNull returns logger, or a null logger when logger is nil.
func OrNull(logger hclog.Logger) hclog.Logger {
	if logger == nil {
		return hclog.NewNullLogger()
	}
	return logger
}
