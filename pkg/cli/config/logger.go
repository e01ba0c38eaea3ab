package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/materia/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Logger is the logging configuration shared by all commands.
type Logger struct {
	level  string
	format string
	output string
}

func (x *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level [debug, info, warn, error]",
			Category:    "Logging",
			Value:       "info",
			Sources:     cli.EnvVars("MATERIA_LOG_LEVEL"),
			Destination: &x.level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format [console, json]",
			Category:    "Logging",
			Value:       "console",
			Sources:     cli.EnvVars("MATERIA_LOG_FORMAT"),
			Destination: &x.format,
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log output destination [-, stdout, stderr, or file path]",
			Category:    "Logging",
			Value:       "-",
			Sources:     cli.EnvVars("MATERIA_LOG_OUTPUT"),
			Destination: &x.output,
		},
	}
}

// Configure builds the process logger from the flags and installs it as
// the default. The returned closer releases the log file if one was
// opened.
func (x *Logger) Configure() (func(), error) {
	level, err := x.logLevel()
	if err != nil {
		return nil, err
	}

	format, err := x.logFormat()
	if err != nil {
		return nil, err
	}

	closer := func() {}
	var w *os.File
	switch x.output {
	case "-", "stdout":
		w = os.Stdout
	case "stderr":
		w = os.Stderr
	default:
		f, err := os.OpenFile(x.output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, goerr.Wrap(ErrInvalidLogOutput, "failed to open log file",
				goerr.V(LogOutputKey, x.output),
			)
		}
		w = f
		closer = func() {
			_ = f.Close()
		}
	}

	logging.SetDefault(logging.New(w, level, format))
	return closer, nil
}

func (x *Logger) logLevel() (slog.Level, error) {
	switch strings.ToLower(x.level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, goerr.Wrap(ErrInvalidLogLevel, "unknown log level",
			goerr.V(LogLevelKey, x.level),
		)
	}
}

func (x *Logger) logFormat() (logging.Format, error) {
	switch strings.ToLower(x.format) {
	case "console":
		return logging.FormatConsole, nil
	case "json":
		return logging.FormatJSON, nil
	default:
		return 0, goerr.Wrap(ErrInvalidLogFormat, "unknown log format",
			goerr.V(LogFormatKey, x.format),
		)
	}
}

// LogValue renders the configuration in startup logs.
func (x Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", x.level),
		slog.String("format", x.format),
		slog.String("output", x.output),
	)
}
