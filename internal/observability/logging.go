// Package observability provides the process-wide loggers.
//
// CLI commands log through CLILogger so human-facing output on stdout
// stays separate from diagnostics on stderr.
package observability

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CLILogger is the logger for command-line entry points. It defaults to
// warn-level console output until Init applies the configured verbosity.
var CLILogger = newConsoleLogger(zapcore.WarnLevel)

// Init reconfigures the loggers for the given verbosity count:
// 0 = warn, 1 = info, 2+ = debug.
func Init(verbosity int) {
	level := zapcore.WarnLevel
	switch {
	case verbosity >= 2:
		level = zapcore.DebugLevel
	case verbosity == 1:
		level = zapcore.InfoLevel
	}
	CLILogger = newConsoleLogger(level)
}

func newConsoleLogger(level zapcore.Level) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// Sync flushes buffered log entries. Best effort on process exit.
func Sync() {
	_ = CLILogger.Sync()
}
