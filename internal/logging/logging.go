// Package logging builds the zap logger shared by the CLI and the control server.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Key constants for structured log fields.
const (
	KeyComponent = "component"
	KeyRemote    = "remote"
)

// New returns a logger writing to stderr.
// format: "json" or "console"; level: "debug", "info", "warn", "error".
func New(level, format string) (*zap.Logger, error) {
	return NewWithWriter(level, format, os.Stderr)
}

// NewWithWriter returns a logger writing to w.
func NewWithWriter(level, format string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	var encoder zapcore.Encoder
	switch format {
	case "json":
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(cfg)
	case "console", "":
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		encoder = zapcore.NewConsoleEncoder(cfg)
	default:
		return nil, fmt.Errorf("log format %q: must be console or json", format)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))
	return zap.New(core), nil
}

// Component returns a child logger tagged with a component name.
func Component(logger *zap.Logger, name string) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger.With(zap.String(KeyComponent, name))
}
