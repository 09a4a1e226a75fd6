// Package logger builds zap loggers for the command-line tools.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects the level and optional rotating log file.
type Config struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DefaultConfig logs info and above to the console only.
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		MaxSizeMB:  50,
		MaxBackups: 3,
		MaxAgeDays: 7,
	}
}

// New builds a logger writing to console and, if cfg.File is set, to a
// size-rotated file.
func New(cfg Config) *zap.Logger {
	return NewWithConsole(cfg, os.Stderr)
}

// NewWithConsole is New with an explicit console writer. A nil console
// disables console output.
func NewWithConsole(cfg Config, console io.Writer) *zap.Logger {
	lvl := ParseLevel(cfg.Level)
	var cores []zapcore.Core

	if console != nil {
		enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "time",
			LevelKey:         "level",
			MessageKey:       "msg",
			EncodeTime:       zapcore.TimeEncoderOfLayout("15:04:05"),
			EncodeLevel:      zapcore.CapitalLevelEncoder,
			ConsoleSeparator: " ",
		})
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(console), lvl))
	}

	if cfg.File != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			LocalTime:  true,
		}
		enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
			TimeKey:     "time",
			LevelKey:    "level",
			MessageKey:  "msg",
			EncodeTime:  zapcore.ISO8601TimeEncoder,
			EncodeLevel: zapcore.LowercaseLevelEncoder,
		})
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(fileWriter), lvl))
	}

	return zap.New(zapcore.NewTee(cores...))
}

// ParseLevel converts a level name; unknown names mean info.
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
