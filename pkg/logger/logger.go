// Package logger provides a logging utility based on log/slog
//
// The logger starts at Info level. Setup applies a config.Config, so DEBUG
// logging follows the MCP_DEBUG variable read by package config:
//
//	export MCP_DEBUG=1
//
// Records always go to stderr; stdout carries the MCP stdio transport.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sunfmin/mcp-go-calculator/pkg/config"
)

var (
	// Logger is the global logger instance
	Logger *slog.Logger
)

func init() {
	Logger = New(os.Stderr, false)
	slog.SetDefault(Logger)
}

// New creates a text logger writing to w at Info level, or Debug level when
// debug is true.
func New(w io.Writer, debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Setup replaces the global logger according to cfg. When cfg.LogFile is
// set, records are written to both stderr and that file; the returned
// function closes the file.
func Setup(cfg *config.Config) (func() error, error) {
	var out io.Writer = os.Stderr
	closer := func() error { return nil }

	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return closer, fmt.Errorf("failed to open log file %s: %w", cfg.LogFile, err)
		}
		out = io.MultiWriter(os.Stderr, logFile)
		closer = logFile.Close
	}

	Logger = New(out, bool(cfg.Debug))
	slog.SetDefault(Logger)
	return closer, nil
}

// Debug logs a debug message if debug logging is enabled
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}
