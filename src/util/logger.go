package util

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"doc-quality/src/config"
)

// Logger provides levelled, printf-style logging on top of charmbracelet/log.
// Its methods and the package-level helpers mark themselves as log helpers, so
// the reported caller is the code that called into this package.
type Logger struct {
	base *log.Logger
	file *os.File
}

// NewLogger creates a new logger from config
func NewLogger(cfg config.LoggingConfig) *Logger {
	return newLogger(cfg, nil)
}

// NewLoggerTo creates a logger writing to w, ignoring cfg.File
func NewLoggerTo(w io.Writer, cfg config.LoggingConfig) *Logger {
	return newLogger(cfg, w)
}

func newLogger(cfg config.LoggingConfig, output io.Writer) *Logger {
	level, err := log.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = log.InfoLevel
	}

	var file *os.File
	if output == nil {
		output = os.Stderr
		if cfg.File != "" {
			if f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
				output = f
				file = f
			}
		}
	}

	formatter := log.TextFormatter
	if cfg.Format == "json" {
		formatter = log.JSONFormatter
	}

	return &Logger{
		base: log.NewWithOptions(output, log.Options{
			Level:           level,
			ReportTimestamp: cfg.IncludeTimestamp,
			TimeFormat:      "2006-01-02 15:04:05",
			ReportCaller:    cfg.IncludeCaller,
			Formatter:       formatter,
		}),
		file: file,
	}
}

// Close releases the log file, if the logger opened one
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) {
	l.base.Helper()
	l.base.Debugf(msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) {
	l.base.Helper()
	l.base.Infof(msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) {
	l.base.Helper()
	l.base.Warnf(msg, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) {
	l.base.Helper()
	l.base.Errorf(msg, args...)
}

// GetLevel returns the current log level as a string
func (l *Logger) GetLevel() string {
	return l.base.GetLevel().String()
}

// DefaultLogger is the package-level default logger
var DefaultLogger = NewLogger(config.LoggingConfig{
	Level:            "info",
	IncludeTimestamp: true,
})

// SetDefaultLogger replaces the default logger, closing the log file of the old one
func SetDefaultLogger(cfg config.LoggingConfig) {
	previous := DefaultLogger
	DefaultLogger = NewLogger(cfg)
	_ = previous.Close()
}

// Debug logs using the default logger
func Debug(msg string, args ...any) {
	DefaultLogger.base.Helper()
	DefaultLogger.Debug(msg, args...)
}

// Info logs using the default logger
func Info(msg string, args ...any) {
	DefaultLogger.base.Helper()
	DefaultLogger.Info(msg, args...)
}

// Warn logs using the default logger
func Warn(msg string, args ...any) {
	DefaultLogger.base.Helper()
	DefaultLogger.Warn(msg, args...)
}

// Error logs using the default logger
func Error(msg string, args ...any) {
	DefaultLogger.base.Helper()
	DefaultLogger.Error(msg, args...)
}
