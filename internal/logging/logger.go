// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// defaultLogger is the package-level default logger instance.
//
//nolint:gochecknoglobals // Package-level logger is intentional for convenience
var (
	defaultLogger     *log.Logger
	defaultLoggerOnce sync.Once
)

func getDefaultLogger() *log.Logger {
	defaultLoggerOnce.Do(func() {
		defaultLogger = New("info")
	})
	return defaultLogger
}

// New creates a new logger writing to stderr with the specified level.
// Valid levels: "debug", "info", "warn", "error".
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a logger writing to w with the specified level.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})

	setLoggerLevel(logger, level)

	return logger
}

// NewInteractive creates a logger writing to w with short, colored level
// labels for terminal feedback.
func NewInteractive(w io.Writer, level string) *log.Logger {
	logger := NewWithWriter(w, level)

	styles := log.DefaultStyles()
	styles.Levels[log.DebugLevel] = levelStyle("debug", "63")
	styles.Levels[log.InfoLevel] = levelStyle("info", "86")
	styles.Levels[log.WarnLevel] = levelStyle("warn", "192")
	styles.Levels[log.ErrorLevel] = levelStyle("error", "204")
	logger.SetStyles(styles)

	return logger
}

func levelStyle(label, color string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(label).
		Bold(true).
		Foreground(lipgloss.Color(color))
}

func setLoggerLevel(logger *log.Logger, level string) {
	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn", "warning":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

// Default returns the package-level default logger.
func Default() *log.Logger {
	return getDefaultLogger()
}

// SetDefault sets the package-level default logger.
func SetDefault(logger *log.Logger) {
	// Consume the lazy initializer so it cannot replace logger later.
	defaultLoggerOnce.Do(func() {})
	defaultLogger = logger
}

// SetLevel updates the log level of the default logger.
func SetLevel(level string) {
	setLoggerLevel(getDefaultLogger(), level)
}
