package utils

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	instance *Logger
	once     sync.Once
)

// Logger wraps a zerolog logger behind the levelled helpers the commands use.
type Logger struct {
	zl zerolog.Logger
}

// getDefaultLogFilePath returns the default log file path
func getDefaultLogFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}
	logDir := filepath.Join(homeDir, ".listlab")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Fatalf("Failed to create log directory: %v", err)
	}
	return filepath.Join(logDir, "listlab.log")
}

// NewLogger creates the process-wide logger (singleton). Every level is written
// to the log file; the console only gets debug messages in debug mode.
func NewLogger(logFilePath string, debugMode bool) *Logger {
	once.Do(func() {
		if logFilePath == "" {
			logFilePath = getDefaultLogFilePath()
		}

		file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}

		consoleLevel := zerolog.InfoLevel
		if debugMode {
			consoleLevel = zerolog.DebugLevel
		}
		console := zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}},
			Level:  consoleLevel,
		}

		instance = &Logger{
			zl: zerolog.New(zerolog.MultiLevelWriter(&console, file)).
				Level(zerolog.DebugLevel).
				With().
				Timestamp().
				Logger(),
		}
	})
	return instance
}

// NewLoggerTo builds a standalone logger writing to w. It does not touch the singleton.
func NewLoggerTo(w io.Writer, debugMode bool) *Logger {
	level := zerolog.InfoLevel
	if debugMode {
		level = zerolog.DebugLevel
	}
	return &Logger{zl: zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// GetLogger retrieves the singleton logger instance
func GetLogger() *Logger {
	if instance == nil {
		log.Fatalf("Logger has not been initialized. Call NewLogger() first.")
	}
	return instance
}

// Logging methods
func (l *Logger) Info(message string) {
	l.zl.Info().Msg(message)
}

func (l *Logger) Warn(message string) {
	l.zl.Warn().Msg(message)
}

func (l *Logger) Error(message string) {
	l.zl.Error().Msg(message)
}

func (l *Logger) Debug(message string) {
	l.zl.Debug().Msg(message)
}

// With returns a child logger that tags every message with key=value.
func (l *Logger) With(key, value string) *Logger {
	return &Logger{zl: l.zl.With().Str(key, value).Logger()}
}
