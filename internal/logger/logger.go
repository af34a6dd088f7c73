package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// LevelFromEnv reads LOG_LEVEL, falling back to DEBUG=1 and then info.
func LevelFromEnv() zerolog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		if os.Getenv("DEBUG") == "1" {
			return zerolog.DebugLevel
		}
		return zerolog.InfoLevel
	}
}

// FromEnv builds the process logger: console output unless LOSNOT_JSON_LOGS is set.
func FromEnv() Logger {
	level := LevelFromEnv()
	if os.Getenv("LOSNOT_JSON_LOGS") == "true" {
		return NewZerolog(os.Stderr, level)
	}
	return NewConsoleLogger(level)
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

func (n NoOpLogger) Debug(component, message string, fields map[string]interface{})   {}
func (n NoOpLogger) Info(component, message string, fields map[string]interface{})    {}
func (n NoOpLogger) Warning(component, message string, fields map[string]interface{}) {}
func (n NoOpLogger) Error(component string, err error, fields map[string]interface{}) {}
