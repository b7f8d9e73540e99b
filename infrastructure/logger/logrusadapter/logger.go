// ABOUTME: Logger implementation backed by logrus with structured JSON fields
// ABOUTME: Adapts logrus to the core Logger interface

package logrusadapter

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger implements the core Logger interface using logrus
type Logger struct {
	log *logrus.Logger
}

// Options configures the logrus adapter
type Options struct {
	// Level is the minimum level to emit: debug, info, warn or error
	Level string

	// JSONFormat emits JSON lines instead of the text formatter
	JSONFormat bool
}

// NewLogger creates a new logrus-backed logger
func NewLogger(opts Options) *Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if opts.JSONFormat {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return &Logger{log: log}
}

// Debug logs a debug message with structured fields
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message with structured fields
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message with structured fields
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message with structured fields
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
