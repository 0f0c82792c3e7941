// Package logger provides the structured logging interface shared by the
// validator components and a logrus-backed implementation for the CLI.
package logger

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value interface{}
}

// Logger defines the structured logging interface used across the validator.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
}

// NoOpLogger discards all log messages. It is the default for every component.
type NoOpLogger struct{}

func (NoOpLogger) Debug(msg string, fields ...Field) {}

func (NoOpLogger) Info(msg string, fields ...Field) {}

func (NoOpLogger) Warn(msg string, fields ...Field) {}

func (NoOpLogger) Error(msg string, err error, fields ...Field) {}

// LogrusLogger adapts a logrus entry to Logger.
type LogrusLogger struct {
	entry *logrus.Entry
}

// New creates a text-formatted logger writing to w. Verbose enables debug
// output; otherwise only warnings and errors are emitted.
func New(w io.Writer, verbose bool) *LogrusLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.Formatter = &logrus.TextFormatter{
		TimestampFormat: time.RFC3339Nano,
		FullTimestamp:   true,
	}
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.WarnLevel)
	}
	return &LogrusLogger{entry: logrus.NewEntry(l)}
}

func (l *LogrusLogger) with(fields []Field) *logrus.Entry {
	if len(fields) == 0 {
		return l.entry
	}
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return l.entry.WithFields(lf)
}

func (l *LogrusLogger) Debug(msg string, fields ...Field) {
	l.with(fields).Debug(msg)
}

func (l *LogrusLogger) Info(msg string, fields ...Field) {
	l.with(fields).Info(msg)
}

func (l *LogrusLogger) Warn(msg string, fields ...Field) {
	l.with(fields).Warn(msg)
}

func (l *LogrusLogger) Error(msg string, err error, fields ...Field) {
	l.with(fields).WithError(err).Error(msg)
}
