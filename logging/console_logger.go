package logging

import (
	"fmt"
	"log/slog"
	"sync"
)

var _ Logger = (*ConsoleLogger)(nil)

// ConsoleLogger is a named Logger writing to two output channels.
//
// It should only be constructed with NewConsoleLogger.
type ConsoleLogger struct {
	name   string
	out    *slog.Logger
	errOut *slog.Logger
}

// NewConsoleLogger is a factory method for ConsoleLogger.
//
// Construction cannot fail. With WithCreationNotice the new logger announces itself on the normal output channel.
func NewConsoleLogger(name string, options ...Option) *ConsoleLogger {
	s := defaultSettings()
	for _, option := range options {
		option(&s)
	}

	mu := &sync.Mutex{}

	logger := &ConsoleLogger{
		name:   name,
		out:    slog.New(newBracketHandler(s.out, name, slog.LevelInfo, mu)),
		errOut: slog.New(newBracketHandler(s.errOut, name, slog.LevelWarn, mu)),
	}

	if s.creationNotice {
		_, _ = fmt.Fprintf(s.out, "%s: console logger created\n", name)
	}

	return logger
}

// Name returns the name tag used as the prefix of every line.
func (l *ConsoleLogger) Name() string {
	return l.name
}

// Info writes an INFO line to the normal output channel.
func (l *ConsoleLogger) Info(msg string, args ...any) {
	l.out.Info(msg, args...)
}

// Warn writes a WARN line to the error output channel.
func (l *ConsoleLogger) Warn(msg string, args ...any) {
	l.errOut.Warn(msg, args...)
}

// Error writes an ERROR line to the error output channel.
func (l *ConsoleLogger) Error(msg string, args ...any) {
	l.errOut.Error(msg, args...)
}
