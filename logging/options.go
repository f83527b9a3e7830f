package logging

import (
	"io"
	"os"
)

type settings struct {
	out            io.Writer
	errOut         io.Writer
	creationNotice bool
}

func defaultSettings() settings {
	return settings{
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

// Option defines a functional option for configuring a ConsoleLogger.
type Option func(*settings)

// WithOutput sets the normal output channel which receives Info records.
// A nil writer keeps the default (os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.out = w
		}
	}
}

// WithErrorOutput sets the error output channel which receives Warn and Error records.
// A nil writer keeps the default (os.Stderr).
func WithErrorOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.errOut = w
		}
	}
}

// WithCreationNotice makes NewConsoleLogger announce the creation of the logger on the normal output channel.
func WithCreationNotice() Option {
	return func(s *settings) {
		s.creationNotice = true
	}
}
