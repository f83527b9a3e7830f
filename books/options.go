package books

import (
	"io"
	"os"

	"golang.org/x/text/language"

	"github.com/AntonStoeckl/object-creation-go/config"
)

type settings struct {
	out      io.Writer
	language language.Tag
}

func buildSettings(options []Option) settings {
	s := settings{
		out:      os.Stdout,
		language: config.DefaultLanguage(),
	}

	for _, option := range options {
		option(&s)
	}

	return s
}

// Option defines a functional option for the factory functions.
type Option func(*settings)

// WithOutput sets the writer that Read writes to. A nil writer keeps the default (os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.out = w
		}
	}
}

// WithLanguage sets the language of type labels and read lines.
// Tags without translations fall back to the closest supported language, ultimately config.DefaultLanguage().
func WithLanguage(tag language.Tag) Option {
	return func(s *settings) {
		s.language = tag
	}
}
