package config

import (
	"golang.org/x/text/language"
)

// DefaultLoggerName returns the name tag of the process-wide singleton logger.
func DefaultLoggerName() string {
	return "cmder"
}

// DefaultLanguage returns the language used for book type labels and read lines.
func DefaultLanguage() language.Tag {
	return language.English
}

// SupportedLanguages returns the languages with translated book texts.
// The first entry is the fallback for unsupported tags.
func SupportedLanguages() []language.Tag {
	return []language.Tag{
		language.English,
		language.Korean,
	}
}
