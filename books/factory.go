package books

import (
	"github.com/google/uuid"
)

// CreateBasicBook is a factory method for a printed, general book.
//
// The concrete type behind the returned Book is not part of the API. Construction cannot fail.
func CreateBasicBook(title string, author string, options ...Option) Book {
	return newBasicBook(uuid.New(), title, author, buildSettings(options))
}

// CreateEBook is a factory method for an electronic book in the given format (e.g. PDF).
//
// The format becomes part of the type label. Construction cannot fail.
func CreateEBook(title string, author string, format string, options ...Option) Book {
	return newEBook(uuid.New(), title, author, format, buildSettings(options))
}
