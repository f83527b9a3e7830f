package books

import (
	"github.com/google/uuid"
)

// Book is the capability handed out by the factory functions.
//
// Name and Author never change after construction.
type Book interface {
	// ID returns the identity assigned at construction.
	ID() uuid.UUID

	Name() string
	Author() string

	// Type returns the localized type label, derived from the variant.
	Type() string

	// Read writes one line describing the reading of this book to the configured output.
	Read()

	describe() Description
}
