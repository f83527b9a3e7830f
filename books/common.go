package books

import (
	"errors"
)

var ErrInvalidDescriptionJSON = errors.New("book description json is not valid")
var ErrUnknownBookKind = errors.New("unknown book kind")

// Kind identifies the hidden variant behind a Book in its Description.
type Kind string

const (
	KindBasic Kind = "basic"
	KindEBook Kind = "ebook"
)
