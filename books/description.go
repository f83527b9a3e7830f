package books

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// Description is a DTO (data transfer object) exposing what a Book is made of, including its hidden variant.
//
// Type is informational, it is derived again when a Book is restored.
type Description struct {
	ID     uuid.UUID `json:"id"`
	Kind   Kind      `json:"kind"`
	Name   string    `json:"name"`
	Author string    `json:"author"`
	Format string    `json:"format,omitempty"`
	Type   string    `json:"type"`
}

// Describe returns the Description of a Book.
func Describe(b Book) Description {
	return b.describe()
}

// MarshalDescription encodes a Description as JSON.
func MarshalDescription(d Description) ([]byte, error) {
	return jsoniter.ConfigFastest.Marshal(d)
}

// RestoreBook decodes a JSON Description and rebuilds the Book it describes, keeping its ID.
//
// Returns ErrInvalidDescriptionJSON if data can't be decoded and ErrUnknownBookKind for unsupported kinds.
func RestoreBook(data []byte, options ...Option) (Book, error) {
	if !jsoniter.ConfigFastest.Valid(data) {
		return nil, ErrInvalidDescriptionJSON
	}

	var d Description

	if err := jsoniter.ConfigFastest.Unmarshal(data, &d); err != nil {
		return nil, errors.Join(ErrInvalidDescriptionJSON, err)
	}

	s := buildSettings(options)

	switch d.Kind {
	case KindBasic:
		return newBasicBook(d.ID, d.Name, d.Author, s), nil

	case KindEBook:
		return newEBook(d.ID, d.Name, d.Author, d.Format, s), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBookKind, d.Kind)
	}
}
