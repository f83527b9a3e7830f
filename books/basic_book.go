package books

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"golang.org/x/text/message"
)

// basicBook is not exported, it is only reachable through CreateBasicBook.
type basicBook struct {
	id      uuid.UUID
	name    string
	author  string
	out     io.Writer
	printer *message.Printer
}

func newBasicBook(id uuid.UUID, name string, author string, s settings) *basicBook {
	return &basicBook{
		id:      id,
		name:    name,
		author:  author,
		out:     s.out,
		printer: newPrinter(s.language),
	}
}

func (b *basicBook) ID() uuid.UUID {
	return b.id
}

func (b *basicBook) Name() string {
	return b.name
}

func (b *basicBook) Author() string {
	return b.author
}

func (b *basicBook) Type() string {
	return b.printer.Sprintf(basicBookLabelKey)
}

func (b *basicBook) Read() {
	_, _ = fmt.Fprintln(b.out, b.printer.Sprintf(readLineKey, b.Type(), b.name))
}

func (b *basicBook) describe() Description {
	return Description{
		ID:     b.id,
		Kind:   KindBasic,
		Name:   b.name,
		Author: b.author,
		Type:   b.Type(),
	}
}
