package books

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"golang.org/x/text/message"
)

// eBook is not exported, it is only reachable through CreateEBook.
type eBook struct {
	id      uuid.UUID
	name    string
	author  string
	format  string // e.g. PDF, EPUB
	out     io.Writer
	printer *message.Printer
}

func newEBook(id uuid.UUID, name string, author string, format string, s settings) *eBook {
	return &eBook{
		id:      id,
		name:    name,
		author:  author,
		format:  format,
		out:     s.out,
		printer: newPrinter(s.language),
	}
}

func (b *eBook) ID() uuid.UUID {
	return b.id
}

func (b *eBook) Name() string {
	return b.name
}

func (b *eBook) Author() string {
	return b.author
}

func (b *eBook) Type() string {
	return b.printer.Sprintf(eBookLabelKey, b.format)
}

func (b *eBook) Read() {
	_, _ = fmt.Fprintln(b.out, b.printer.Sprintf(readLineKey, b.Type(), b.name))
}

func (b *eBook) describe() Description {
	return Description{
		ID:     b.id,
		Kind:   KindEBook,
		Name:   b.name,
		Author: b.author,
		Format: b.format,
		Type:   b.Type(),
	}
}
