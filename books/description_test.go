package books_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/AntonStoeckl/object-creation-go/books"
)

func Test_Describe_ExposesKindAndFormat(t *testing.T) {
	basic := books.Describe(books.CreateBasicBook("Dune", "Herbert"))
	ebook := books.Describe(books.CreateEBook("Dune", "Herbert", "PDF"))

	assert.Equal(t, books.KindBasic, basic.Kind)
	assert.Empty(t, basic.Format)
	assert.Equal(t, "general book", basic.Type)

	assert.Equal(t, books.KindEBook, ebook.Kind)
	assert.Equal(t, "PDF", ebook.Format)
	assert.Equal(t, "e-book (PDF)", ebook.Type)
}

func Test_RestoreBook_RebuildsDescribedBook(t *testing.T) {
	originals := []books.Book{
		books.CreateBasicBook("Dune", "Herbert"),
		books.CreateEBook("Dune", "Herbert", "PDF"),
	}

	for _, original := range originals {
		t.Run(original.Type(), func(t *testing.T) {
			data, err := books.MarshalDescription(books.Describe(original))
			require.NoError(t, err)

			restored, err := books.RestoreBook(data)
			require.NoError(t, err)

			assert.Equal(t, original.ID(), restored.ID())
			assert.Equal(t, original.Name(), restored.Name())
			assert.Equal(t, original.Author(), restored.Author())
			assert.Equal(t, original.Type(), restored.Type())
			assert.Equal(t, books.Describe(original), books.Describe(restored))
		})
	}
}

func Test_RestoreBook_AppliesOptions(t *testing.T) {
	var out bytes.Buffer

	data, err := books.MarshalDescription(books.Describe(books.CreateEBook("Dune", "Herbert", "EPUB")))
	require.NoError(t, err)

	restored, err := books.RestoreBook(data, books.WithOutput(&out), books.WithLanguage(language.Korean))
	require.NoError(t, err)

	restored.Read()

	assert.Equal(t, "전자책 (EPUB) 'Dune'를 읽습니다.\n", out.String())
}

func Test_RestoreBook_ErrorCases(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		expectedErr error
	}{
		{
			name:        "malformed json",
			data:        []byte(`{"kind": basic}`),
			expectedErr: books.ErrInvalidDescriptionJSON,
		},
		{
			name:        "empty input",
			data:        []byte(``),
			expectedErr: books.ErrInvalidDescriptionJSON,
		},
		{
			name:        "unknown kind",
			data:        []byte(`{"kind": "audiobook", "name": "Dune", "author": "Herbert"}`),
			expectedErr: books.ErrUnknownBookKind,
		},
		{
			name:        "missing kind",
			data:        []byte(`{"name": "Dune", "author": "Herbert"}`),
			expectedErr: books.ErrUnknownBookKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book, err := books.RestoreBook(tt.data)

			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, book)
		})
	}
}
