package books_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/object-creation-go/books"
)

func Test_CatalogEntryByName_StartsWithNameOnly(t *testing.T) {
	entry := books.CatalogEntryByName("Dune")

	assert.Equal(t, "Dune", entry.Name())
	assert.Empty(t, entry.Author())
	assert.Empty(t, entry.Publisher())
}

func Test_CatalogEntryByAuthor_StartsWithAuthorOnly(t *testing.T) {
	entry := books.CatalogEntryByAuthor("Herbert")

	assert.Empty(t, entry.Name())
	assert.Equal(t, "Herbert", entry.Author())
	assert.Empty(t, entry.Publisher())
}

func Test_CatalogEntry_Setters(t *testing.T) {
	entry := books.CatalogEntryByName("Dune")

	entry.SetAuthor("Herbert")
	entry.SetPublisher("Chilton Books")
	entry.SetName("Dune Messiah")

	assert.Equal(t, "Dune Messiah", entry.Name())
	assert.Equal(t, "Herbert", entry.Author())
	assert.Equal(t, "Chilton Books", entry.Publisher())
}
