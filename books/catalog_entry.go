package books

// CatalogEntry is a catalog record whose fields are unexported.
//
// Its only constructors are the named factories CatalogEntryByName and CatalogEntryByAuthor;
// the names tell which field a new entry starts with, which a bare struct literal could not.
// Other packages can embed *CatalogEntry, but they can't populate an entry in any other way.
type CatalogEntry struct {
	name      string
	author    string
	publisher string
}

// CatalogEntryByName is a factory method for a CatalogEntry known by its name only.
func CatalogEntryByName(name string) *CatalogEntry {
	return &CatalogEntry{name: name}
}

// CatalogEntryByAuthor is a factory method for a CatalogEntry known by its author only.
func CatalogEntryByAuthor(author string) *CatalogEntry {
	return &CatalogEntry{author: author}
}

func (e *CatalogEntry) Name() string {
	return e.name
}

func (e *CatalogEntry) Author() string {
	return e.author
}

func (e *CatalogEntry) Publisher() string {
	return e.publisher
}

func (e *CatalogEntry) SetName(name string) {
	e.name = name
}

func (e *CatalogEntry) SetAuthor(author string) {
	e.author = author
}

func (e *CatalogEntry) SetPublisher(publisher string) {
	e.publisher = publisher
}
