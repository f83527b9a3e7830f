// Package books demonstrates construction through static factory functions.
//
// The exported surface is the Book capability and the factory functions returning it.
// The concrete variants (a basic book and an e-book) are unexported, so client code can neither
// construct them directly nor depend on which variant it received:
//
//	dune := books.CreateBasicBook("Dune", "Frank Herbert")
//	manual := books.CreateEBook("Go in Practice", "Butcher, Farina", "PDF")
//
//	dune.Read()   // general book 'Dune' read
//	manual.Read() // e-book (PDF) 'Go in Practice' read
//
// Book is sealed: it contains an unexported method, so only this package can implement it.
//
// Type labels and read lines are localized with golang.org/x/text, see WithLanguage.
// Books can be described and restored as JSON, restoring goes through the same factories.
//
// CatalogEntry shows the other flavor of the idiom: a concrete type whose fields are unexported
// and whose only constructors are named factories (CatalogEntryByName, CatalogEntryByAuthor).
package books
