package main

import (
	"errors"
	"fmt"
	"log"

	"golang.org/x/text/language"

	"github.com/AntonStoeckl/object-creation-go/books"
	"github.com/AntonStoeckl/object-creation-go/logging"
	"github.com/AntonStoeckl/object-creation-go/singleton"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}
}

func run() error {
	section("Static factory methods")

	dune := books.CreateBasicBook("Dune", "Frank Herbert")
	manual := books.CreateEBook("Effective Java", "Joshua Bloch", "PDF")
	koreanManual := books.CreateEBook("이펙티브 자바", "조슈아 블로크", "EPUB", books.WithLanguage(language.Korean))

	for _, book := range []books.Book{dune, manual, koreanManual} {
		book.Read()
	}

	data, err := books.MarshalDescription(books.Describe(manual))
	if err != nil {
		return fmt.Errorf("describing %q failed: %w", manual.Name(), err)
	}

	fmt.Println(string(data))

	restored, err := books.RestoreBook(data)
	if err != nil {
		return fmt.Errorf("restoring %q failed: %w", manual.Name(), err)
	}

	fmt.Printf("%s restored %s with the same id\n", statusIcon(restored.ID() == manual.ID()), restored.Type())

	entry := books.CatalogEntryByAuthor("Joshua Bloch")
	entry.SetName("Effective Java")
	entry.SetPublisher("Addison-Wesley")
	fmt.Printf("catalog entry: %s by %s (%s)\n", entry.Name(), entry.Author(), entry.Publisher())

	section("Eager singleton")

	holder := singleton.Instance()
	holder.LogInfo("info")
	holder.LogWarn("warn")
	holder.LogError("error")
	fmt.Printf("%s both references point to the same holder\n", statusIcon(holder == singleton.Instance()))

	section("Faulty lazy singleton")

	if _, err = singleton.GetStaticInstance(); err != nil {
		return err
	}

	_, err = singleton.GetStaticInstance()
	fmt.Printf("%s second access: %v\n", statusIcon(errors.Is(err, singleton.ErrAlreadyInitialized)), err)

	section("Safe lazy singleton")

	audit := singleton.NewLazy(func() *logging.ConsoleLogger {
		return logging.NewConsoleLogger("audit", logging.WithCreationNotice())
	})

	audit.Get().Info("first access builds the logger")
	audit.Get().Info("second access reuses it")

	return nil
}

func section(title string) {
	fmt.Println()
	fmt.Println(header(title))
	fmt.Println(separator(len(title)))
}
