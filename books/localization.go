package books

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/AntonStoeckl/object-creation-go/config"
)

// Message keys, they double as the English translations.
const (
	basicBookLabelKey = "general book"
	eBookLabelKey     = "e-book (%s)"
	readLineKey       = "%s '%s' read"
)

var translations = map[language.Tag]map[string]string{
	language.English: {
		basicBookLabelKey: "general book",
		eBookLabelKey:     "e-book (%s)",
		readLineKey:       "%s '%s' read",
	},
	language.Korean: {
		basicBookLabelKey: "일반 도서",
		eBookLabelKey:     "전자책 (%s)",
		readLineKey:       "%s '%s'를 읽습니다.",
	},
}

var (
	textCatalog     = mustBuildCatalog()
	languageMatcher = language.NewMatcher(config.SupportedLanguages())
)

func mustBuildCatalog() *catalog.Builder {
	builder := catalog.NewBuilder(catalog.Fallback(config.DefaultLanguage()))

	for tag, messages := range translations {
		for key, msg := range messages {
			if err := builder.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}

	return builder
}

// newPrinter returns a printer for the supported language closest to tag.
func newPrinter(tag language.Tag) *message.Printer {
	_, index, _ := languageMatcher.Match(tag)

	return message.NewPrinter(config.SupportedLanguages()[index], message.Catalog(textCatalog))
}
