package books

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Factory_HidesVariants(t *testing.T) {
	assert.IsType(t, &basicBook{}, CreateBasicBook("Dune", "Herbert"))
	assert.IsType(t, &eBook{}, CreateEBook("Dune", "Herbert", "PDF"))
}

func Test_MustBuildCatalog_CoversEveryKeyPerLanguage(t *testing.T) {
	keys := []string{basicBookLabelKey, eBookLabelKey, readLineKey}

	for tag, messages := range translations {
		for _, key := range keys {
			assert.Contains(t, messages, key, "missing %q for %s", key, tag)
		}
	}

	assert.NotPanics(t, func() { mustBuildCatalog() })
}
