package extract

import (
	"strings"

	"github.com/shashankg86/catalog-extractor/constants"
	"github.com/shashankg86/catalog-extractor/internal/entity"
)

// Classify assigns the first category whose keyword appears in the lowercased
// name, in table order, or General when none does. Pure lookup, no state.
func Classify(name string, table []constants.CategoryKeywords) string {
	lower := strings.ToLower(name)
	for _, row := range table {
		for _, kw := range row.Keywords {
			if strings.Contains(lower, kw) {
				return string(row.Category)
			}
		}
	}
	return string(constants.General)
}

// ClassifyAll fills in the category of every candidate that lacks one.
func (e *Extractor) ClassifyAll(candidates []entity.Candidate) {
	for i := range candidates {
		if candidates[i].Category == "" {
			candidates[i].Category = Classify(candidates[i].Name, e.vocab.Categories)
		}
	}
}
