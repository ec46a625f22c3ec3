package extract

import (
	"strings"

	"github.com/shashankg86/catalog-extractor/constants"
	"github.com/shashankg86/catalog-extractor/internal/entity"
)

// Accepted header aliases for structured sources, in lookup order.
var (
	nameAliases     = []string{"name", "Item", "Item Name", "product", "Product"}
	priceAliases    = []string{"price", "Price", "Rate", "rate", "amount", "Amount"}
	categoryAliases = []string{"category", "Category"}
)

// MapRows converts structured rows into candidates. Structured sources are
// authoritative: confidence is fixed at 100 and the four-strategy pipeline
// is bypassed entirely. Rows without a usable name or positive price are
// dropped.
func (e *Extractor) MapRows(rows []entity.Row, docCurrency string) []entity.Candidate {
	out := make([]entity.Candidate, 0, len(rows))
	for _, row := range rows {
		name := cleanName(lookupAlias(row, nameAliases))
		if name == "" || len(name) < 3 {
			continue
		}
		price, ok := ParseLoosePrice(lookupAlias(row, priceAliases))
		if !ok {
			continue
		}
		category := strings.TrimSpace(lookupAlias(row, categoryAliases))
		if category == "" {
			category = string(constants.General)
		} else if canon, known := constants.Canonicalize(category); known {
			// case variants of known labels fold to the canonical spelling;
			// labels outside the table pass through as the sheet wrote them
			category = string(canon)
		}
		c := entity.Candidate{
			Name:       name,
			Price:      price,
			Currency:   docCurrency,
			Category:   category,
			Confidence: confStructured,
			Strategy:   StrategyStructured,
		}
		if !e.IsValid(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// lookupAlias tries each alias as an exact header, then case-insensitively.
func lookupAlias(row entity.Row, aliases []string) string {
	for _, a := range aliases {
		if v, ok := row[a]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	for _, a := range aliases {
		for k, v := range row {
			if strings.EqualFold(strings.TrimSpace(k), a) && strings.TrimSpace(v) != "" {
				return v
			}
		}
	}
	return ""
}
