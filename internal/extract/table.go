package extract

import (
	"strings"

	"github.com/shashankg86/catalog-extractor/internal/entity"
)

// tableStrategy splits lines on column gaps (tabs or runs of three or more
// spaces). When the last column is a price and the remaining columns join
// into a plausible name, the line is one table row.
func (e *Extractor) tableStrategy(lines []string, docCurrency string, p *pool) {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		cols := e.reColumnSep.Split(trimmed, -1)
		if len(cols) < 2 {
			continue
		}
		last := strings.TrimSpace(cols[len(cols)-1])
		m := e.rePriceOnly.FindStringSubmatch(last)
		if m == nil {
			continue
		}
		name := cleanName(strings.Join(cols[:len(cols)-1], " "))
		if !looksLikeName(name) {
			continue
		}
		currency := strings.TrimSpace(m[1])
		price, ok := ParsePrice(m[2])
		if !ok {
			continue
		}
		if currency == "" {
			currency = docCurrency
		}
		p.add(entity.Candidate{
			Name:       name,
			Price:      price,
			Currency:   currency,
			Confidence: confTable,
			Strategy:   StrategyTable,
		}, e.IsValid)
	}
}
