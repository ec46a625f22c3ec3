package extract

import (
	"strings"

	"github.com/shashankg86/catalog-extractor/internal/entity"
)

// multilineStrategy pairs a name-looking line with a following price-only
// line. The price line is consumed: it cannot start another pair.
func (e *Extractor) multilineStrategy(lines []string, docCurrency string, p *pool) {
	consumed := false
	for i := 0; i+1 < len(lines); i++ {
		if consumed {
			consumed = false
			continue
		}
		line := strings.TrimSpace(lines[i])
		if line == "" || e.rePriceLoose.MatchString(line) {
			continue
		}
		if !looksLikeName(line) {
			continue
		}
		next := strings.TrimSpace(lines[i+1])
		m := e.rePriceOnly.FindStringSubmatch(next)
		if m == nil {
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
			Name:       cleanName(line),
			Price:      price,
			Currency:   currency,
			Confidence: confMultiline,
			Strategy:   StrategyMultiline,
		}, e.IsValid)
		// the price line is consumed by the pair even when the candidate
		// was a duplicate of an earlier strategy's
		consumed = true
	}
}
