package extract

import (
	"strings"

	"github.com/shashankg86/catalog-extractor/internal/entity"
)

// fallbackStrategy is the last resort when the line-oriented strategies find
// nothing: every price-like occurrence in the text is paired with the words
// immediately preceding it. The price window suppresses line numbers, page
// numbers, and misread dates.
func (e *Extractor) fallbackStrategy(text, docCurrency string, p *pool) {
	matches := e.rePriceLoose.FindAllStringSubmatchIndex(text, -1)
	for _, m := range matches {
		currency := ""
		if m[2] >= 0 {
			currency = text[m[2]:m[3]]
		}
		price, ok := ParsePrice(text[m[4]:m[5]])
		if !ok {
			continue
		}
		if price < e.opts.FallbackMinPrice || price > e.opts.FallbackMaxPrice {
			continue
		}

		start := m[0] - 100
		if start < 0 {
			start = 0
		}
		preceding := strings.NewReplacer("\n", " ", "\t", " ").Replace(text[start:m[0]])
		var words []string
		for _, w := range strings.Fields(preceding) {
			if len(w) > 2 {
				words = append(words, w)
			}
		}
		if len(words) > 5 {
			words = words[len(words)-5:]
		}
		name := cleanName(strings.Join(words, " "))
		if !looksLikeName(name) {
			continue
		}
		if currency == "" {
			currency = docCurrency
		}
		p.add(entity.Candidate{
			Name:       name,
			Price:      price,
			Currency:   currency,
			Confidence: confFallback,
			Strategy:   StrategyFallback,
		}, e.IsValid)
	}
}
