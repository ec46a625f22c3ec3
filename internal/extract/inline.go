package extract

import "strings"

// inlineStrategy tries every inline shape on every line. The five shapes
// capture name, optional currency token, and price in one line; group roles
// are resolved by parse-testing, not by position.
func (e *Extractor) inlineStrategy(lines []string, docCurrency string, p *pool) {
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		for _, re := range e.inline {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			c, ok := e.candidateFromGroups(m, docCurrency, StrategyInline, confInline)
			if !ok {
				continue
			}
			if p.add(c, e.IsValid) {
				break
			}
		}
	}
}
