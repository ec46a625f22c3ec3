package extract

import (
	"regexp"
	"strings"
)

// DetectCurrency scans text for every vocabulary token, counts
// case-insensitive occurrences, and returns the most frequent one. Ties go to
// the token declared first; zero occurrences returns the fallback.
func DetectCurrency(text, fallback string, tokens []string) string {
	return detectCurrency(text, fallback, tokens)
}

// DetectCurrency runs the detector with the extractor's own vocabulary.
func (e *Extractor) DetectCurrency(text, fallback string) string {
	return detectCurrency(text, fallback, e.vocab.CurrencyTokens)
}

func detectCurrency(text, fallback string, tokens []string) string {
	lower := strings.ToLower(text)
	best := fallback
	bestCount := 0
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		count := countToken(text, lower, tok)
		if count > bestCount {
			best = tok
			bestCount = count
		}
	}
	return best
}

var reLetterToken = regexp.MustCompile(`^[A-Za-z]+$`)

// countToken counts case-insensitive occurrences of tok. Letter codes (Rs,
// USD, ...) match on word boundaries only, so the "rs" inside "Burgers" or
// "Starters" never counts; symbol tokens count as plain substrings.
func countToken(text, lower, tok string) int {
	if reLetterToken.MatchString(tok) {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(tok) + `\b`)
		return len(re.FindAllStringIndex(text, -1))
	}
	return strings.Count(lower, strings.ToLower(tok))
}
