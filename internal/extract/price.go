package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// priceToken matches a price: digits with optional comma thousands groups and
// an optional 1-2 digit decimal part, comma or dot separated.
const priceToken = `(?:\d{1,3}(?:,\d{3})+|\d+)(?:[.,]\d{1,2})?`

var reNonPrice = regexp.MustCompile(`[^0-9.,]`)

// ParsePrice normalizes a captured price token to a float. Comma is accepted
// as either a thousands or a decimal separator; the result is dot-decimal.
func ParsePrice(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = reNonPrice.ReplaceAllString(s, "")
	switch {
	case strings.Contains(s, ",") && strings.Contains(s, "."):
		// 1,234.50 — commas are thousands groups
		s = strings.ReplaceAll(s, ",", "")
	case strings.Contains(s, ","):
		idx := strings.LastIndex(s, ",")
		frac := len(s) - idx - 1
		if frac >= 1 && frac <= 2 && strings.Count(s, ",") == 1 {
			// 120,50 — decimal comma
			s = s[:idx] + "." + s[idx+1:]
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

var reLooseNumber = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ParseLoosePrice strips everything that is not part of the first numeric
// token before parsing. Used for structured cells like "Rs. 180" or "$ 12.99",
// where a currency abbreviation's trailing dot must not read as a decimal.
func ParseLoosePrice(s string) (float64, bool) {
	s = strings.ReplaceAll(s, ",", "")
	num := reLooseNumber.FindString(s)
	if num == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
