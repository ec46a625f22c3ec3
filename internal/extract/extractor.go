package extract

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/shashankg86/catalog-extractor/internal/entity"
)

// Strategy names recorded on emitted candidates.
const (
	StrategyInline     = "inline"
	StrategyMultiline  = "multiline"
	StrategyTable      = "table"
	StrategyFallback   = "fallback"
	StrategyStructured = "structured"
)

// Confidence assigned per strategy. Earlier strategies are higher-precision.
const (
	confInline     = 85
	confTable      = 80
	confMultiline  = 70
	confFallback   = 50
	confStructured = 100
)

// Options bounds the fallback strategy's accepted price range.
type Options struct {
	FallbackMinPrice float64
	FallbackMaxPrice float64
}

// nameChain matches an item name: a letter followed by name runes, words
// joined by single spaces. Column gaps stay outside the name.
const nameChain = `[A-Za-z][A-Za-z&'\-]*(?: [A-Za-z&'\-]+)*`

// Extractor applies the four ordered strategies over normalized text.
// Safe for concurrent use: all state is built once in NewExtractor.
type Extractor struct {
	vocab    Vocabulary
	opts     Options
	logger   *slog.Logger
	excluded map[string]struct{}
	currency map[string]struct{}

	inline       []*regexp.Regexp
	rePriceOnly  *regexp.Regexp // whole line/cell is [currency] price
	rePriceLoose *regexp.Regexp // any [currency] price occurrence
	reColumnSep  *regexp.Regexp
}

func NewExtractor(vocab Vocabulary, opts Options, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.FallbackMinPrice <= 0 {
		opts.FallbackMinPrice = 0.5
	}
	if opts.FallbackMaxPrice <= 0 {
		opts.FallbackMaxPrice = 100000
	}

	excluded := make(map[string]struct{}, len(vocab.ExcludedNames))
	for _, n := range vocab.ExcludedNames {
		excluded[strings.ToLower(n)] = struct{}{}
	}
	currency := make(map[string]struct{}, len(vocab.CurrencyTokens))
	for _, t := range vocab.CurrencyTokens {
		currency[strings.ToLower(t)] = struct{}{}
	}

	cur := "(" + currencyAlt(vocab.CurrencyTokens) + ")"
	curOpt := `(?:` + cur + `\.?\s*)?`
	price := "(" + priceToken + ")"
	name := "(" + nameChain + ")"

	// The five inline shapes, in declaration order:
	// name <sep> price / price-first / pipe / two-space gap / leader dots.
	// Gaps of three or more spaces are column structure and belong to the
	// table strategy, so the gap shape takes exactly two.
	inline := []*regexp.Regexp{
		regexp.MustCompile(`^\s*` + name + `\s*[:\-–—]\s*` + curOpt + price + `\s*$`),
		regexp.MustCompile(`^\s*` + curOpt + price + `\s+` + name + `\s*$`),
		regexp.MustCompile(`^\s*` + name + `\s*\|\s*` + curOpt + price + `\s*$`),
		regexp.MustCompile(`^\s*` + name + `  ` + curOpt + price + `\s*$`),
		regexp.MustCompile(`^\s*` + name + `\s*\.{2,}\s*` + curOpt + price + `\s*$`),
	}

	return &Extractor{
		vocab:        vocab,
		opts:         opts,
		logger:       logger,
		excluded:     excluded,
		currency:     currency,
		inline:       inline,
		rePriceOnly:  regexp.MustCompile(`^\s*` + curOpt + price + `\s*$`),
		rePriceLoose: regexp.MustCompile(curOpt + price),
		reColumnSep:  regexp.MustCompile(`\t+| {3,}`),
	}
}

// currencyAlt builds an alternation of quoted tokens, longest first so that
// multi-letter codes win over their prefixes.
func currencyAlt(tokens []string) string {
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	quoted := make([]string, len(sorted))
	for i, t := range sorted {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return strings.Join(quoted, "|")
}

// Extract runs the strategies in fixed order over one deduplicated pool.
// The fallback strategy only activates when the first three found nothing.
func (e *Extractor) Extract(text, docCurrency string) []entity.Candidate {
	lines := strings.Split(text, "\n")
	p := newPool()

	e.inlineStrategy(lines, docCurrency, p)
	p.prune(e.IsValid)
	e.multilineStrategy(lines, docCurrency, p)
	p.prune(e.IsValid)
	e.tableStrategy(lines, docCurrency, p)
	p.prune(e.IsValid)

	if len(p.items) == 0 {
		e.fallbackStrategy(text, docCurrency, p)
		p.prune(e.IsValid)
	}

	e.logger.Debug("extract.done", "candidates", len(p.items))
	return p.items
}

// candidateFromGroups resolves which captured group is the price, which is
// the currency token, and which is the name, by parse-testing each group.
func (e *Extractor) candidateFromGroups(groups []string, docCurrency, strategy string, confidence int) (entity.Candidate, bool) {
	var name, currency string
	var price float64
	havePrice := false
	for _, g := range groups[1:] {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		if _, ok := e.currency[strings.ToLower(g)]; ok && currency == "" {
			currency = g
			continue
		}
		if v, ok := ParsePrice(g); ok && !havePrice {
			price = v
			havePrice = true
			continue
		}
		if name == "" {
			name = cleanName(g)
		}
	}
	if !havePrice || name == "" {
		return entity.Candidate{}, false
	}
	if len(name) < 3 || len(name) > 50 {
		return entity.Candidate{}, false
	}
	if currency == "" {
		currency = docCurrency
	}
	return entity.Candidate{
		Name:       name,
		Price:      price,
		Currency:   currency,
		Confidence: confidence,
		Strategy:   strategy,
	}, true
}

var reSpaceRun = regexp.MustCompile(`\s+`)

// cleanName collapses whitespace and trims separator leftovers.
func cleanName(s string) string {
	s = reSpaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
	return strings.Trim(s, " -:.|")
}

// looksLikeName filters lines and joined columns that cannot plausibly be an
// item name: must start with a letter, be 3-60 runes, not be mostly digits,
// and not be a long all-caps heading.
func looksLikeName(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < 3 || len(s) > 60 {
		return false
	}
	first := rune(s[0])
	if !((first >= 'A' && first <= 'Z') || (first >= 'a' && first <= 'z')) {
		return false
	}
	digits := 0
	letters := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			letters++
		}
	}
	if letters == 0 || digits*10 > len(s)*3 {
		return false
	}
	if len(s) > 15 && s == strings.ToUpper(s) {
		return false
	}
	return true
}
