package extract

import (
	"strconv"
	"strings"

	"github.com/shashankg86/catalog-extractor/internal/entity"
)

// DedupKey merges candidates across strategies: lowercased name with spaces
// stripped, joined to the price at two decimals.
func DedupKey(name string, price float64) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "")) + "_" + strconv.FormatFloat(price, 'f', 2, 64)
}

// pool is the shared candidate set strategies feed in order. The first
// strategy to claim a key wins; later duplicates are dropped silently.
type pool struct {
	seen  map[string]struct{}
	items []entity.Candidate
}

func newPool() *pool {
	return &pool{seen: make(map[string]struct{})}
}

// add inserts the candidate unless invalid or already present under its key.
func (p *pool) add(c entity.Candidate, valid func(entity.Candidate) bool) bool {
	if !valid(c) {
		return false
	}
	key := DedupKey(c.Name, c.Price)
	if _, dup := p.seen[key]; dup {
		return false
	}
	p.seen[key] = struct{}{}
	p.items = append(p.items, c)
	return true
}

// prune re-applies validation over the pool after each strategy pass.
func (p *pool) prune(valid func(entity.Candidate) bool) {
	kept := p.items[:0]
	for _, c := range p.items {
		if valid(c) {
			kept = append(kept, c)
		} else {
			delete(p.seen, DedupKey(c.Name, c.Price))
		}
	}
	p.items = kept
}
