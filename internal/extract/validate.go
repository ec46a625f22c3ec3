package extract

import (
	"strings"

	"github.com/shashankg86/catalog-extractor/internal/entity"
)

// IsValid rejects candidates with out-of-range names or prices, and names
// that exactly match the exclusion vocabulary (total, tax, page, ...).
func (e *Extractor) IsValid(c entity.Candidate) bool {
	name := strings.TrimSpace(c.Name)
	if len(name) < 3 || len(name) > 100 {
		return false
	}
	if c.Price <= 0 || c.Price > 100000 {
		return false
	}
	if _, excluded := e.excluded[strings.ToLower(name)]; excluded {
		return false
	}
	return true
}
