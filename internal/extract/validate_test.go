package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashankg86/catalog-extractor/internal/entity"
)

func TestIsValid(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		name      string
		candidate entity.Candidate
		want      bool
	}{
		{"ok", entity.Candidate{Name: "Veg Burger", Price: 250}, true},
		{"name too short", entity.Candidate{Name: "ab", Price: 10}, false},
		{"name too long", entity.Candidate{Name: strings.Repeat("a", 101), Price: 10}, false},
		{"name at max length", entity.Candidate{Name: strings.Repeat("a", 100), Price: 10}, true},
		{"zero price", entity.Candidate{Name: "Veg Burger", Price: 0}, false},
		{"negative price", entity.Candidate{Name: "Veg Burger", Price: -5}, false},
		{"price over cap", entity.Candidate{Name: "Veg Burger", Price: 100001}, false},
		{"price at cap", entity.Candidate{Name: "Veg Burger", Price: 100000}, true},
		{"excluded exact", entity.Candidate{Name: "Total", Price: 99}, false},
		{"excluded case insensitive", entity.Candidate{Name: "SUBTOTAL", Price: 99}, false},
		{"excluded only on exact match", entity.Candidate{Name: "Total Meal Deal", Price: 99}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.IsValid(tt.candidate))
		})
	}
}

func TestDedupKey(t *testing.T) {
	assert.Equal(t, DedupKey("Veg Burger", 250), DedupKey("veg burger", 250))
	assert.Equal(t, DedupKey("VegBurger", 250), DedupKey("Veg Burger", 250))
	assert.NotEqual(t, DedupKey("Veg Burger", 250), DedupKey("Veg Burger", 250.5))
	assert.Equal(t, "vegburger_250.00", DedupKey("Veg Burger", 250))
}
