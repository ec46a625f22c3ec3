package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashankg86/catalog-extractor/constants"
)

func TestClassify(t *testing.T) {
	table := constants.DefaultCategoryTable

	tests := []struct {
		name string
		want string
	}{
		{"Chicken Biryani", "Main Course"},
		{"Mystery Snack", "General"},
		{"Paneer Tikka", "Appetizers"},
		{"Cold Coffee", "Beverages"},
		{"Gulab Jamun", "Desserts"},
		{"French Fries", "Sides"},
		{"Aloo Paratha", "Breakfast"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.name, table), "name %q", tt.name)
	}
}

func TestClassifyFirstTableEntryWins(t *testing.T) {
	// "chicken tikka" carries both an Appetizers and a Main Course keyword;
	// Appetizers is declared first
	assert.Equal(t, "Appetizers", Classify("Chicken Tikka", constants.DefaultCategoryTable))
}

func TestClassifyAllFillsMissingOnly(t *testing.T) {
	e := newTestExtractor(t)
	got := e.Extract("Chicken Biryani - ₹350", "₹")
	e.ClassifyAll(got)
	assert.Equal(t, "Main Course", got[0].Category)
}
