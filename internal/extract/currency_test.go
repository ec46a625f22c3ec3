package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashankg86/catalog-extractor/constants"
)

func TestDetectCurrency(t *testing.T) {
	tokens := constants.DefaultCurrencyTokens

	tests := []struct {
		name     string
		text     string
		fallback string
		want     string
	}{
		{"dominant symbol wins", "₹120 ₹150 $5", "$", "₹"},
		{"no token returns fallback", "plain text without money", "AED", "AED"},
		{"tie broken by declaration order", "$10 ₹10", "€", "$"},
		{"case insensitive codes", "usd 10 usd 20 inr 5", "$", "USD"},
		{"empty text returns fallback", "", "₹", "₹"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCurrency(tt.text, tt.fallback, tokens))
		})
	}
}

func TestDetectCurrencyCodesMatchWholeWords(t *testing.T) {
	tokens := constants.DefaultCurrencyTokens

	// the "rs" inside ordinary menu words is not the Rs token
	got := DetectCurrency("Veg Burgers  120\nStarters   80\nPlatters   95", "$", tokens)
	assert.Equal(t, "$", got)

	// an explicit symbol must not be out-voted by embedded letter runs
	got = DetectCurrency("Burgers and Starters and Platters - $5", "$", tokens)
	assert.Equal(t, "$", got)

	// real code occurrences still count
	got = DetectCurrency("Paneer Tikka Rs. 180\nDal Fry Rs 120", "$", tokens)
	assert.Equal(t, "Rs", got)
}

func TestDetectCurrencyCustomVocabulary(t *testing.T) {
	got := DetectCurrency("CHF 12 CHF 9 EUR 4", "EUR", []string{"CHF", "EUR"})
	assert.Equal(t, "CHF", got)
}
