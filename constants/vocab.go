package constants

// DefaultCurrencyTokens is the currency vocabulary in declaration order.
// Order matters: the detector breaks occurrence-count ties by position.
var DefaultCurrencyTokens = []string{
	"$", "₹", "€", "£", "¥", "د.إ", "Rs", "AED", "USD", "INR", "EUR", "GBP",
}

// DefaultExcludedNames are labels that look like item names but never are.
// Matched case-insensitively and exactly against extracted names.
var DefaultExcludedNames = []string{
	"total", "subtotal", "tax", "tip", "discount",
	"page", "menu", "price", "amount",
}
