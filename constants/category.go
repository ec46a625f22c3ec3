package constants

import "strings"

// Category is a best-guess menu category label.
type Category string

const (
	Appetizers Category = "Appetizers"
	MainCourse Category = "Main Course"
	Desserts   Category = "Desserts"
	Beverages  Category = "Beverages"
	Sides      Category = "Sides"
	Breakfast  Category = "Breakfast"
	General    Category = "General"
)

// CategoryKeywords binds one category to its lookup keywords.
// Table order is match priority: the first category whose keyword appears wins.
type CategoryKeywords struct {
	Category Category
	Keywords []string
}

// DefaultCategoryTable is the built-in classification table.
// Keywords are matched as lowercase substrings of the item name.
var DefaultCategoryTable = []CategoryKeywords{
	{Appetizers, []string{
		"starter", "appetizer", "tikka", "pakora", "kebab", "spring roll",
		"soup", "wings", "nachos", "momos", "samosa",
	}},
	{MainCourse, []string{
		"biryani", "curry", "pizza", "burger", "pasta", "noodles", "rice",
		"dal", "paneer", "chicken", "mutton", "fish", "steak", "thali",
		"masala", "korma",
	}},
	{Desserts, []string{
		"dessert", "ice cream", "cake", "pastry", "brownie", "gulab",
		"kheer", "halwa", "sundae", "sweet",
	}},
	{Beverages, []string{
		"tea", "coffee", "juice", "shake", "lassi", "soda", "smoothie",
		"mocktail", "cola", "water", "beer", "wine",
	}},
	{Sides, []string{
		"fries", "salad", "raita", "papad", "naan", "roti", "bread",
		"garlic", "side",
	}},
	{Breakfast, []string{
		"breakfast", "idli", "dosa", "poha", "paratha", "omelette",
		"upma", "toast", "eggs", "pancake",
	}},
}

// AllCategories returns the category labels in table order, General last.
func AllCategories() []string {
	out := make([]string, 0, len(DefaultCategoryTable)+1)
	for _, row := range DefaultCategoryTable {
		out = append(out, string(row.Category))
	}
	return append(out, string(General))
}

// Canonicalize maps a free-text label to a known category, General otherwise.
func Canonicalize(input string) (Category, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return General, false
	}
	for _, row := range DefaultCategoryTable {
		if normalized == strings.ToLower(string(row.Category)) {
			return row.Category, true
		}
	}
	if normalized == strings.ToLower(string(General)) {
		return General, true
	}
	return General, false
}
