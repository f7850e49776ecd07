package models

// Fixed category set shared by validation and SMS category inference.
const (
	CategoryFood      = "Food"
	CategoryTransport = "Transport"
	CategoryBills     = "Bills"
	CategoryShopping  = "Shopping"
	CategoryIncome    = "Income"
)

// Inference method types
const (
	InferenceMethodMerchant  = "MERCHANT"
	InferenceMethodDirection = "DIRECTION"
	InferenceMethodFallback  = "FALLBACK"
)

// AllCategories returns all valid category constants
func AllCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryBills,
		CategoryShopping,
		CategoryIncome,
	}
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}

// CategoryInference contains the result of inferring a category from message text
type CategoryInference struct {
	Category       string `json:"category"`
	Method         string `json:"method"`
	MatchedKeyword string `json:"matched_keyword,omitempty"`
}
