package services

import (
	"strings"

	"fintrack/internal/models"
)

type categoryService struct {
	merchantKeywords []merchantKeyword
}

// merchantKeyword maps a lowercase text fragment to a category. Matching is
// ordered first-match-wins, so inference stays deterministic for messages
// that mention fragments from more than one group.
type merchantKeyword struct {
	keyword  string
	category string
}

// NewCategoryService creates a new CategoryServiceInterface instance
func NewCategoryService() CategoryServiceInterface {
	return &categoryService{
		merchantKeywords: initMerchantKeywords(),
	}
}

// MatchMerchant reports the first merchant keyword contained in the text
func (s *categoryService) MatchMerchant(text string) (string, string, bool) {
	if text == "" {
		return "", "", false
	}

	normalized := strings.ToLower(text)
	for _, mk := range s.merchantKeywords {
		if containsKeyword(normalized, mk.keyword) {
			return mk.keyword, mk.category, true
		}
	}

	return "", "", false
}

// InferCategory maps the message text to the fixed category set. A merchant
// keyword wins outright; income with no merchant defaults to Income; anything
// else falls back to Shopping. A best-guess category beats a failed parse,
// since the user can correct the category later.
func (s *categoryService) InferCategory(text, transactionType string) *models.CategoryInference {
	if keyword, category, found := s.MatchMerchant(text); found {
		return &models.CategoryInference{
			Category:       category,
			Method:         models.InferenceMethodMerchant,
			MatchedKeyword: keyword,
		}
	}

	if transactionType == models.TransactionTypeIncome {
		return &models.CategoryInference{
			Category: models.CategoryIncome,
			Method:   models.InferenceMethodDirection,
		}
	}

	return &models.CategoryInference{
		Category: models.CategoryShopping,
		Method:   models.InferenceMethodFallback,
	}
}

// containsKeyword reports whether the keyword occurs in text starting at a
// word boundary. Prefix matching keeps plural and suffixed merchant forms
// ("dominos", "mcdonald's") matching without tripping on fragments buried
// inside unrelated words ("cola" must not match "ola").
func containsKeyword(text, keyword string) bool {
	offset := 0
	for {
		idx := strings.Index(text[offset:], keyword)
		if idx < 0 {
			return false
		}
		at := offset + idx
		if at == 0 || !isWordByte(text[at-1]) {
			return true
		}
		offset = at + 1
	}
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

// initMerchantKeywords initializes the keyword-to-category tables
func initMerchantKeywords() []merchantKeyword {
	return []merchantKeyword{
		// Food
		{"swiggy", models.CategoryFood},
		{"zomato", models.CategoryFood},
		{"blinkit", models.CategoryFood},
		{"zepto", models.CategoryFood},
		{"bigbasket", models.CategoryFood},
		{"domino", models.CategoryFood},
		{"mcdonald", models.CategoryFood},
		{"kfc", models.CategoryFood},
		{"starbucks", models.CategoryFood},
		{"cafe", models.CategoryFood},
		{"restaurant", models.CategoryFood},
		{"grocer", models.CategoryFood},

		// Transport
		{"uber", models.CategoryTransport},
		{"ola", models.CategoryTransport},
		{"rapido", models.CategoryTransport},
		{"irctc", models.CategoryTransport},
		{"redbus", models.CategoryTransport},
		{"fastag", models.CategoryTransport},
		{"petrol", models.CategoryTransport},
		{"fuel", models.CategoryTransport},
		{"taxi", models.CategoryTransport},
		{"metro card", models.CategoryTransport},

		// Bills
		{"electricity", models.CategoryBills},
		{"recharge", models.CategoryBills},
		{"jio", models.CategoryBills},
		{"airtel", models.CategoryBills},
		{"bsnl", models.CategoryBills},
		{"broadband", models.CategoryBills},
		{"dth", models.CategoryBills},
		{"postpaid", models.CategoryBills},
		{"water bill", models.CategoryBills},
		{"gas bill", models.CategoryBills},
		{"bill payment", models.CategoryBills},
		{"insurance premium", models.CategoryBills},
		{"emi", models.CategoryBills},

		// Shopping
		{"amazon", models.CategoryShopping},
		{"flipkart", models.CategoryShopping},
		{"myntra", models.CategoryShopping},
		{"ajio", models.CategoryShopping},
		{"meesho", models.CategoryShopping},
		{"nykaa", models.CategoryShopping},
		{"croma", models.CategoryShopping},
		{"decathlon", models.CategoryShopping},
		{"ikea", models.CategoryShopping},

		// Income
		{"salary", models.CategoryIncome},
		{"payroll", models.CategoryIncome},
		{"stipend", models.CategoryIncome},
		{"pension", models.CategoryIncome},
		{"dividend", models.CategoryIncome},
	}
}
