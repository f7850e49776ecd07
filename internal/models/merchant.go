package models

// MerchantInfo describes a known merchant used by sample-data generation.
// Keyword is the lowercase fragment the category inference tables match on.
type MerchantInfo struct {
	Name     string
	Category string
	Keyword  string
}
