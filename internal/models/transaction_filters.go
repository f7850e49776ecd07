package models

// TransactionFilters narrows ledger listings. Zero values mean "no filter":
// an empty TransactionFilters returns the whole ledger in insertion order.
// Limit caps the result to the most recent N entries, still oldest-first.
type TransactionFilters struct {
	Type     string
	Category string
	Source   string
	DateFrom string
	DateTo   string
	Limit    int
}
