package services

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

type transactionGenerator struct {
	merchantPool     []models.MerchantInfo
	expenseMerchants []models.MerchantInfo
	incomeMerchants  []models.MerchantInfo
	senderPool       []string
	rng              *rand.Rand
}

const (
	// Rough shape of a personal ledger: mostly spending, a few credits,
	// and a noticeable share arriving through bank SMS.
	expenseShare = 0.80
	smsShare     = 0.40
)

// NewTransactionGenerator creates a new sample-data generator
func NewTransactionGenerator() TransactionGeneratorInterface {
	source := rand.NewSource(time.Now().UnixNano())
	pool := initializeMerchantPool()

	expense := make([]models.MerchantInfo, 0, len(pool))
	income := make([]models.MerchantInfo, 0, 4)
	for _, merchant := range pool {
		if merchant.Category == models.CategoryIncome {
			income = append(income, merchant)
			continue
		}
		expense = append(expense, merchant)
	}

	return &transactionGenerator{
		merchantPool:     pool,
		expenseMerchants: expense,
		incomeMerchants:  income,
		senderPool: []string{
			"VK-HDFCBK",
			"AX-SBIMB",
			"JD-ICICIB",
			"VM-AXISBK",
			"BP-KOTAKB",
		},
		rng: rand.New(source),
	}
}

// initializeMerchantPool creates a pool of realistic merchants. Every name
// carries the keyword the category inference tables match on, so generated
// SMS messages classify the same way the real ones would.
func initializeMerchantPool() []models.MerchantInfo {
	return []models.MerchantInfo{
		// Food
		{Name: "Swiggy", Category: models.CategoryFood, Keyword: "swiggy"},
		{Name: "Zomato", Category: models.CategoryFood, Keyword: "zomato"},
		{Name: "Blinkit", Category: models.CategoryFood, Keyword: "blinkit"},
		{Name: "Zepto", Category: models.CategoryFood, Keyword: "zepto"},
		{Name: "BigBasket", Category: models.CategoryFood, Keyword: "bigbasket"},
		{Name: "Dominos Pizza", Category: models.CategoryFood, Keyword: "domino"},
		{Name: "McDonalds", Category: models.CategoryFood, Keyword: "mcdonald"},
		{Name: "KFC", Category: models.CategoryFood, Keyword: "kfc"},
		{Name: "Starbucks", Category: models.CategoryFood, Keyword: "starbucks"},
		{Name: "Third Wave Cafe", Category: models.CategoryFood, Keyword: "cafe"},

		// Transport
		{Name: "Uber", Category: models.CategoryTransport, Keyword: "uber"},
		{Name: "Ola Cabs", Category: models.CategoryTransport, Keyword: "ola"},
		{Name: "Rapido", Category: models.CategoryTransport, Keyword: "rapido"},
		{Name: "IRCTC", Category: models.CategoryTransport, Keyword: "irctc"},
		{Name: "RedBus", Category: models.CategoryTransport, Keyword: "redbus"},
		{Name: "HP Petrol Pump", Category: models.CategoryTransport, Keyword: "petrol"},
		{Name: "FASTag Recharge", Category: models.CategoryTransport, Keyword: "fastag"},

		// Bills
		{Name: "Airtel Postpaid", Category: models.CategoryBills, Keyword: "airtel"},
		{Name: "Jio Recharge", Category: models.CategoryBills, Keyword: "recharge"},
		{Name: "BSNL Broadband", Category: models.CategoryBills, Keyword: "bsnl"},
		{Name: "Tata Power Electricity", Category: models.CategoryBills, Keyword: "electricity"},
		{Name: "Tata Sky DTH", Category: models.CategoryBills, Keyword: "dth"},
		{Name: "LIC Insurance Premium", Category: models.CategoryBills, Keyword: "insurance premium"},

		// Shopping
		{Name: "Amazon", Category: models.CategoryShopping, Keyword: "amazon"},
		{Name: "Flipkart", Category: models.CategoryShopping, Keyword: "flipkart"},
		{Name: "Myntra", Category: models.CategoryShopping, Keyword: "myntra"},
		{Name: "AJIO", Category: models.CategoryShopping, Keyword: "ajio"},
		{Name: "Nykaa", Category: models.CategoryShopping, Keyword: "nykaa"},
		{Name: "Croma", Category: models.CategoryShopping, Keyword: "croma"},
		{Name: "Decathlon", Category: models.CategoryShopping, Keyword: "decathlon"},
		{Name: "Meesho", Category: models.CategoryShopping, Keyword: "meesho"},
		{Name: "IKEA", Category: models.CategoryShopping, Keyword: "ikea"},

		// Income
		{Name: "Salary Credit", Category: models.CategoryIncome, Keyword: "salary"},
		{Name: "Internship Stipend", Category: models.CategoryIncome, Keyword: "stipend"},
		{Name: "Mutual Fund Dividend", Category: models.CategoryIncome, Keyword: "dividend"},
		{Name: "Pension Payment", Category: models.CategoryIncome, Keyword: "pension"},
	}
}

// GetMerchantPool returns the merchant pool
func (g *transactionGenerator) GetMerchantPool() []models.MerchantInfo {
	return g.merchantPool
}

// SelectRandomMerchant selects a random merchant from the pool
func (g *transactionGenerator) SelectRandomMerchant() models.MerchantInfo {
	return g.merchantPool[g.rng.Intn(len(g.merchantPool))]
}

// GenerateAmount generates a realistic rupee amount for the category
func (g *transactionGenerator) GenerateAmount(category string) decimal.Decimal {
	minValue, maxValue := g.getAmountRange(category)
	amount := minValue + g.rng.Float64()*(maxValue-minValue)
	return decimal.NewFromFloat(amount).Round(2)
}

func (g *transactionGenerator) getAmountRange(category string) (float64, float64) {
	ranges := map[string][2]float64{
		models.CategoryFood:      {50.00, 1200.00},
		models.CategoryTransport: {40.00, 900.00},
		models.CategoryBills:     {199.00, 3500.00},
		models.CategoryShopping:  {150.00, 8000.00},
		models.CategoryIncome:    {10000.00, 90000.00},
	}

	if r, exists := ranges[category]; exists {
		return r[0], r[1]
	}
	return 50.00, 500.00
}

// GenerateDate generates a random calendar date within the range, inclusive
func (g *transactionGenerator) GenerateDate(startDate, endDate time.Time) string {
	if !endDate.After(startDate) {
		return startDate.Format(models.DateLayout)
	}

	days := int(endDate.Sub(startDate).Hours() / 24)
	return startDate.AddDate(0, 0, g.rng.Intn(days+1)).Format(models.DateLayout)
}

// GenerateSMS builds a bank-style notification for the merchant and amount.
// The message round-trips through the extraction pipeline: one amount token,
// one direction keyword family, and the merchant name as the payee clause.
func (g *transactionGenerator) GenerateSMS(merchant models.MerchantInfo, amount decimal.Decimal) (string, string) {
	sender := g.senderPool[g.rng.Intn(len(g.senderPool))]

	var templates []string
	if merchant.Category == models.CategoryIncome {
		templates = []string{
			"Rs.%s credited to your account for %s",
			"You have received Rs.%s towards %s",
			"INR %s credited for %s",
		}
	} else {
		templates = []string{
			"Rs.%s debited for %s",
			"Rs.%s spent at %s",
			"INR %s paid to %s via UPI",
		}
	}

	template := templates[g.rng.Intn(len(templates))]
	return fmt.Sprintf(template, amount.StringFixed(2), merchant.Name), sender
}

// GenerateTransactions produces a dated batch of sample ledger entries,
// oldest first. Entries are unpersisted; storage assigns ids on create.
func (g *transactionGenerator) GenerateTransactions(startDate, endDate time.Time, count int) []*models.Transaction {
	if count <= 0 {
		return []*models.Transaction{}
	}

	transactions := make([]*models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		transactions = append(transactions, g.generateTransaction(startDate, endDate))
	}

	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].Date < transactions[j].Date
	})

	return transactions
}

func (g *transactionGenerator) generateTransaction(startDate, endDate time.Time) *models.Transaction {
	transactionType := models.TransactionTypeExpense
	merchant := g.expenseMerchants[g.rng.Intn(len(g.expenseMerchants))]
	if g.rng.Float64() >= expenseShare {
		transactionType = models.TransactionTypeIncome
		merchant = g.incomeMerchants[g.rng.Intn(len(g.incomeMerchants))]
	}

	amount := g.GenerateAmount(merchant.Category)

	transaction := &models.Transaction{
		Amount:      amount,
		Type:        transactionType,
		Category:    merchant.Category,
		Description: g.describeManualEntry(transactionType, merchant),
		Date:        g.GenerateDate(startDate, endDate),
		Source:      models.TransactionSourceManual,
	}

	if g.rng.Float64() < smsShare {
		message, _ := g.GenerateSMS(merchant, amount)
		transaction.Source = models.TransactionSourceSMS
		transaction.RawOrigin = &message
		transaction.Description = merchant.Name
	}

	return transaction
}

func (g *transactionGenerator) describeManualEntry(transactionType string, merchant models.MerchantInfo) string {
	if transactionType == models.TransactionTypeIncome {
		return merchant.Name
	}
	return "Purchase at " + merchant.Name
}
