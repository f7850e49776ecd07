package services

import (
	"fmt"
	"regexp"
	"strings"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// Extraction failure reasons. These are internal codes for logging and
// testing; the HTTP boundary collapses every failure to success=false.
const (
	ReasonNoAmountFound      = "no_amount_found"
	ReasonAmbiguousDirection = "ambiguous_direction"
)

const (
	maxDescriptionLength  = 80
	defaultSMSDescription = "SMS transaction"
)

// ExtractionError reports which stage of the parse pipeline gave up and why.
// A failed extraction never produces a partial draft.
type ExtractionError struct {
	Reason string
	Detail string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed (%s): %s", e.Reason, e.Detail)
}

var (
	// A currency marker on either side of the number marks an amount token.
	// Word boundaries keep "rs" from matching inside words like "hours".
	amountBeforePattern = regexp.MustCompile(`(?i)(?:₹|\b(?:rs|inr)\b\.?)\s*([0-9]+(?:,[0-9]+)*(?:\.[0-9]+)?)`)
	amountAfterPattern  = regexp.MustCompile(`(?i)([0-9]+(?:,[0-9]+)*(?:\.[0-9]+)?)\s*(?:₹|\b(?:rs|inr)\b)`)

	incomeKeywordPattern  = regexp.MustCompile(`(?i)\b(credited|received|refund|refunded|deposited)\b`)
	expenseKeywordPattern = regexp.MustCompile(`(?i)\b(debited|spent|paid|purchase|purchased|withdrawn|charged)\b`)

	// Connectives that introduce the payee clause after a direction keyword
	payeeClausePattern   = regexp.MustCompile(`(?i)\b(?:for|to|at|towards|from|via|on)\s+([^.;\n]+)`)
	leadingConnectivePat = regexp.MustCompile(`(?i)^(?:for|to|at|towards|from|via|on)\b\s*`)

	// Reference numbers, masked account fragments and balance tails carry no
	// payee information and are cut from description candidates.
	descriptionNoisePattern = regexp.MustCompile(`(?i)\b(?:avl|available)\s+bal(?:ance)?\b.*$|\bref\s*(?:no)?\.?\s*[:#]?\s*\S*$|\bupi\s*ref\b.*$|\btxn\s*id\b.*$|\ba/c\s+\S+`)
	whitespacePattern       = regexp.MustCompile(`\s+`)
)

type extractionService struct {
	categories CategoryServiceInterface
}

// NewExtractionService creates a new ExtractionServiceInterface instance
func NewExtractionService(categories CategoryServiceInterface) ExtractionServiceInterface {
	return &extractionService{
		categories: categories,
	}
}

// Extract runs the four-stage parse pipeline over a bank notification SMS.
// The pipeline is a pure function of (message, sender); the caller stamps
// date and provenance on the returned draft.
func (s *extractionService) Extract(message, sender string) (*models.TransactionDraft, error) {
	amount, err := s.detectAmount(message)
	if err != nil {
		return nil, err
	}

	transactionType, keywordEnd, err := s.detectDirection(message)
	if err != nil {
		return nil, err
	}

	description := s.extractDescription(message, sender, keywordEnd)
	inference := s.categories.InferCategory(message, transactionType)

	return &models.TransactionDraft{
		Amount:      amount,
		Type:        transactionType,
		Category:    inference.Category,
		Description: description,
	}, nil
}

// detectAmount finds the currency-marked numeric token. Repeated mentions of
// the same value collapse to one; distinct values are ambiguous and fail.
func (s *extractionService) detectAmount(message string) (decimal.Decimal, *ExtractionError) {
	raw := make([]string, 0, 2)
	for _, match := range amountBeforePattern.FindAllStringSubmatch(message, -1) {
		raw = append(raw, match[1])
	}
	for _, match := range amountAfterPattern.FindAllStringSubmatch(message, -1) {
		raw = append(raw, match[1])
	}

	distinct := make(map[string]decimal.Decimal)
	for _, token := range raw {
		value, err := decimal.NewFromString(strings.ReplaceAll(token, ",", ""))
		// Amounts carry at most two decimal places; anything longer is a
		// reference number that happens to sit next to a currency marker.
		if err != nil || value.Exponent() < -2 || !value.IsPositive() {
			continue
		}
		distinct[value.String()] = value
	}

	if len(distinct) == 0 {
		return decimal.Zero, &ExtractionError{
			Reason: ReasonNoAmountFound,
			Detail: "no currency-marked amount in message",
		}
	}
	if len(distinct) > 1 {
		return decimal.Zero, &ExtractionError{
			Reason: ReasonNoAmountFound,
			Detail: fmt.Sprintf("%d distinct amounts with no clear primary", len(distinct)),
		}
	}

	for _, value := range distinct {
		return value, nil
	}
	return decimal.Zero, nil
}

// detectDirection classifies the message as income or expense by keyword
// family. Matching both families or neither is ambiguous. Returns the end
// offset of the matched keyword for the description stage.
func (s *extractionService) detectDirection(message string) (string, int, *ExtractionError) {
	incomeLoc := incomeKeywordPattern.FindStringIndex(message)
	expenseLoc := expenseKeywordPattern.FindStringIndex(message)

	switch {
	case incomeLoc != nil && expenseLoc != nil:
		return "", 0, &ExtractionError{
			Reason: ReasonAmbiguousDirection,
			Detail: "message matches both income and expense keywords",
		}
	case incomeLoc != nil:
		return models.TransactionTypeIncome, incomeLoc[1], nil
	case expenseLoc != nil:
		return models.TransactionTypeExpense, expenseLoc[1], nil
	default:
		return "", 0, &ExtractionError{
			Reason: ReasonAmbiguousDirection,
			Detail: "message matches neither income nor expense keywords",
		}
	}
}

// extractDescription takes the payee clause introduced by a connective after
// the direction keyword, else the keyword's trailing clause, else a fixed
// default plus the sender hint. The snippet is cleaned and length-bounded.
func (s *extractionService) extractDescription(message, sender string, keywordEnd int) string {
	remainder := message[keywordEnd:]

	if match := payeeClausePattern.FindStringSubmatch(remainder); match != nil {
		if candidate := cleanDescription(match[1]); candidate != "" {
			return candidate
		}
	}

	if candidate := cleanDescription(remainder); candidate != "" {
		return candidate
	}

	if sender != "" {
		return defaultSMSDescription + " from " + sender
	}
	return defaultSMSDescription
}

// cleanDescription strips amount tokens and reference noise, then bounds the
// snippet length
func cleanDescription(snippet string) string {
	snippet = amountBeforePattern.ReplaceAllString(snippet, "")
	snippet = amountAfterPattern.ReplaceAllString(snippet, "")
	snippet = descriptionNoisePattern.ReplaceAllString(snippet, "")
	snippet = whitespacePattern.ReplaceAllString(snippet, " ")
	snippet = strings.Trim(snippet, " .,:;-#")

	for {
		trimmed := leadingConnectivePat.ReplaceAllString(snippet, "")
		if trimmed == snippet {
			break
		}
		snippet = strings.TrimLeft(trimmed, " .,:;-#")
	}

	if runes := []rune(snippet); len(runes) > maxDescriptionLength {
		snippet = strings.TrimSpace(string(runes[:maxDescriptionLength]))
	}
	return snippet
}
