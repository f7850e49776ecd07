package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound        ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount   ErrorCode = "TRANSACTION_002"
	TransactionInvalidType     ErrorCode = "TRANSACTION_003"
	TransactionInvalidCategory ErrorCode = "TRANSACTION_004"
	TransactionInvalidSource   ErrorCode = "TRANSACTION_005"
	TransactionInvalidID       ErrorCode = "TRANSACTION_006"
)

// SMS extraction error codes (PARSE_*)
// These are internal reason codes: the /parse-sms endpoint collapses every
// extraction failure to {"success": false} on the wire, and the codes are
// kept for logs, metrics, and tests.
const (
	ParseNoAmountFound      ErrorCode = "PARSE_001"
	ParseAmbiguousDirection ErrorCode = "PARSE_002"
	ParseEmptyMessage       ErrorCode = "PARSE_003"
)

// Access error codes (ACCESS_*)
const (
	AccessForbidden ErrorCode = "ACCESS_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Transaction errors
	TransactionNotFound:        "Transaction not found",
	TransactionInvalidAmount:   "Transaction amount must be a positive number",
	TransactionInvalidType:     "Transaction type must be income or expense",
	TransactionInvalidCategory: "Transaction category is not in the allowed set",
	TransactionInvalidSource:   "Transaction source must be manual or sms",
	TransactionInvalidID:       "Invalid transaction ID format",

	// SMS extraction errors
	ParseNoAmountFound:      "No currency-marked amount found in the message",
	ParseAmbiguousDirection: "Could not tell whether the message is a credit or a debit",
	ParseEmptyMessage:       "Message text is empty",

	// Access errors
	AccessForbidden: "Access to this endpoint is not allowed",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
