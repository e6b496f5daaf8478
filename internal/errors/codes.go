package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral        ErrorCode = "VALIDATION_001"
	ValidationRequiredField  ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat  ErrorCode = "VALIDATION_003"
	ValidationOutOfRange     ErrorCode = "VALIDATION_004"
	ValidationInvalidDate    ErrorCode = "VALIDATION_005"
	ValidationInvalidAmount  ErrorCode = "VALIDATION_006"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryAlreadyExists ErrorCode = "CATEGORY_002"
	CategoryInvalidID     ErrorCode = "CATEGORY_003"
)

// Expense error codes (EXPENSE_*)
const (
	ExpenseNotFound             ErrorCode = "EXPENSE_001"
	ExpenseInvalidAmount        ErrorCode = "EXPENSE_002"
	ExpenseInvalidPaymentMethod ErrorCode = "EXPENSE_003"
	ExpenseInvalidID            ErrorCode = "EXPENSE_004"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound      ErrorCode = "BUDGET_001"
	BudgetAlreadyExists ErrorCode = "BUDGET_002"
	BudgetInvalidAmount ErrorCode = "BUDGET_003"
	BudgetInvalidMonth  ErrorCode = "BUDGET_004"
)

// Receipt error codes (RECEIPT_*)
const (
	ReceiptNotFound   ErrorCode = "RECEIPT_001"
	ReceiptInvalidURL ErrorCode = "RECEIPT_002"
)

// Report and export error codes (REPORT_*)
const (
	ReportInvalidRange  ErrorCode = "REPORT_001"
	ReportExportFailed  ErrorCode = "REPORT_002"
	ReportNoData        ErrorCode = "REPORT_003"
)

// User error codes (USER_*)
const (
	UserNotFound      ErrorCode = "USER_001"
	UserAlreadyExists ErrorCode = "USER_002"
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
	// Authentication errors
	AuthInvalidCredentials:     "Invalid email or password",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidAmount: "Amount must be a positive number",

	// Category errors
	CategoryNotFound:      "Category not found",
	CategoryAlreadyExists: "A category with this name already exists",
	CategoryInvalidID:     "Invalid category ID format",

	// Expense errors
	ExpenseNotFound:             "Expense not found",
	ExpenseInvalidAmount:        "Expense amount must be positive",
	ExpenseInvalidPaymentMethod: "Invalid payment method",
	ExpenseInvalidID:            "Invalid expense ID format",

	// Budget errors
	BudgetNotFound:      "Budget not found",
	BudgetAlreadyExists: "A budget for this category and month already exists",
	BudgetInvalidAmount: "Budget amount must be positive",
	BudgetInvalidMonth:  "Invalid budget month, use YYYY-MM",

	// Receipt errors
	ReceiptNotFound:   "Receipt not found",
	ReceiptInvalidURL: "Receipt URL must be a valid http(s) URL",

	// Report and export errors
	ReportInvalidRange: "Invalid report date range",
	ReportExportFailed: "Failed to generate export document",
	ReportNoData:       "No data available for the requested period",

	// User errors
	UserNotFound:      "User not found",
	UserAlreadyExists: "An account with this email already exists",

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
