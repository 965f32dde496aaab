package errors

import "net/http"

// ErrorCode is the stable identifier clients see in error bodies
type ErrorCode string

const (
	ValidationGeneral ErrorCode = "VALIDATION_001"

	AccountNotFound ErrorCode = "ACCOUNT_001"
	DebtNotFound    ErrorCode = "DEBT_001"

	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

type catalogueEntry struct {
	status  int
	message string
}

var catalogue = map[ErrorCode]catalogueEntry{
	ValidationGeneral: {http.StatusBadRequest, "Validation failed"},

	AccountNotFound: {http.StatusNotFound, "Account not found"},
	DebtNotFound:    {http.StatusNotFound, "Debt not found"},

	SystemInternalError: {http.StatusInternalServerError, "Internal server error"},
	// Shown by the portal when the upstream is down and the account has no seeded record.
	SystemServiceUnavailable: {http.StatusServiceUnavailable, "Unable to connect to Cache database. Dummy data is only available for account 12345."},
	SystemUnexpectedError:    {http.StatusInternalServerError, "An unexpected error occurred"},
	SystemRateLimitExceeded:  {http.StatusTooManyRequests, "Rate limit exceeded. Please try again later"},
	SystemRouteNotFound:      {http.StatusNotFound, "Resource not found"},
}

// GetErrorMessage returns the default message for code, or a generic one for
// codes outside the catalogue.
func GetErrorMessage(code ErrorCode) string {
	if entry, ok := catalogue[code]; ok {
		return entry.message
	}
	return "An error occurred"
}

// GetHTTPStatus returns the status a code is served with. Unknown codes are 500.
func GetHTTPStatus(code ErrorCode) int {
	if entry, ok := catalogue[code]; ok {
		return entry.status
	}
	return http.StatusInternalServerError
}

func IsValidErrorCode(code ErrorCode) bool {
	_, ok := catalogue[code]
	return ok
}

// CodeForStatus picks the code for errors raised by echo itself (routing,
// body limit, binding) which only carry a status.
func CodeForStatus(status int) ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed,
		http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType,
		http.StatusUnprocessableEntity:
		return ValidationGeneral
	case http.StatusNotFound:
		return SystemRouteNotFound
	case http.StatusTooManyRequests:
		return SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return SystemInternalError
	case http.StatusServiceUnavailable:
		return SystemServiceUnavailable
	default:
		return SystemUnexpectedError
	}
}
