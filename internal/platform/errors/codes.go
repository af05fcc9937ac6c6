// Package errors provides coded errors shared by the console packages.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Configuration errors
	CodeConfigBaseURLMissing Code = "CONFIG_BASE_URL_MISSING"
	CodeConfigInvalid        Code = "CONFIG_INVALID"

	// API errors
	CodeRequestFailed    Code = "REQUEST_FAILED"
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeDecodeFailed     Code = "DECODE_FAILED"

	// Session errors
	CodeUnauthenticated Code = "UNAUTHENTICATED"

	// Console errors
	CodeConfirmationDeclined Code = "CONFIRMATION_DECLINED"
	CodeUsage                Code = "USAGE"
)

// ExitCode maps a code to a sysexits-style process status.
func (c Code) ExitCode() int {
	switch c {
	case CodeUsage:
		return 64
	case CodeValidationFailed, CodeDecodeFailed:
		return 65
	case CodeUnauthenticated:
		return 77
	case CodeConfigBaseURLMissing, CodeConfigInvalid:
		return 78
	default:
		return 1
	}
}

// Hint returns an operator-facing next step for a code, or "" when the
// message alone is enough.
func (c Code) Hint() string {
	switch c {
	case CodeConfigBaseURLMissing:
		return "set CURKIN_ADMIN_API_BASE_URL or pass -base-url"
	case CodeUnauthenticated:
		return "run `admin login` or enable API key mode"
	case CodeRequestFailed:
		return "retry the command; add -debug to log requests"
	case CodeConfirmationDeclined:
		return "pass -yes to skip the confirmation prompt"
	default:
		return ""
	}
}
