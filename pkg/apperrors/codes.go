package apperrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeNoToken      ErrorCode = "NO_TOKEN"
	CodeInvalidToken ErrorCode = "INVALID_TOKEN"
	CodeNotOwner     ErrorCode = "NOT_OWNER"

	// Validation
	CodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"

	// Resources. A malformed identifier and a well-formed identifier with no
	// matching document surface the same HTTP status but keep distinct codes.
	CodeNotFound    ErrorCode = "NOT_FOUND"
	CodeMalformedID ErrorCode = "MALFORMED_ID"

	// Business rules
	CodeUserExists   ErrorCode = "USER_EXISTS"
	CodeNoProfile    ErrorCode = "NO_PROFILE"
	CodeAlreadyLiked ErrorCode = "ALREADY_LIKED"
	CodeNotYetLiked  ErrorCode = "NOT_YET_LIKED"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
