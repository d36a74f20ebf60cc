package apperrors

// Error codes grouped by domain.
const (
	// Authentication
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidFileType  ErrorCode = "INVALID_FILE_TYPE"
	CodeFileTooLarge     ErrorCode = "FILE_TOO_LARGE"

	// Resources
	CodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	CodePesananNotFound ErrorCode = "PESANAN_NOT_FOUND"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
