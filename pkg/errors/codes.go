package errors

import "net/http"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes shared by every layer.
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeConflict           ErrorCode = "COMMON_004"
	ErrCodeTimeout            ErrorCode = "COMMON_005"
	ErrCodeValidation         ErrorCode = "COMMON_006"
	ErrCodeSerialization      ErrorCode = "COMMON_007"
	ErrCodeExternalService    ErrorCode = "COMMON_008"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_009"
)

// Shorthand aliases used throughout the codebase.
const (
	CodeUnknown      = ErrorCode("UNKNOWN")
	CodeOK           = ErrorCode("OK")
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeNotFound     = ErrCodeNotFound
	CodeConflict     = ErrCodeConflict
)

// Similarity engine error codes.  The engine core itself is total over its
// input domain and never returns errors; these codes exist for the surrounding
// service layer (e.g., a comparison request that carries no record at all).
const (
	ErrCodeMarkRecordMissing    ErrorCode = "MARK_001"
	ErrCodeMarkThresholdInvalid ErrorCode = "MARK_002"
)

// Document extraction error codes.
const (
	ErrCodeExtractUnavailable   ErrorCode = "EXTRACT_001"
	ErrCodeExtractLLMFailed     ErrorCode = "EXTRACT_002"
	ErrCodeExtractBadResponse   ErrorCode = "EXTRACT_003"
	ErrCodeExtractEmptyDocument ErrorCode = "EXTRACT_004"
	ErrCodeExtractUnsupported   ErrorCode = "EXTRACT_005"
)

// Record ledger error codes.
const (
	ErrCodeLedgerReadFailed   ErrorCode = "LEDGER_001"
	ErrCodeLedgerWriteFailed  ErrorCode = "LEDGER_002"
	ErrCodeLedgerMalformedCSV ErrorCode = "LEDGER_003"
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.  Codes absent
// from the map fall back to 500 via HTTPStatus.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeExternalService:    http.StatusBadGateway,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,

	ErrCodeMarkRecordMissing:    http.StatusBadRequest,
	ErrCodeMarkThresholdInvalid: http.StatusBadRequest,

	ErrCodeExtractUnavailable:   http.StatusServiceUnavailable,
	ErrCodeExtractLLMFailed:     http.StatusBadGateway,
	ErrCodeExtractBadResponse:   http.StatusBadGateway,
	ErrCodeExtractEmptyDocument: http.StatusBadRequest,
	ErrCodeExtractUnsupported:   http.StatusBadRequest,

	ErrCodeLedgerReadFailed:   http.StatusInternalServerError,
	ErrCodeLedgerWriteFailed:  http.StatusInternalServerError,
	ErrCodeLedgerMalformedCSV: http.StatusBadRequest,
}

// HTTPStatus returns the HTTP status code associated with code, defaulting to
// 500 for unmapped codes.
func HTTPStatus(code ErrorCode) int {
	if s, ok := ErrorCodeHTTPStatus[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}
