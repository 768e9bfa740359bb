package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Identity errors
	CodeDuplicateIdentity  Code = "DUPLICATE_IDENTITY"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"

	// Validation errors
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// Storage errors
	CodeNotFound           Code = "NOT_FOUND"
	CodeSchemaInitFailed   Code = "SCHEMA_INIT_FAILED"
	CodeSerializationError Code = "SERIALIZATION_FAILED"
	CodeStorageUnavailable Code = "STORAGE_UNAVAILABLE"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidArgument:
		return http.StatusBadRequest

	case CodeInvalidCredentials:
		return http.StatusUnauthorized

	case CodeNotFound:
		return http.StatusNotFound

	case CodeDuplicateIdentity:
		return http.StatusConflict

	case CodeStorageUnavailable:
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}
