package errors

import "net/http"

var codeMapping = map[string]int{
	ErrInternal:        http.StatusInternalServerError,
	ErrNotFound:        http.StatusNotFound,
	ErrInvalidArgument: http.StatusBadRequest,
	ErrUnauthenticated: http.StatusUnauthorized,
	ErrUnauthorized:    http.StatusForbidden,
	ErrConflict:        http.StatusConflict,
	ErrRateLimited:     http.StatusTooManyRequests,
	ErrUpstream:        http.StatusBadGateway,
	ErrTimeout:         http.StatusGatewayTimeout,
	ErrNotImplemented:  http.StatusNotImplemented,
}

// ToHTTPStatus maps an error code to its HTTP status. Unknown codes map to 500.
func ToHTTPStatus(code string) int {
	if status, ok := codeMapping[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// FromHTTPStatus maps an HTTP status back to its error code, for errors that
// originate in the framework rather than the application. Unmapped statuses
// become ErrInternal.
func FromHTTPStatus(status int) string {
	for code, s := range codeMapping {
		if s == status {
			return code
		}
	}
	return ErrInternal
}
