package ecode

import (
	"net/http"
	"strconv"
	"sync"
)

// Common error codes. Codes are negative except OK; ranges group related
// failures (see package documentation).
const (
	OK           = 0
	AppErr       = -1
	SignCheckErr = -3

	NoLogin      = -101
	UserDisabled = -102
	UserInactive = -106

	RequestErr = -400
	ParamErr   = -401

	AccessDenied = -403
	NotFound     = -404
	Conflict     = -409

	ServerErr          = -500
	ServiceUnavailable = -503
	Deadline           = -504
)

var (
	mu       sync.RWMutex
	messages = map[int]string{
		OK:           "success",
		AppErr:       "application error",
		SignCheckErr: "signature verification failed",

		NoLogin:      "account not logged in",
		UserDisabled: "account suspended",
		UserInactive: "account not activated",

		RequestErr: "invalid request",
		ParamErr:   "invalid parameters",

		AccessDenied: "access denied",
		NotFound:     "resource not found",
		Conflict:     "resource conflict",

		ServerErr:          "internal server error",
		ServiceUnavailable: "service unavailable",
		Deadline:           "deadline exceeded",
	}
)

// Register registers a custom error code with its message.
// Applications should keep custom codes in the -1000 and below range.
func Register(code int, message string) {
	mu.Lock()
	defer mu.Unlock()
	messages[code] = message
}

// Text returns the human-readable message for a code. Unknown codes
// fall back to their decimal representation.
func Text(code int) string {
	mu.RLock()
	defer mu.RUnlock()
	if msg, ok := messages[code]; ok {
		return msg
	}
	return strconv.Itoa(code)
}

// ToHTTPStatus maps an error code to an HTTP status code.
func ToHTTPStatus(code int) int {
	switch code {
	case OK:
		return http.StatusOK
	case NoLogin, UserDisabled, UserInactive:
		return http.StatusUnauthorized
	case AccessDenied:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case ServiceUnavailable:
		return http.StatusServiceUnavailable
	case Deadline:
		return http.StatusGatewayTimeout
	case ServerErr:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
