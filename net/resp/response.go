package resp

import (
	"encoding/json"
	"net/http"

	"github.com/ncobase/pager/ecode"
)

// Exception represents the response structure.
type Exception struct {
	Status  int    `json:"status,omitempty"`  // HTTP status
	Code    int    `json:"code,omitempty"`    // Business code
	Message string `json:"message,omitempty"` // Message
	Errors  any    `json:"errors,omitempty"`  // Validation errors
	Data    any    `json:"data,omitempty"`    // Response data
}

// Success handles success responses.
func Success(w http.ResponseWriter, data ...any) {
	WithStatusCode(w, http.StatusOK, data...)
}

// WithStatusCode handles success responses with custom status code.
func WithStatusCode(w http.ResponseWriter, statusCode int, data ...any) {
	var message string
	var responseData any

	if len(data) > 0 {
		responseData = data[0]
		if strData, ok := responseData.(string); ok {
			message = strData
			responseData = nil
		}
	}

	if responseData != nil {
		writeJSON(w, statusCode, responseData)
		return
	}

	if message == "" {
		message = "ok"
	}
	writeJSON(w, statusCode, map[string]any{"message": message})
}

// Fail handles failure responses.
func Fail(w http.ResponseWriter, r *Exception) {
	if r == nil {
		r = &Exception{
			Status:  http.StatusInternalServerError,
			Code:    ecode.ServerErr,
			Message: ecode.Text(ecode.ServerErr),
		}
	}

	status := r.Status
	code := r.Code
	message := r.Message
	if code == 0 {
		code = ecode.RequestErr
	}
	if status == 0 {
		status = ecode.ToHTTPStatus(code)
	}
	if message == "" {
		message = ecode.Text(code)
	}

	writeJSON(w, status, &Exception{
		Code:    code,
		Message: message,
		Errors:  r.Errors,
	})
}

// BadRequest builds a 400 exception.
func BadRequest(message string, errs ...any) *Exception {
	return failure(http.StatusBadRequest, ecode.RequestErr, message, errs...)
}

// ParamInvalid builds a 400 exception with the parameter error code.
func ParamInvalid(message string, errs ...any) *Exception {
	return failure(http.StatusBadRequest, ecode.ParamErr, message, errs...)
}

// NotFound builds a 404 exception.
func NotFound(message string, errs ...any) *Exception {
	return failure(http.StatusNotFound, ecode.NotFound, message, errs...)
}

// InternalServer builds a 500 exception.
func InternalServer(message string, errs ...any) *Exception {
	return failure(http.StatusInternalServerError, ecode.ServerErr, message, errs...)
}

func failure(status, code int, message string, errs ...any) *Exception {
	var errData any
	if len(errs) > 0 {
		errData = errs[0]
	}
	if message == "" {
		message = ecode.Text(code)
	}
	return &Exception{
		Status:  status,
		Code:    code,
		Message: message,
		Errors:  errData,
	}
}

// writeJSON writes the response with the given status code.
func writeJSON(w http.ResponseWriter, code int, res any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
	}
}
