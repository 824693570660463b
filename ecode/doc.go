// Package ecode defines standardized error codes for API responses and
// provides utilities for error code management.
//
// This package provides:
//   - Predefined error codes for common scenarios
//   - Human-readable error messages
//   - Error code to HTTP status mapping
//   - Custom error code registration
//
// # Error Code Convention
//
// Error codes follow a standardized numbering scheme:
//   - 0: Success (OK)
//   - -1 to -99: Application-level errors
//   - -100 to -199: Authentication/authorization errors
//   - -400 to -499: Request and resource errors
//   - -500+: Server errors
//
// # Getting Error Messages
//
// Retrieve human-readable error messages:
//
//	message := ecode.Text(ecode.ParamErr)
//	// Returns: "invalid parameters"
//
// # Custom Error Codes
//
// Register custom error codes for your application:
//
//	const OrderExpired = -1002
//
//	ecode.Register(OrderExpired, "order has expired")
//
// # HTTP Status Mapping
//
// Error codes can be mapped to appropriate HTTP status codes:
//
//	httpStatus := ecode.ToHTTPStatus(ecode.NotFound)
//	// Returns: 404
//
// # Usage with Response Package
//
// Error codes integrate with the resp package:
//
//	resp.Fail(w, &resp.Exception{
//	    Status:  http.StatusBadRequest,
//	    Code:    ecode.ParamErr,
//	    Message: ecode.Text(ecode.ParamErr),
//	})
package ecode
