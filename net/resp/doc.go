// Package resp provides standardized JSON response writing for HTTP
// handlers, backed by the ecode error code registry.
//
// # Success Responses
//
// Write data with a 200 status, or a custom status:
//
//	resp.Success(w, page)
//	resp.WithStatusCode(w, http.StatusCreated, note)
//
// # Failure Responses
//
// Failures carry a business code, message and optional error details:
//
//	resp.Fail(w, resp.BadRequest("invalid cursor"))
//	resp.Fail(w, resp.NotFound("note not found"))
//	resp.Fail(w, &resp.Exception{
//	    Code:   ecode.ParamErr,
//	    Errors: validationErrors,
//	})
//
// Omitted Exception fields are filled from the code: the HTTP status via
// ecode.ToHTTPStatus and the message via ecode.Text.
package resp
