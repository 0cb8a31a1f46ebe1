// Package handlers implements the HTTP endpoint handlers.  Handlers decode
// requests, delegate to the application layer, and translate application
// errors to HTTP responses; no scoring or storage logic lives here.
package handlers

import (
	"encoding/json"
	"net/http"

	appErrors "github.com/marksentry/marksentry/pkg/errors"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeAppError maps an application error to its HTTP status via the error
// code table.  Plain errors are masked as internal.
func writeAppError(w http.ResponseWriter, err error) {
	code := appErrors.GetCode(err)
	status := appErrors.HTTPStatus(code)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	writeJSON(w, status, ErrorResponse{Code: code.String(), Message: msg})
}

// decodeJSON decodes a JSON request body into dst, limiting the body to
// maxBytes.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return appErrors.Wrap(err, appErrors.ErrCodeBadRequest, "invalid JSON body")
	}
	return nil
}
