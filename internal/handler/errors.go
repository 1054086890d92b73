package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ngoldman/tripsmith/internal/domain"
)

// ErrorResponse is the JSON error body for every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestBody returns an ErrorResponse for a request rejected before reaching
// the service layer (e.g. missing or malformed body).
func requestBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: message}}
}

// writeJSON serializes v as the response body with the given status.
// Encoding failures after the header is written can only be logged by the
// server's error handler, so they are ignored here.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into dst, writing the error response
// itself on failure. A *http.MaxBytesError from the body-limit middleware is
// surfaced as 413; everything else is the caller's 422. The returned error
// wraps domain.ErrValidation so callers can recognize it with errors.Is.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		writeJSON(w, http.StatusRequestEntityTooLarge, requestBody("request body too large"))
	} else {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid JSON body: "+err.Error()))
	}
	return fmt.Errorf("%w: %w", domain.ErrValidation, err)
}
