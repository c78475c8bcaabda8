package errors

import (
	"encoding/json"
	"net/http"
)

// errorEnvelope keeps error responses in the same shape the success
// helpers in pkg/utils produce.
type errorEnvelope struct {
	Status  bool      `json:"status"`
	Message string    `json:"message"`
	Errors  errorBody `json:"errors"`
}

type errorBody struct {
	Code    string         `json:"code"`
	Details map[string]any `json:"details,omitempty"`
}

// WriteError maps any error to an HTTP response. Errors that are not
// *AppError are reported as internal errors without leaking the cause.
func WriteError(w http.ResponseWriter, err error) {
	appErr := AsAppError(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())

	json.NewEncoder(w).Encode(errorEnvelope{
		Status:  false,
		Message: appErr.Message,
		Errors: errorBody{
			Code:    appErr.Code,
			Details: appErr.Details,
		},
	})
}
