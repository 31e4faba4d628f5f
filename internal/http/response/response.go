package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"internbridge/internal/common"
)

type ErrorCollector interface {
	IncErrors()
}

var errorCollector ErrorCollector

func SetErrorCollector(collector ErrorCollector) {
	errorCollector = collector
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

type errorBody struct {
	Code    common.Code       `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Error maps the error taxonomy to HTTP statuses. Expected business
// outcomes (not found, conflict, forbidden, validation) keep their
// distinct codes so the client can tell "already applied" apart from a
// server failure; anything else collapses to a generic 500.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := errorBody{Code: common.CodeInternal, Message: "internal error"}

	var appErr *common.Error
	if errors.As(err, &appErr) {
		body.Code = appErr.Code
		body.Message = appErr.Message
		body.Fields = appErr.Fields
		switch appErr.Code {
		case common.CodeNotFound:
			status = http.StatusNotFound
		case common.CodeConflict:
			status = http.StatusConflict
		case common.CodeForbidden:
			status = http.StatusForbidden
		case common.CodeValidation:
			status = http.StatusBadRequest
		case common.CodeUnauthorized:
			status = http.StatusUnauthorized
		default:
			status = http.StatusInternalServerError
			body.Message = "internal error"
		}
	}

	if status >= http.StatusInternalServerError && errorCollector != nil {
		errorCollector.IncErrors()
	}
	JSON(w, status, map[string]errorBody{"error": body})
}
