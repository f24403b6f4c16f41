package httptransport

import (
	"encoding/json"
	"net/http"

	"job-posting-service/internal/service"
)

type apiError struct {
	Message string               `json:"message"`
	Errors  []service.FieldError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, apiError{Message: msg})
}

func writeValidationErr(w http.ResponseWriter, verrs service.ValidationErrors) {
	writeJSON(w, http.StatusUnprocessableEntity, apiError{
		Message: "validation failed",
		Errors:  verrs,
	})
}
