package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorResponse represents the validation error response format
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// fieldMessage renders a human-readable message for a single failed rule.
func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", field)
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s", field, fe.Param())
	case "date_literal":
		return fmt.Sprintf("The %s field must be a recognizable date", field)
	case "calendar_kind":
		return fmt.Sprintf("The %s field must name a supported calendar", field)
	case "rfc3339":
		return fmt.Sprintf("The %s field must be an RFC 3339 instant", field)
	default:
		return fmt.Sprintf("The %s field is invalid", field)
	}
}

// WriteValidationErrorResponse writes a 422 response describing every failed
// field, in the platform's {message, errors} shape.
func WriteValidationErrorResponse(w http.ResponseWriter, err error) {
	resp := ValidationErrorResponse{
		Message: "The given data was invalid.",
		Errors:  map[string]string{},
	}

	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			resp.Errors[strings.ToLower(fe.Field())] = fieldMessage(fe)
		}
	} else if err != nil {
		resp.Errors["request"] = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(resp)
}
