package helpers

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/Mahdi-Yadi/Date-Time-Service-Convertor/pkg/textnorm"
)

// CustomValidator wraps go-playground validator with the date/calendar rules
// this service accepts on its request bodies.
type CustomValidator struct {
	validate *validator.Validate
}

// NewCustomValidator creates a new custom validator with Persian date rules
func NewCustomValidator() *CustomValidator {
	v := validator.New()

	v.RegisterValidation("date_literal", validateDateLiteral)
	v.RegisterValidation("calendar_kind", validateCalendarKind)
	v.RegisterValidation("rfc3339", validateRFC3339)

	return &CustomValidator{validate: v}
}

// Validate validates a struct
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validate.Struct(i)
}

// validateDateLiteral accepts any string the numeric date grammar matches,
// in any supported digit system
func validateDateLiteral(fl validator.FieldLevel) bool {
	_, ok := textnorm.MatchDateTime(textnorm.NormalizeForDate(fl.Field().String()))
	return ok
}

// validateCalendarKind validates calendar names accepted by the service
func validateCalendarKind(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "any", "gregorian", "miladi", "persian", "jalali", "shamsi", "hijri", "islamic", "ghamari":
		return true
	default:
		return false
	}
}

// validateRFC3339 validates RFC 3339 instant literals
func validateRFC3339(fl validator.FieldLevel) bool {
	rfc3339Regex := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})$`)
	return rfc3339Regex.MatchString(fl.Field().String())
}
