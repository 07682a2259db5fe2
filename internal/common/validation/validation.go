// internal/common/validation/validation.go
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	panPattern = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	// The GSTIN state-code prefix is pinned to 22 even though the state
	// dropdown offers every Indian state. Inherited from the product rules
	// as-is; do not generalize without product confirmation.
	gstinPattern = regexp.MustCompile(`^22[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Validator wraps go-playground/validator with the domain's custom rules
// registered. Construct one per service and inject it; no package-level
// singleton.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Failures are reported against wire field names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("pan", func(fl validator.FieldLevel) bool {
		return panPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("gstin", func(fl validator.FieldLevel) bool {
		return gstinPattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

// ValidateStruct runs tag-based validation and converts the failures into
// the field-level result shape the UI annotates inline.
func (v *Validator) ValidateStruct(s interface{}) *ValidationResult {
	err := v.validate.Struct(s)
	if err == nil {
		return &ValidationResult{Valid: true}
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationResult{
			Valid: false,
			Errors: []ValidationError{
				{Field: "", Message: err.Error(), Code: "INVALID_INPUT"},
			},
		}
	}

	errs := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, ValidationError{
			Field:   fieldName(fe),
			Message: messageFor(fe),
			Code:    codeFor(fe),
		})
	}

	return &ValidationResult{Valid: false, Errors: errs}
}

func fieldName(fe validator.FieldError) string {
	// Strip the struct name prefix: "InvoiceForm.CandidateName" -> "CandidateName"
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required field missing"
	case "pan":
		return "invalid PAN format"
	case "gstin":
		return "invalid GST number format"
	case "gt", "gte":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation rule '%s'", fe.Tag())
	}
}

func codeFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "REQUIRED_FIELD_MISSING"
	case "pan":
		return "INVALID_PAN"
	case "gstin":
		return "INVALID_GSTIN"
	default:
		return "INVALID_VALUE"
	}
}
