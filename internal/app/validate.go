package app

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ValidationError reports a rejected request. It carries a human-readable
// field summary safe to return to the caller.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Detail
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Expose decimal fields to the numeric comparison tags (gt, gte, lte).
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterStructValidation(reverseChargeValidation, CreateInvoiceRequest{})
	return v
}

// reverseChargeValidation enforces the cross-field rule: a reverse-charge
// invoice must carry a zero VAT rate and a zero (or absent) VAT absolute.
func reverseChargeValidation(sl validator.StructLevel) {
	req := sl.Current().Interface().(CreateInvoiceRequest)
	if req.ReverseCharge == nil || !*req.ReverseCharge {
		return
	}
	if !req.VATRate.IsZero() {
		sl.ReportError(req.VATRate, "vatRate", "VATRate", "reversecharge", "")
	}
	if req.VATAbsolute != nil && !req.VATAbsolute.IsZero() {
		sl.ReportError(req.VATAbsolute, "vatAbsolute", "VATAbsolute", "reversecharge", "")
	}
}

// validateRequest runs the struct validation and flattens failures into a
// single ValidationError.
func validateRequest(req CreateInvoiceRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Detail: err.Error()}
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Tag() == "reversecharge" {
			parts = append(parts, fe.Field()+": must be 0 on a reverse charge invoice")
			continue
		}
		parts = append(parts, fe.Field()+": failed "+fe.Tag())
	}
	return &ValidationError{Detail: strings.Join(parts, "; ")}
}
