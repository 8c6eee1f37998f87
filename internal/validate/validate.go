package validate

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var minPrice = decimal.NewFromFloat(0.01)

var (
	once     sync.Once
	validate *validator.Validate
)

// FieldErrors maps a field name to a human-readable message. Every field is
// evaluated independently so a single submission can report all of its
// problems at once.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(f))
	for _, field := range fields {
		messages = append(messages, f[field])
	}
	return strings.Join(messages, "; ")
}

func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		if err := validate.RegisterValidation("price", ValidatePrice); err != nil {
			panic(err)
		}
	})
	return validate
}

func ValidatePrice(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return value.GreaterThanOrEqual(minPrice)
}

// Struct validates a request struct and returns nil when it passes.
func Struct(c context.Context, s interface{}) FieldErrors {
	err := Validator().StructCtx(c, s)
	if err == nil {
		return nil
	}

	fieldErrors := FieldErrors{}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		fieldErrors["_"] = err.Error()
		return fieldErrors
	}
	for _, fieldError := range validationErrors {
		field := strings.ToLower(fieldError.Field())
		fieldErrors[field] = messageFor(field, fieldError)
	}
	return fieldErrors
}

func messageFor(field string, fieldError validator.FieldError) string {
	switch field {
	case "sku":
		if fieldError.Tag() == "required" {
			return "sku is required"
		}
		return "sku must be at least 3 characters"
	case "name":
		if fieldError.Tag() == "required" {
			return "name is required"
		}
		return "name must be at least 2 characters"
	case "quantity":
		return "quantity cannot be negative"
	case "price":
		return "price must be greater than 0"
	case "id":
		return "id is required"
	}
	return fieldError.Error()
}
