package dtos

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/localnerve/imoveis/internal/models"
	"github.com/localnerve/imoveis/internal/types"
	"github.com/shopspring/decimal"
)

// ValidationError carries field-level messages keyed by wire field name
type ValidationError struct {
	Errors map[string][]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Errors))
	for k := range e.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Errors[k], " ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a message for key
func (e *ValidationError) Add(key, message string) {
	if e.Errors == nil {
		e.Errors = make(map[string][]string)
	}
	e.Errors[key] = append(e.Errors[key], message)
}

// HasErrors reports whether any message was added
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// NewValidationError builds a single-field ValidationError
func NewValidationError(key, message string) *ValidationError {
	e := &ValidationError{}
	e.Add(key, message)
	return e
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Decimals are validated on their exact text, never a float.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(types.Decimal); ok {
			return d.Decimal.String()
		}
		return nil
	}, types.Decimal{})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(types.Date); ok {
			return d.String()
		}
		return nil
	}, types.Date{})

	if err := v.RegisterValidation("choice", validateChoice); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("money", validateMoney); err != nil {
		panic(err)
	}
	return v
}

// validateChoice checks a string against the models.Choices set named by the tag param.
func validateChoice(fl validator.FieldLevel) bool {
	return models.IsChoice(fl.Param(), fl.Field().String())
}

// validateMoney checks a decimal fits decimal(param,2).
func validateMoney(fl validator.FieldLevel) bool {
	digits, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	d, err := types.NewDecimal(fl.Field().String())
	if err != nil {
		return false
	}
	return d.FitsDigits(digits)
}

// Validate checks the fields of in. Outside of a partial update every
// required field must be present. Present fields must not be null unless
// tagged null:"true", and non-null values must satisfy their validate rules.
func Validate(in interface{}, partial bool) error {
	holder, ok := in.(payloadHolder)
	if !ok {
		return fmt.Errorf("dtos: %T does not embed Payload", in)
	}
	p := holder.payload()

	verr := &ValidationError{}
	for _, f := range wireFields(reflect.ValueOf(in).Elem()) {
		rules := f.field.Tag.Get("validate")
		required := hasRule(rules, "required")

		if !p.Has(f.key) {
			if required && !partial {
				verr.Add(f.key, "This field is required.")
			}
			continue
		}

		if f.value.IsNil() {
			if f.field.Tag.Get("null") != "true" {
				verr.Add(f.key, "This field may not be null.")
			}
			continue
		}

		value := f.value.Elem()
		if value.Kind() == reflect.String && value.String() == "" {
			if required {
				verr.Add(f.key, "This field may not be blank.")
				continue
			}
			if !strings.Contains(rules, "choice=") {
				continue
			}
		}

		rules = stripRules(rules, "required", "omitempty")
		if rules == "" {
			continue
		}
		if err := validate.Var(value.Interface(), rules); err != nil {
			if errs, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range errs {
					verr.Add(f.key, message(fe, value))
				}
				continue
			}
			return err
		}
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

func hasRule(rules, name string) bool {
	for _, r := range strings.Split(rules, ",") {
		if r == name {
			return true
		}
	}
	return false
}

func stripRules(rules string, names ...string) string {
	var kept []string
outer:
	for _, r := range strings.Split(rules, ",") {
		if r == "" {
			continue
		}
		for _, n := range names {
			if r == n {
				continue outer
			}
		}
		kept = append(kept, r)
	}
	return strings.Join(kept, ",")
}

// message renders a validator failure the way the API reports field errors.
func message(fe validator.FieldError, value reflect.Value) string {
	switch fe.Tag() {
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "gte", "min":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "lte":
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "choice":
		return fmt.Sprintf("\"%v\" is not a valid choice.", value.Interface())
	case "money":
		return moneyMessage(value, fe.Param())
	}
	return fmt.Sprintf("Failed the %q check.", fe.Tag())
}

func moneyMessage(value reflect.Value, param string) string {
	digits, _ := strconv.Atoi(param)
	d, ok := value.Interface().(types.Decimal)
	if !ok {
		return "A valid number is required."
	}
	if !d.Round(types.MoneyPlaces).Equal(d.Decimal) {
		return fmt.Sprintf("Ensure that there are no more than %d decimal places.", types.MoneyPlaces)
	}
	if d.Abs().GreaterThanOrEqual(decimal.New(1, int32(digits))) {
		return fmt.Sprintf("Ensure that there are no more than %d digits in total.", digits)
	}
	return fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", digits-types.MoneyPlaces)
}
