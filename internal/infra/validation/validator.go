// Package validation runs struct-tag schema checks and reports every violation
// as a structured result instead of a bare error.
package validation

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf16"

	domainerrors "planner/internal/domain/errors"
	"planner/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Violation describes one failed constraint.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Result is the outcome of a schema check. An empty result means the value passed.
type Result struct {
	Violations []Violation
}

// OK reports whether no constraint was violated.
func (r Result) OK() bool {
	return len(r.Violations) == 0
}

// First returns the message of the first violation, or "" when the value passed.
func (r Result) First() string {
	if r.OK() {
		return ""
	}

	return r.Violations[0].Message
}

// Err converts a failed result into ErrValidationFailed carrying the first message.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}

	return domainerrors.ErrValidationFailed.WithMessage(r.First())
}

// Validator wraps go-playground/validator with JSON field naming.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		default:
			return name
		}
	})

	_ = v.RegisterValidation("utf16min", utf16Length(func(n, limit int) bool { return n >= limit }))
	_ = v.RegisterValidation("utf16max", utf16Length(func(n, limit int) bool { return n <= limit }))

	return &Validator{validate: v}
}

// utf16Length measures strings in UTF-16 code units, the unit JavaScript clients
// count in. A password within utf16max=20 is at most 60 bytes of UTF-8, which
// keeps it inside bcrypt's 72-byte input limit.
func utf16Length(within func(n, limit int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil || fl.Field().Kind() != reflect.String {
			return false
		}

		return within(len(utf16.Encode([]rune(fl.Field().String()))), limit)
	}
}

// Check validates s and collects the violations in field order.
func (v *Validator) Check(s any) Result {
	err := v.validate.Struct(s)
	if err == nil {
		return Result{}
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Result{Violations: []Violation{{Message: err.Error()}}}
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}

	return Result{Violations: violations}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.Check(i).Err()
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "utf16min":
		return fmt.Sprintf("%q length must be at least %s characters long", field, fe.Param())
	case "utf16max":
		return fmt.Sprintf("%q length must be less than or equal to %s characters long", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%q length must be at least %s characters long", field, fe.Param())
		}

		return fmt.Sprintf("%q must be greater than or equal to %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%q length must be less than or equal to %s characters long", field, fe.Param())
		}

		return fmt.Sprintf("%q must be less than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", field, strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("%q failed on the %q rule", field, fe.Tag())
	}
}
