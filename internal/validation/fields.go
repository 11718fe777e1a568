// Package validation wraps go-playground/validator for the per-resource
// field validators. Failures come back as an ordered list of field/message
// pairs so a request's problems can be reported together in one response.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/eventhub/server/internal/domain/ids"
)

// FieldError is a single validation failure for a named body field.
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return e.Field + ": " + e.Msg
}

// ampmRegex matches a 12-hour clock time such as "8:00 PM" or "11:45 am".
var ampmRegex = regexp.MustCompile(`^(0?[1-9]|1[0-2]):[0-5][0-9] (?i:AM|PM)$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report failures under the wire (json) field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "objectid", func(fl validator.FieldLevel) bool {
		return ids.IsValid(fl.Field().String())
	})
	mustRegister(v, "ampm", func(fl validator.FieldLevel) bool {
		return ampmRegex.MatchString(fl.Field().String())
	})
	mustRegister(v, "isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Struct validates input and translates each failure through messages,
// keyed by json field name. Failures keep the declaration order of the
// input struct's fields.
func Struct(input any, messages map[string]string) []FieldError {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Msg: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()]
		if !ok {
			msg = fe.Field() + " is invalid"
		}
		out = append(out, FieldError{Field: fe.Field(), Msg: msg})
	}
	return out
}

// ParseDate accepts an ISO 8601 calendar date, with or without a time
// component ("2006-01-02" or RFC 3339).
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
