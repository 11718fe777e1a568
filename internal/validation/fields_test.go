package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Name  string  `json:"name" validate:"required"`
	Email string  `json:"email" validate:"required,email"`
	Ref   string  `json:"ref" validate:"required,objectid"`
	Time  string  `json:"time" validate:"required,ampm"`
	Date  string  `json:"date" validate:"required,isodate"`
	Price float64 `json:"price" validate:"required,gt=0"`
}

var sampleMessages = map[string]string{
	"name":  "Name is required",
	"email": "Must be a valid email address",
	"ref":   "Ref must be a valid ID",
	"time":  "Time must be in the format hh:mm AM/PM (12-hour format)",
	"date":  "Date must be a valid ISO 8601 date",
	"price": "Price must be a positive number",
}

func TestStructReportsNoErrorsForValidInput(t *testing.T) {
	in := sampleInput{
		Name:  "Fun Event",
		Email: "john.doe@example.com",
		Ref:   "670de14cd436d85952af4c3f",
		Time:  "8:00 PM",
		Date:  "2024-10-29",
		Price: 50,
	}
	require.Empty(t, Struct(in, sampleMessages))
}

func TestStructAggregatesFailuresInFieldOrder(t *testing.T) {
	in := sampleInput{
		Name:  "",
		Email: "not-an-email",
		Ref:   "nope",
		Time:  "25:99",
		Date:  "bad",
		Price: -5,
	}
	errs := Struct(in, sampleMessages)
	require.Len(t, errs, 6)
	require.Equal(t, FieldError{Field: "name", Msg: "Name is required"}, errs[0])
	require.Equal(t, FieldError{Field: "email", Msg: "Must be a valid email address"}, errs[1])
	require.Equal(t, FieldError{Field: "ref", Msg: "Ref must be a valid ID"}, errs[2])
	require.Equal(t, FieldError{Field: "time", Msg: "Time must be in the format hh:mm AM/PM (12-hour format)"}, errs[3])
	require.Equal(t, FieldError{Field: "date", Msg: "Date must be a valid ISO 8601 date"}, errs[4])
	require.Equal(t, FieldError{Field: "price", Msg: "Price must be a positive number"}, errs[5])
}

type optionalInput struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
}

func TestStructSkipsAbsentOptionalFields(t *testing.T) {
	require.Empty(t, Struct(optionalInput{}, sampleMessages))
}

func TestStructChecksPresentOptionalFields(t *testing.T) {
	empty := ""
	bad := "not-an-email"
	errs := Struct(optionalInput{Name: &empty, Email: &bad}, sampleMessages)
	require.Len(t, errs, 2)
	require.Equal(t, "name", errs[0].Field)
	require.Equal(t, "email", errs[1].Field)
}

func TestAmpmPattern(t *testing.T) {
	valid := []string{"8:00 PM", "08:00 PM", "12:59 am", "1:05 AM"}
	for _, v := range valid {
		require.True(t, ampmRegex.MatchString(v), v)
	}
	invalid := []string{"13:00 PM", "0:30 AM", "8:60 PM", "8:00PM", "8:00", "bad"}
	for _, v := range invalid {
		require.False(t, ampmRegex.MatchString(v), v)
	}
}

func TestParseDate(t *testing.T) {
	for _, v := range []string{"1990-01-01", "2024-12-25T08:00:00Z"} {
		_, err := ParseDate(v)
		require.NoError(t, err, v)
	}
	for _, v := range []string{"bad", "2024-13-40", "25/12/2024", ""} {
		_, err := ParseDate(v)
		require.Error(t, err, v)
	}
}
