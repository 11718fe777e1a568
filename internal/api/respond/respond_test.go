package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eventhub/server/internal/validation"
)

func TestErrorWritesUniformBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/events/123", nil)
	res := httptest.NewRecorder()

	Error(res, req, http.StatusNotFound, KindNotFound, "Event not found", errors.New("no documents"))

	require.Equal(t, http.StatusNotFound, res.Code)
	require.Equal(t, "application/json", res.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Equal(t, KindNotFound, body.Error.Kind)
	require.Equal(t, "Event not found", body.Error.Message)
	require.Empty(t, body.Errors)
}

func TestFieldErrorsAggregatesFailures(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/events", nil)
	res := httptest.NewRecorder()

	FieldErrors(res, req, []validation.FieldError{
		{Field: "name", Msg: "Event name is required"},
		{Field: "time", Msg: "Time must be in the format hh:mm AM/PM (12-hour format)"},
	})

	require.Equal(t, http.StatusBadRequest, res.Code)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Equal(t, KindValidation, body.Error.Kind)
	require.Len(t, body.Errors, 2)
	require.Equal(t, "name", body.Errors[0].Field)
}

func TestNoContent(t *testing.T) {
	res := httptest.NewRecorder()
	NoContent(res)
	require.Equal(t, http.StatusNoContent, res.Code)
	require.Empty(t, res.Body.String())
}
