// Package handlers implements the HTTP handlers for the API resources.
//
// All resources share one contract: list returns 200 with a bare array,
// get returns 200 with the record, create returns 201 with the stored
// record, update and delete return 204 with no body. Identifier format is
// checked before any storage call, and a zero matched or deleted count
// maps to 404.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eventhub/server/internal/api/respond"
	"github.com/eventhub/server/internal/domain/ids"
	"github.com/eventhub/server/internal/validation"
)

// decodeBody decodes the request body into dst. A wrong-type field such
// as a string where a number belongs is reported with the same message
// the field's validation rule would produce, so clients see one error
// vocabulary no matter where the failure was caught. Returns false after
// writing the response on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, messages map[string]string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			msg, ok := messages[typeErr.Field]
			if !ok {
				msg = typeErr.Field + " is invalid"
			}
			respond.FieldErrors(w, r, []validation.FieldError{{Field: typeErr.Field, Msg: msg}})
			return false
		}

		respond.Error(w, r, http.StatusBadRequest, respond.KindValidation, "Invalid request body", err)
		return false
	}
	return true
}

// requireValidID rejects malformed identifiers with a 400 before any
// storage access. invalidMsg is the resource-specific message, for
// example "Invalid event ID format".
func requireValidID(w http.ResponseWriter, r *http.Request, id, invalidMsg string) bool {
	if err := ids.Validate(id); err != nil {
		respond.Error(w, r, http.StatusBadRequest, respond.KindValidation, invalidMsg, nil)
		return false
	}
	return true
}
