// Package ids validates document-store identifiers.
//
// Identifiers are Mongo ObjectIDs rendered as 24 hexadecimal characters.
// They are assigned by the store on insert; this layer never mints them.
package ids

import (
	"errors"
	"regexp"
)

var (
	objectIDRegex = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

	ErrInvalidObjectID = errors.New("invalid object id")
)

// Validate reports whether s is a well-formed ObjectID hex string.
// Pure format check; it says nothing about whether the record exists.
func Validate(s string) error {
	if !objectIDRegex.MatchString(s) {
		return ErrInvalidObjectID
	}
	return nil
}

// IsValid is a convenience wrapper around Validate.
func IsValid(s string) bool {
	return Validate(s) == nil
}
