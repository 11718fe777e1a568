// Package events manages event records.
package events

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eventhub/server/internal/validation"
)

type Event struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Location string             `bson:"location" json:"location"`
	Date     time.Time          `bson:"date" json:"date"`
	Time     string             `bson:"time" json:"time"`
	Venue    string             `bson:"venue" json:"venue"`
}

type CreateEventInput struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
	Date     string `json:"date" validate:"required,isodate"`
	Time     string `json:"time" validate:"required,ampm"`
	Venue    string `json:"venue" validate:"required"`
}

type UpdateEventInput struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Location *string `json:"location" validate:"omitempty,min=1"`
	Date     *string `json:"date" validate:"omitempty,isodate"`
	Time     *string `json:"time" validate:"omitempty,ampm"`
	Venue    *string `json:"venue" validate:"omitempty,min=1"`
}

var Messages = map[string]string{
	"name":     "Event name is required",
	"location": "Location is required",
	"date":     "Date must be a valid ISO 8601 date",
	"time":     "Time must be in the format hh:mm AM/PM (12-hour format)",
	"venue":    "Venue is required",
}

func ValidateCreate(in CreateEventInput) []validation.FieldError {
	return validation.Struct(in, Messages)
}

func ValidateUpdate(in UpdateEventInput) []validation.FieldError {
	return validation.Struct(in, Messages)
}
